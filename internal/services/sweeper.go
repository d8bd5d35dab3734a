package services

import (
	"context"
	"log"
	"sync"
	"time"

	"jobportal/internal/repositories"
)

// Sweeper is the recurring deadline pass: every tick it closes each
// Open job whose deadline has elapsed. Jobs are closed row by row, so
// a search racing the sweep may still see an expired job as Open until
// the next tick.
type Sweeper interface {
	Start(ctx context.Context)
	Stop()
	RunOnce(now time.Time) (int, error)
}

type sweeper struct {
	jobRepo  repositories.JobRepository
	interval time.Duration
	wg       sync.WaitGroup
	stopChan chan struct{}
}

func NewSweeper(jobRepo repositories.JobRepository, interval time.Duration) Sweeper {
	return &sweeper{
		jobRepo:  jobRepo,
		interval: interval,
		stopChan: make(chan struct{}),
	}
}

func (s *sweeper) Start(ctx context.Context) {
	log.Printf("🔄 Starting deadline sweeper (interval %s)", s.interval)

	s.wg.Add(1)
	go s.run(ctx)
}

// Stop waits for an in-flight tick to finish before returning.
func (s *sweeper) Stop() {
	log.Println("🛑 Stopping deadline sweeper...")
	close(s.stopChan)
	s.wg.Wait()
	log.Println("✅ Deadline sweeper stopped")
}

func (s *sweeper) run(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopChan:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			closed, err := s.RunOnce(time.Now())
			if err != nil {
				// A failed tick is logged and retried on the next one.
				log.Printf("⚠️  Deadline sweep failed: %v", err)
				continue
			}
			if closed > 0 {
				log.Printf("🔒 Deadline sweep closed %d job(s)", closed)
			}
		}
	}
}

// RunOnce performs a single sweep pass and reports how many jobs it
// closed. Each row is updated independently with an Open-status guard,
// so a concurrent employer toggle on the same job wins over the sweep.
func (s *sweeper) RunOnce(now time.Time) (int, error) {
	expired, err := s.jobRepo.FindDeadlineExpired(now)
	if err != nil {
		return 0, err
	}

	closed := 0
	for _, job := range expired {
		ok, err := s.jobRepo.CloseIfOpen(job.ID)
		if err != nil {
			log.Printf("⚠️  Failed to close job %s: %v", job.ID, err)
			continue
		}
		if ok {
			closed++
		}
	}
	return closed, nil
}
