package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"jobportal/internal/apperrors"
	"jobportal/internal/config"
	"jobportal/internal/handlers"
	"jobportal/internal/repositories"
	"jobportal/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("✅ Config loaded successfully")

	// Initialize database
	db, err := config.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize database: %v", err)
	}

	// Initialize repositories
	jobRepo := repositories.NewJobRepository(db)
	appliedRepo := repositories.NewAppliedJobRepository(db)
	savedRepo := repositories.NewSavedJobRepository(db)
	reviewRepo := repositories.NewReviewRepository(db)
	employerRepo := repositories.NewEmployerRepository(db)
	employeeRepo := repositories.NewEmployeeRepository(db)
	log.Println("✅ Repositories initialized successfully")

	// Initialize services
	mailer := services.NewLogMailer()
	jobService := services.NewJobService(jobRepo, employerRepo)
	searchService := services.NewSearchService(jobRepo, reviewRepo)
	appService := services.NewApplicationService(appliedRepo, savedRepo, jobRepo, mailer)
	reviewService := services.NewReviewService(reviewRepo, employerRepo, employeeRepo, jobRepo)
	log.Println("✅ Services initialized successfully")

	// Start the deadline sweeper
	sweeper := services.NewSweeper(jobRepo, cfg.Sweeper.Interval)
	ctx := context.Background()
	sweeper.Start(ctx)

	// Initialize handlers
	jobHandler := handlers.NewJobHandler(jobService)
	searchHandler := handlers.NewSearchHandler(searchService)
	appHandler := handlers.NewApplicationHandler(appService)
	reviewHandler := handlers.NewReviewHandler(reviewService)
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Job Portal API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, X-Employee-ID, X-Employer-ID",
	}))

	// Routes
	api := app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// Jobs
	api.Post("/jobs", handlers.RequireEmployer, jobHandler.HandleCreateJob)
	api.Post("/jobs/search", searchHandler.HandleSearch)
	api.Post("/jobs/salary-range", searchHandler.HandleSalaryRange)
	api.Get("/jobs/skills", jobHandler.HandleSkills)
	api.Get("/jobs/:id", jobHandler.HandleGetJob)
	api.Put("/jobs/:id", handlers.RequireEmployer, jobHandler.HandleUpdateJob)
	api.Delete("/jobs/:id", handlers.RequireEmployer, jobHandler.HandleDeleteJob)
	api.Patch("/jobs/:id/status", handlers.RequireEmployer, jobHandler.HandleUpdateJobStatus)
	api.Get("/jobs/:id/applicants", handlers.RequireEmployer, appHandler.HandleApplicants)

	// Applications
	api.Post("/applications", handlers.RequireEmployee, appHandler.HandleApply)
	api.Get("/applications", handlers.RequireEmployee, appHandler.HandleListApplied)
	api.Put("/applications/:id/employee-status", handlers.RequireEmployee, appHandler.HandleUpdateEmployeeStatus)
	api.Put("/applications/:id/employer-status", handlers.RequireEmployer, appHandler.HandleUpdateEmployerStatus)
	api.Delete("/applications/:id", handlers.RequireEmployee, appHandler.HandleWithdraw)

	// Saved jobs
	api.Post("/saved-jobs", handlers.RequireEmployee, appHandler.HandleSaveJob)
	api.Get("/saved-jobs", handlers.RequireEmployee, appHandler.HandleListSaved)
	api.Delete("/saved-jobs/:jobId", handlers.RequireEmployee, appHandler.HandleUnsaveJob)

	// Employers
	api.Get("/employers", reviewHandler.HandleEmployerDirectory)
	api.Get("/employers/me/jobs", handlers.RequireEmployer, jobHandler.HandleActiveJobs)
	api.Get("/employers/me/jobs/closed", handlers.RequireEmployer, jobHandler.HandleClosedJobs)
	api.Get("/employers/me/applicant-counts", handlers.RequireEmployer, appHandler.HandleApplicantCounts)
	api.Get("/employers/me/application-stats", handlers.RequireEmployer, appHandler.HandleStatusCounts)
	api.Get("/employers/:id/reviews", reviewHandler.HandleEmployerReviews)

	// Reviews
	api.Post("/reviews", handlers.RequireEmployee, reviewHandler.HandleAddReview)
	api.Delete("/reviews/:id", handlers.RequireEmployee, reviewHandler.HandleDeleteReview)

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Job Portal API",
			"version": "1.0.0",
		})
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		sweeper.Stop()
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	} else {
		code = apperrors.StatusCode(err)
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
