package services

import "log"

// Mailer is the outbound notification collaborator. Delivery itself
// lives outside this core; the default implementation only logs.
type Mailer interface {
	NotifyNewApplication(employerEmail, jobTitle string) error
}

type logMailer struct{}

func NewLogMailer() Mailer {
	return &logMailer{}
}

func (m *logMailer) NotifyNewApplication(employerEmail, jobTitle string) error {
	log.Printf("📧 Notification: new application for %q -> %s", jobTitle, employerEmail)
	return nil
}
