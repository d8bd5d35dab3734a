package models

import (
	"time"

	"github.com/google/uuid"
)

// ApplicationStatus is shared by both sides of an application. The
// employee and employer fields move independently; neither is validated
// against the other.
type ApplicationStatus string

const (
	StatusApplied        ApplicationStatus = "Applied"
	StatusInterviewing   ApplicationStatus = "Interviewing"
	StatusOfferReceived  ApplicationStatus = "Offer received"
	StatusHired          ApplicationStatus = "Hired"
	StatusNotSelected    ApplicationStatus = "Not selected by employer"
	StatusNoLongerWanted ApplicationStatus = "No longer interested"
)

func (s ApplicationStatus) Valid() bool {
	switch s {
	case StatusApplied, StatusInterviewing, StatusOfferReceived,
		StatusHired, StatusNotSelected, StatusNoLongerWanted:
		return true
	}
	return false
}

// AppliedJob links an employee to a job they applied for. The
// (employee, job) pair is unique at the storage layer so concurrent
// duplicate applies cannot both commit. JobTitle and CompanyName are
// snapshots taken at apply time and survive later job edits.
type AppliedJob struct {
	ID              uuid.UUID          `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	EmployeeID      uuid.UUID          `gorm:"type:uuid;not null;uniqueIndex:idx_applied_employee_job" json:"employeeId"`
	JobID           uuid.UUID          `gorm:"type:uuid;not null;uniqueIndex:idx_applied_employee_job" json:"jobId"`
	ApplicationDate time.Time          `gorm:"not null;default:CURRENT_TIMESTAMP" json:"applicationDate"`
	EmployeeStatus  *ApplicationStatus `gorm:"type:text" json:"employeeStatus"`
	EmployerStatus  ApplicationStatus  `gorm:"type:text;not null;default:'Applied'" json:"employerStatus"`
	JobTitle        string             `gorm:"type:text" json:"jobTitle"`
	CompanyName     string             `gorm:"type:text" json:"companyName"`
	AvailableDates  string             `gorm:"type:text" json:"availableDates,omitempty"`
	Experience      string             `gorm:"type:text" json:"experience,omitempty"`

	Employee Employee `gorm:"foreignKey:EmployeeID" json:"-"`
	Job      Job      `gorm:"foreignKey:JobID" json:"-"`
}

func (AppliedJob) TableName() string {
	return "applied_jobs"
}

// SavedJob is a bookmark, unique per (employee, job) pair.
type SavedJob struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_saved_employee_job" json:"employeeId"`
	JobID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_saved_employee_job" json:"jobId"`
	CreatedAt  time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"createdAt"`

	Job Job `gorm:"foreignKey:JobID" json:"job"`
}

func (SavedJob) TableName() string {
	return "saved_jobs"
}
