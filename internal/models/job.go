package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type JobStatus string

const (
	JobStatusOpen   JobStatus = "Open"
	JobStatusPaused JobStatus = "Paused"
	JobStatusClosed JobStatus = "Closed"
)

func (s JobStatus) Valid() bool {
	switch s {
	case JobStatusOpen, JobStatusPaused, JobStatusClosed:
		return true
	}
	return false
}

type PayType string

const (
	PayTypeExact PayType = "Exact amount"
	PayTypeRange PayType = "Range"
)

type PayRate string

const (
	PayRatePerHour  PayRate = "per hour"
	PayRatePerDay   PayRate = "per day"
	PayRatePerMonth PayRate = "per month"
	PayRatePerYear  PayRate = "per year"
)

type LocationMode string

const (
	LocationOnSite LocationMode = "On-site"
	LocationRemote LocationMode = "Remote"
)

// JobTypes enumerates the allowed tag values for Job.JobTypes.
var JobTypes = []string{
	"Full-time",
	"Permanent",
	"Fresher",
	"Part-time",
	"Internship",
	"Temporary",
	"Freelance",
	"Volunteer",
}

type Job struct {
	ID             uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	JobTitle       string         `gorm:"type:text;not null" json:"jobTitle"`
	JobLocation    LocationMode   `gorm:"type:text;not null" json:"jobLocation"`
	EmployerID     uuid.UUID      `gorm:"type:uuid;not null;index" json:"employerId"`
	City           string         `gorm:"type:text;not null" json:"city"`
	Area           string         `gorm:"type:text" json:"area"`
	Pincode        string         `gorm:"type:text" json:"pincode"`
	StreetAddress  string         `gorm:"type:text" json:"streetAddress"`
	JobTypes       pq.StringArray `gorm:"type:text[]" json:"jobTypes"`
	Skills         pq.StringArray `gorm:"type:text[]" json:"skills"`
	Languages      pq.StringArray `gorm:"type:text[]" json:"languages"`
	Education      pq.StringArray `gorm:"type:text[]" json:"education"`
	JobDescription string         `gorm:"type:text;not null" json:"jobDescription"`
	NumberOfPeople int            `gorm:"not null;default:1" json:"numberOfPeople"`
	MobileNumber   string         `gorm:"type:text" json:"mobileNumber"`
	Email          string         `gorm:"type:text" json:"email"`

	PayType    *PayType `gorm:"type:text" json:"payType,omitempty"`
	ExactPay   *float64 `json:"exactPay,omitempty"`
	MinimumPay *float64 `json:"minimumPay,omitempty"`
	MaximumPay *float64 `json:"maximumPay,omitempty"`
	PayRate    *PayRate `gorm:"type:text" json:"payRate,omitempty"`

	// Monthly-equivalent figure derived from the pay descriptor at
	// write time. Null when the job carries no usable pay figure.
	MonthlyPay *float64 `gorm:"index" json:"-"`

	Deadline     string     `gorm:"type:text;not null;default:'No'" json:"deadline"`
	DeadlineDate *time.Time `gorm:"type:timestamp" json:"deadlineDate,omitempty"`
	Status       JobStatus  `gorm:"type:text;not null;default:'Open';index" json:"status"`

	CreatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"createdAt"`
	UpdatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"updatedAt"`

	Employer Employer `gorm:"foreignKey:EmployerID" json:"-"`
}

func (Job) TableName() string {
	return "jobs"
}
