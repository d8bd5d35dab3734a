package models

import (
	"time"

	"github.com/google/uuid"
)

// Employer and Employee are external collaborators here: registration,
// login and profile CRUD live outside this core. Only the columns the
// matching engine reads are modelled.

type Employer struct {
	ID                uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	FullName          string    `gorm:"type:text;not null" json:"fullName"`
	Email             string    `gorm:"type:text;not null;uniqueIndex" json:"email"`
	CompanyName       string    `gorm:"type:text" json:"companyName"`
	NumberOfEmployees int       `json:"numberOfEmployees"`
	PhoneNumber       string    `gorm:"type:text" json:"phoneNumber"`
	Profile           string    `gorm:"type:text" json:"profile"`
	CreatedAt         time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"createdAt"`
}

func (Employer) TableName() string {
	return "employers"
}

type Employee struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	FirstName   string    `gorm:"type:text" json:"firstName"`
	LastName    string    `gorm:"type:text" json:"lastName"`
	Email       string    `gorm:"type:text;not null;uniqueIndex" json:"email"`
	PhoneNumber string    `gorm:"type:text" json:"phoneNumber"`
	City        string    `gorm:"type:text" json:"city"`
	Role        string    `gorm:"type:text" json:"role"`
	CreatedAt   time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"createdAt"`
}

func (Employee) TableName() string {
	return "employees"
}
