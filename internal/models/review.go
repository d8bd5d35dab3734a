package models

import (
	"time"

	"github.com/google/uuid"
)

// Review is one employee's rating of one employer. The pair is unique;
// a review is immutable except for deletion.
type Review struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	EmployeeID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_review_employee_employer" json:"employeeId"`
	EmployerID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_review_employee_employer" json:"employerId"`
	Comment     string    `gorm:"type:text;not null" json:"comment"`
	Rating      float64   `gorm:"not null" json:"rating"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"createdAt"`

	Employee Employee `gorm:"foreignKey:EmployeeID" json:"-"`
	Employer Employer `gorm:"foreignKey:EmployerID" json:"-"`
}

func (Review) TableName() string {
	return "reviews"
}
