package repositories

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"jobportal/internal/apperrors"
	"jobportal/internal/models"
)

type EmployerRepository interface {
	FindByID(id uuid.UUID) (*models.Employer, error)
}

type employerRepository struct {
	db *gorm.DB
}

func NewEmployerRepository(db *gorm.DB) EmployerRepository {
	return &employerRepository{db: db}
}

func (r *employerRepository) FindByID(id uuid.UUID) (*models.Employer, error) {
	var employer models.Employer
	if err := r.db.Where("id = ?", id).First(&employer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("employer %s: %w", id, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find employer: %w", err)
	}
	return &employer, nil
}

type EmployeeRepository interface {
	FindByID(id uuid.UUID) (*models.Employee, error)
}

type employeeRepository struct {
	db *gorm.DB
}

func NewEmployeeRepository(db *gorm.DB) EmployeeRepository {
	return &employeeRepository{db: db}
}

func (r *employeeRepository) FindByID(id uuid.UUID) (*models.Employee, error) {
	var employee models.Employee
	if err := r.db.Where("id = ?", id).First(&employee).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("employee %s: %w", id, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find employee: %w", err)
	}
	return &employee, nil
}
