package models

import (
	"time"

	"github.com/assettrack/backend/internal/domain/employee"
	"github.com/google/uuid"
)

// EmployeeModel is the persistence model for the Employee aggregate root.
type EmployeeModel struct {
	AggregateModel
	EmployeeID string           `gorm:"type:varchar(50);not null;uniqueIndex:ux_employees_employee_id"`
	Company    employee.Company `gorm:"type:varchar(50)"`
	Name       string           `gorm:"type:varchar(200);not null"`
	Email      string           `gorm:"type:varchar(200);not null;uniqueIndex:ux_employees_email"`
	Phone      string           `gorm:"type:varchar(50);not null"`
	Department string           `gorm:"type:varchar(100);not null;index"`
	Position   string           `gorm:"type:varchar(100);not null"`
	Status     employee.Status  `gorm:"type:varchar(20);not null;default:'ACTIVE';index"`
	HireDate   time.Time        `gorm:"not null"`
	ExitDate   *time.Time       `gorm:""`
	UserID     *uuid.UUID       `gorm:"type:uuid;index"`
}

// TableName returns the table name for GORM
func (EmployeeModel) TableName() string {
	return "employees"
}

// ToDomain converts the persistence model to a domain Employee entity.
func (m *EmployeeModel) ToDomain() *employee.Employee {
	e := &employee.Employee{
		EmployeeID: m.EmployeeID,
		Company:    m.Company,
		Name:       m.Name,
		Email:      m.Email,
		Phone:      m.Phone,
		Department: m.Department,
		Position:   m.Position,
		Status:     m.Status,
		HireDate:   m.HireDate,
		ExitDate:   m.ExitDate,
		UserID:     m.UserID,
	}
	m.PopulateAggregateRoot(&e.BaseAggregateRoot)
	return e
}

// FromDomain populates the persistence model from a domain Employee entity.
func (m *EmployeeModel) FromDomain(e *employee.Employee) {
	m.FromDomainAggregateRoot(e.BaseAggregateRoot)
	m.EmployeeID = e.EmployeeID
	m.Company = e.Company
	m.Name = e.Name
	m.Email = e.Email
	m.Phone = e.Phone
	m.Department = e.Department
	m.Position = e.Position
	m.Status = e.Status
	m.HireDate = e.HireDate
	m.ExitDate = e.ExitDate
	m.UserID = e.UserID
}

// EmployeeModelFromDomain creates a new persistence model from a domain Employee entity.
func EmployeeModelFromDomain(e *employee.Employee) *EmployeeModel {
	m := &EmployeeModel{}
	m.FromDomain(e)
	return m
}
