package employee

import (
	"time"

	"github.com/assettrack/backend/internal/domain/employee"
	"github.com/google/uuid"
)

// CreateEmployeeRequest registers an employee. EmployeeID is derived from Company when empty.
type CreateEmployeeRequest struct {
	EmployeeID string
	Company    string
	Name       string
	Email      string
	Phone      string
	Department string
	Position   string
	Status     string
	HireDate   time.Time
	ExitDate   *time.Time
	UserID     *uuid.UUID
}

// UpdateEmployeeRequest is a partial update; the employee ID cannot change
type UpdateEmployeeRequest struct {
	Name       *string
	Email      *string
	Phone      *string
	Department *string
	Position   *string
	Status     *string
	HireDate   *time.Time
	ExitDate   *time.Time
}

// ListEmployeesFilter selects employees. Paginate is false for the plain listing.
type ListEmployeesFilter struct {
	Status     string
	Department string
	Search     string
	Page       int
	Limit      int
	Paginate   bool
}

// EmployeeListResult is a page of employees
type EmployeeListResult struct {
	Items []EmployeeResponse
	Total int64
	Page  int
	Limit int
}

// EmployeeResponse represents an employee in API responses
type EmployeeResponse struct {
	ID               uuid.UUID       `json:"id"`
	EmployeeID       string          `json:"employeeId"`
	Company          string          `json:"company,omitempty"`
	Name             string          `json:"name"`
	Email            string          `json:"email"`
	Phone            string          `json:"phone"`
	Department       string          `json:"department"`
	Position         string          `json:"position"`
	Status           employee.Status `json:"status"`
	HireDate         time.Time       `json:"hireDate"`
	ExitDate         *time.Time      `json:"exitDate"`
	UserID           *uuid.UUID      `json:"userId,omitempty"`
	ActiveAssetCount int64           `json:"activeAssetCount"`
	CreatedAt        time.Time       `json:"createdAt"`
	UpdatedAt        time.Time       `json:"updatedAt"`
}

// ActiveAssignmentCountResponse reports how many assets an employee holds
type ActiveAssignmentCountResponse struct {
	EmployeeID  uuid.UUID `json:"employeeId"`
	ActiveCount int64     `json:"activeCount"`
}

// NextIDResponse is the preview of the next generated identifier
type NextIDResponse struct {
	NextID string `json:"nextId"`
}

// ToEmployeeResponse converts a domain employee to a response DTO
func ToEmployeeResponse(e *employee.Employee, activeAssets int64) EmployeeResponse {
	return EmployeeResponse{
		ID:               e.ID,
		EmployeeID:       e.EmployeeID,
		Company:          string(e.Company),
		Name:             e.Name,
		Email:            e.Email,
		Phone:            e.Phone,
		Department:       e.Department,
		Position:         e.Position,
		Status:           e.Status,
		HireDate:         e.HireDate,
		ExitDate:         e.ExitDate,
		UserID:           e.UserID,
		ActiveAssetCount: activeAssets,
		CreatedAt:        e.CreatedAt,
		UpdatedAt:        e.UpdatedAt,
	}
}
