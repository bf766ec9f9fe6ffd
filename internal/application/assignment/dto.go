package assignment

import (
	"time"

	"github.com/assettrack/backend/internal/domain/assignment"
	"github.com/google/uuid"
)

// CreateAssignmentRequest hands an asset to an employee.
// Accessories (label form) takes precedence over the legacy AccessoriesIssued enum form.
type CreateAssignmentRequest struct {
	AssetID           uuid.UUID
	EmployeeID        uuid.UUID
	AssignedDate      *time.Time
	DueDate           *time.Time
	Notes             string
	Accessories       []string
	AccessoriesIssued []string
}

// ReturnRequest is the primary return shape
type ReturnRequest struct {
	Condition           string
	Remarks             string
	ReturnedAccessories []string
}

// LegacyReturnRequest returns by assignment ID with a business return date
type LegacyReturnRequest struct {
	AssignmentID uuid.UUID
	ReturnDate   time.Time
	Notes        *string
}

// UpdateAssignmentRequest is a partial update.
// Keys lists every top-level key present in the request body.
type UpdateAssignmentRequest struct {
	Keys                []string
	DueDate             *time.Time
	Notes               *string
	Accessories         *[]string
	AccessoriesIssued   *[]string
	Condition           *string
	ReturnedAccessories *[]string
}

// ListAssignmentsFilter selects ledger entries
type ListAssignmentsFilter struct {
	EmployeeID *uuid.UUID
	AssetID    *uuid.UUID
	Status     string
}

// AssetSummary is the asset projection embedded in ledger responses
type AssetSummary struct {
	ID           uuid.UUID `json:"id"`
	AssetID      string    `json:"assetId"`
	Name         string    `json:"name"`
	Category     string    `json:"category,omitempty"`
	SerialNumber string    `json:"serialNumber,omitempty"`
	Status       string    `json:"status,omitempty"`
}

// EmployeeSummary is the employee projection embedded in ledger responses
type EmployeeSummary struct {
	ID         uuid.UUID `json:"id"`
	EmployeeID string    `json:"employeeId"`
	Name       string    `json:"name"`
	Email      string    `json:"email,omitempty"`
	Department string    `json:"department"`
}

// UserSummary identifies the acting user
type UserSummary struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

// AssignmentResponse represents a ledger entry in API responses.
// Asset, Employee and AssignedBy are nil when the referenced row no longer exists.
type AssignmentResponse struct {
	ID                  uuid.UUID            `json:"id"`
	AssetRef            uuid.UUID            `json:"assetRef"`
	EmployeeRef         uuid.UUID            `json:"employeeRef"`
	Asset               *AssetSummary        `json:"asset"`
	Employee            *EmployeeSummary     `json:"employee"`
	AssignedBy          *UserSummary         `json:"assignedBy"`
	AssignedDate        time.Time            `json:"assignedDate"`
	AssignedAt          time.Time            `json:"assignedAt"`
	DueDate             *time.Time           `json:"dueDate"`
	ReturnDate          *time.Time           `json:"returnDate"`
	ReturnedAt          *time.Time           `json:"returnedAt"`
	Status              assignment.Status    `json:"status"`
	Notes               string               `json:"notes"`
	Condition           assignment.Condition `json:"condition,omitempty"`
	Remarks             string               `json:"remarks"`
	IssuedAccessories   []string             `json:"issuedAccessories"`
	ReturnedAccessories []string             `json:"returnedAccessories"`
	PendingAccessories  []string             `json:"pendingAccessories"`
	IsOverdue           bool                 `json:"isOverdue"`
	CreatedAt           time.Time            `json:"createdAt"`
	UpdatedAt           time.Time            `json:"updatedAt"`
}

// RenderAssignment renders a ledger entry with whatever summaries were loaded.
// now drives the isOverdue flag.
func RenderAssignment(a *assignment.Assignment, s *Summaries, now time.Time) AssignmentResponse {
	resp := AssignmentResponse{
		ID:                  a.ID,
		AssetRef:            a.AssetID,
		EmployeeRef:         a.EmployeeID,
		AssignedDate:        a.AssignedDate,
		AssignedAt:          a.AssignedAt,
		DueDate:             a.DueDate,
		ReturnDate:          a.ReturnDate,
		ReturnedAt:          a.ReturnedAt,
		Status:              a.Status,
		Notes:               a.Notes,
		Condition:           a.Condition,
		Remarks:             a.Remarks,
		IssuedAccessories:   a.IssuedAccessories.Strings(),
		ReturnedAccessories: a.ReturnedAccessories.Strings(),
		PendingAccessories:  a.PendingAccessories().Strings(),
		IsOverdue:           a.IsOverdue(now),
		CreatedAt:           a.CreatedAt,
		UpdatedAt:           a.UpdatedAt,
	}
	if s != nil {
		resp.Asset = s.Asset(a.AssetID)
		resp.Employee = s.Employee(a.EmployeeID)
		resp.AssignedBy = s.User(a.AssignedBy)
	}
	return resp
}
