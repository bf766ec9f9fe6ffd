package employee

import (
	"context"

	"github.com/assettrack/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// EmployeeRepository defines the interface for employee persistence
type EmployeeRepository interface {
	// Save inserts or updates an employee
	Save(ctx context.Context, employee *Employee) error

	// FindByID finds an employee by its internal ID
	FindByID(ctx context.Context, id uuid.UUID) (*Employee, error)

	// FindByIDs loads several employees, skipping IDs that do not exist
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*Employee, error)

	// FindAll lists employees newest-first
	FindAll(ctx context.Context, filter Filter) ([]*Employee, int64, error)

	// ExistsByEmployeeID checks whether the human-readable ID is taken
	ExistsByEmployeeID(ctx context.Context, employeeID string) (bool, error)

	// ExistsByEmail checks for another employee using the email
	ExistsByEmail(ctx context.Context, email string, excludeID *uuid.UUID) (bool, error)

	// MaxCompanySequence scans existing IDs for prefix and returns the largest numeric suffix, or 0
	MaxCompanySequence(ctx context.Context, prefix string) (int64, error)

	// CountByStatus counts employees in a status
	CountByStatus(ctx context.Context, status Status) (int64, error)
}

// Filter contains filter options for listing employees
type Filter struct {
	shared.ListFilter
	Status     Status
	Department string
}
