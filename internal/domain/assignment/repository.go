package assignment

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// AssignmentRepository defines the interface for ledger persistence.
// Every list is ordered by assigned_at DESC, id DESC unless noted.
type AssignmentRepository interface {
	// Save inserts or updates an assignment
	Save(ctx context.Context, assignment *Assignment) error

	// FindByID finds an assignment by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Assignment, error)

	// FindByIDForUpdate is FindByID with a row lock where the store supports it
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*Assignment, error)

	// FindAll lists assignments matching filter
	FindAll(ctx context.Context, filter Filter) ([]*Assignment, error)

	// ExistsActiveForAsset reports whether the asset has an Active assignment
	ExistsActiveForAsset(ctx context.Context, assetID uuid.UUID) (bool, error)

	// CountActiveByEmployee counts Active assignments held by one employee
	CountActiveByEmployee(ctx context.Context, employeeID uuid.UUID) (int64, error)

	// CountActiveByEmployees counts Active assignments grouped by employee
	CountActiveByEmployees(ctx context.Context, employeeIDs []uuid.UUID) (map[uuid.UUID]int64, error)

	// CountActive counts every Active assignment
	CountActive(ctx context.Context) (int64, error)

	// CountOverdue counts Active, unreturned assignments with dueDate before now
	CountOverdue(ctx context.Context, now time.Time) (int64, error)

	// FindRecentActive returns Active assignments ordered by assigned_date DESC
	FindRecentActive(ctx context.Context, limit int) ([]*Assignment, error)

	// FindReturned returns Returned assignments with returned_at set, ordered by returned_at DESC
	FindReturned(ctx context.Context) ([]*Assignment, error)
}

// Filter contains filter options for listing assignments
type Filter struct {
	EmployeeID *uuid.UUID
	AssetID    *uuid.UUID
	Status     Status
}
