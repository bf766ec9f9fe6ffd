package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/assettrack/backend/internal/domain/assignment"
	"github.com/assettrack/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ux_assignments_active_asset is a partial unique index on asset_id WHERE status = 'Active'
var assignmentUniqueRules = []uniqueRule{
	{Constraint: "ux_assignments_active_asset", Column: "assignments.asset_id", Err: assignment.ErrAlreadyAssigned},
}

// GormAssignmentRepository implements AssignmentRepository using GORM
type GormAssignmentRepository struct {
	db *gorm.DB
}

// NewGormAssignmentRepository creates a new GormAssignmentRepository
func NewGormAssignmentRepository(db *gorm.DB) *GormAssignmentRepository {
	return &GormAssignmentRepository{db: db}
}

// Save inserts or updates an assignment
func (r *GormAssignmentRepository) Save(ctx context.Context, a *assignment.Assignment) error {
	model := models.AssignmentModelFromDomain(a)
	err := r.db.WithContext(ctx).Save(model).Error
	return translateUniqueViolation(err, assignmentUniqueRules...)
}

// FindByID finds an assignment by ID
func (r *GormAssignmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*assignment.Assignment, error) {
	return r.findOne(r.db.WithContext(ctx), id)
}

// FindByIDForUpdate finds an assignment by ID and locks the row until the transaction ends
func (r *GormAssignmentRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*assignment.Assignment, error) {
	return r.findOne(lockForUpdate(r.db.WithContext(ctx)), id)
}

func (r *GormAssignmentRepository) findOne(query *gorm.DB, id uuid.UUID) (*assignment.Assignment, error) {
	var model models.AssignmentModel
	if err := query.First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, assignment.ErrAssignmentNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll lists assignments matching filter, ordered by assigned_at DESC, id DESC
func (r *GormAssignmentRepository) FindAll(ctx context.Context, filter assignment.Filter) ([]*assignment.Assignment, error) {
	query := r.db.WithContext(ctx).Model(&models.AssignmentModel{})
	if filter.EmployeeID != nil {
		query = query.Where("employee_id = ?", *filter.EmployeeID)
	}
	if filter.AssetID != nil {
		query = query.Where("asset_id = ?", *filter.AssetID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	return r.find(query.Order("assigned_at DESC").Order("id DESC"))
}

func (r *GormAssignmentRepository) find(query *gorm.DB) ([]*assignment.Assignment, error) {
	var assignmentModels []*models.AssignmentModel
	if err := query.Find(&assignmentModels).Error; err != nil {
		return nil, err
	}
	assignments := make([]*assignment.Assignment, len(assignmentModels))
	for i, model := range assignmentModels {
		assignments[i] = model.ToDomain()
	}
	return assignments, nil
}

// ExistsActiveForAsset reports whether the asset has an Active assignment
func (r *GormAssignmentRepository) ExistsActiveForAsset(ctx context.Context, assetID uuid.UUID) (bool, error) {
	var count int64
	if err := r.active(ctx).Where("asset_id = ?", assetID).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// CountActiveByEmployee counts Active assignments held by one employee
func (r *GormAssignmentRepository) CountActiveByEmployee(ctx context.Context, employeeID uuid.UUID) (int64, error) {
	var count int64
	if err := r.active(ctx).Where("employee_id = ?", employeeID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountActiveByEmployees counts Active assignments grouped by employee in a single query
func (r *GormAssignmentRepository) CountActiveByEmployees(ctx context.Context, employeeIDs []uuid.UUID) (map[uuid.UUID]int64, error) {
	counts := make(map[uuid.UUID]int64, len(employeeIDs))
	if len(employeeIDs) == 0 {
		return counts, nil
	}
	var rows []struct {
		EmployeeID uuid.UUID
		Count      int64
	}
	if err := r.active(ctx).
		Select("employee_id, COUNT(*) AS count").
		Where("employee_id IN ?", employeeIDs).
		Group("employee_id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	for _, row := range rows {
		counts[row.EmployeeID] = row.Count
	}
	return counts, nil
}

// CountActive counts every Active assignment
func (r *GormAssignmentRepository) CountActive(ctx context.Context) (int64, error) {
	var count int64
	if err := r.active(ctx).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountOverdue counts Active, unreturned assignments whose due date has passed
func (r *GormAssignmentRepository) CountOverdue(ctx context.Context, now time.Time) (int64, error) {
	var count int64
	if err := r.active(ctx).
		Where("returned_at IS NULL").
		Where("due_date IS NOT NULL AND due_date < ?", now).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// FindRecentActive returns the newest Active assignments by assigned date
func (r *GormAssignmentRepository) FindRecentActive(ctx context.Context, limit int) ([]*assignment.Assignment, error) {
	return r.find(r.active(ctx).
		Order("assigned_date DESC").
		Order("id DESC").
		Limit(limit))
}

// FindReturned returns Returned assignments with returned_at set, newest return first
func (r *GormAssignmentRepository) FindReturned(ctx context.Context) ([]*assignment.Assignment, error) {
	return r.find(r.db.WithContext(ctx).
		Model(&models.AssignmentModel{}).
		Where("status = ?", assignment.StatusReturned).
		Where("returned_at IS NOT NULL").
		Order("returned_at DESC").
		Order("id DESC"))
}

func (r *GormAssignmentRepository) active(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&models.AssignmentModel{}).
		Where("status = ?", assignment.StatusActive)
}

// Ensure GormAssignmentRepository implements AssignmentRepository
var _ assignment.AssignmentRepository = (*GormAssignmentRepository)(nil)
