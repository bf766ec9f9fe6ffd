package persistence

import (
	"context"
	"regexp"
	"strconv"
	"strings"

	"github.com/assettrack/backend/internal/domain/employee"
	"github.com/assettrack/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var employeeUniqueRules = []uniqueRule{
	{Constraint: "ux_employees_employee_id", Column: "employees.employee_id", Err: employee.ErrDuplicateEmployeeID},
	{Constraint: "ux_employees_email", Column: "employees.email", Err: employee.ErrDuplicateEmail},
}

// GormEmployeeRepository implements EmployeeRepository using GORM
type GormEmployeeRepository struct {
	db *gorm.DB
}

// NewGormEmployeeRepository creates a new GormEmployeeRepository
func NewGormEmployeeRepository(db *gorm.DB) *GormEmployeeRepository {
	return &GormEmployeeRepository{db: db}
}

// Save inserts or updates an employee
func (r *GormEmployeeRepository) Save(ctx context.Context, e *employee.Employee) error {
	model := models.EmployeeModelFromDomain(e)
	err := r.db.WithContext(ctx).Save(model).Error
	return translateUniqueViolation(err, employeeUniqueRules...)
}

func (r *GormEmployeeRepository) employees(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Model(&models.EmployeeModel{})
}

func (r *GormEmployeeRepository) FindByID(ctx context.Context, id uuid.UUID) (*employee.Employee, error) {
	return firstAs[models.EmployeeModel, *employee.Employee](r.db.WithContext(ctx), employee.ErrEmployeeNotFound, "id = ?", id)
}

// FindByIDs skips IDs without a row
func (r *GormEmployeeRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*employee.Employee, error) {
	if len(ids) == 0 {
		return []*employee.Employee{}, nil
	}
	return findAs[models.EmployeeModel, *employee.Employee](r.db.WithContext(ctx).Where("id IN ?", ids))
}

// FindAll lists employees newest-first with optional search and pagination
func (r *GormEmployeeRepository) FindAll(ctx context.Context, filter employee.Filter) ([]*employee.Employee, int64, error) {
	q := r.employees(ctx)
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.Department != "" {
		q = q.Where("department = ?", filter.Department)
	}
	q = applySearch(q, filter.SearchTerm(), "employee_id", "name", "email", "department")

	total, err := countOf(q)
	if err != nil {
		return nil, 0, err
	}
	list, err := findAs[models.EmployeeModel, *employee.Employee](
		applyPage(q.Order("created_at DESC").Order("id DESC"), filter.Page))
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

// ExistsByEmployeeID is an exact, case-sensitive match
func (r *GormEmployeeRepository) ExistsByEmployeeID(ctx context.Context, employeeID string) (bool, error) {
	return existsIn(r.employees(ctx).Where("employee_id = ?", employeeID))
}

func (r *GormEmployeeRepository) ExistsByEmail(ctx context.Context, email string, excludeID *uuid.UUID) (bool, error) {
	q := r.employees(ctx).Where("LOWER(email) = ?", strings.ToLower(email))
	if excludeID != nil {
		q = q.Where("id <> ?", *excludeID)
	}
	return existsIn(q)
}

// MaxCompanySequence returns the largest numeric suffix among IDs shaped PREFIX<digits>
func (r *GormEmployeeRepository) MaxCompanySequence(ctx context.Context, prefix string) (int64, error) {
	var ids []string
	if err := r.employees(ctx).
		Where("employee_id LIKE ?", prefix+"%").
		Pluck("employee_id", &ids).Error; err != nil {
		return 0, err
	}

	pattern := regexp.MustCompile(`^` + regexp.QuoteMeta(prefix) + `(\d+)$`)
	var maxSeq int64
	for _, id := range ids {
		m := pattern.FindStringSubmatch(id)
		if m == nil {
			continue
		}
		n, err := strconv.ParseInt(m[1], 10, 64)
		if err != nil {
			continue
		}
		if n > maxSeq {
			maxSeq = n
		}
	}
	return maxSeq, nil
}

func (r *GormEmployeeRepository) CountByStatus(ctx context.Context, status employee.Status) (int64, error) {
	return countOf(r.employees(ctx).Where("status = ?", status))
}

// Ensure GormEmployeeRepository implements EmployeeRepository
var _ employee.EmployeeRepository = (*GormEmployeeRepository)(nil)
