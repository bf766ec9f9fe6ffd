package persistence

import (
	"context"

	appassignment "github.com/assettrack/backend/internal/application/assignment"
	appemployee "github.com/assettrack/backend/internal/application/employee"
	"github.com/assettrack/backend/internal/domain/asset"
	"github.com/assettrack/backend/internal/domain/assignment"
	"github.com/assettrack/backend/internal/domain/employee"
	"github.com/assettrack/backend/internal/domain/identity"
	"gorm.io/gorm"
)

// GormAssignmentTransactionScope implements the ledger TransactionScope using GORM transactions.
type GormAssignmentTransactionScope struct {
	db *gorm.DB
}

// NewGormAssignmentTransactionScope creates a new GormAssignmentTransactionScope.
func NewGormAssignmentTransactionScope(db *gorm.DB) *GormAssignmentTransactionScope {
	return &GormAssignmentTransactionScope{db: db}
}

// Execute runs the given function within a database transaction.
// If the function returns an error, the transaction is rolled back.
// If the function succeeds, the transaction is committed.
func (s *GormAssignmentTransactionScope) Execute(ctx context.Context, fn func(repos appassignment.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormTransactionalRepositories{tx: tx})
	})
}

// GormEmployeeTransactionScope implements the employee TransactionScope using GORM transactions.
type GormEmployeeTransactionScope struct {
	db *gorm.DB
}

// NewGormEmployeeTransactionScope creates a new GormEmployeeTransactionScope.
func NewGormEmployeeTransactionScope(db *gorm.DB) *GormEmployeeTransactionScope {
	return &GormEmployeeTransactionScope{db: db}
}

// Execute runs the given function within a database transaction.
func (s *GormEmployeeTransactionScope) Execute(ctx context.Context, fn func(repos appemployee.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormTransactionalRepositories{tx: tx})
	})
}

// gormTransactionalRepositories provides access to all repositories within a transaction.
type gormTransactionalRepositories struct {
	tx *gorm.DB
}

// AssetRepo returns the asset repository scoped to the current transaction.
func (r *gormTransactionalRepositories) AssetRepo() asset.AssetRepository {
	return NewGormAssetRepository(r.tx)
}

// EmployeeRepo returns the employee repository scoped to the current transaction.
func (r *gormTransactionalRepositories) EmployeeRepo() employee.EmployeeRepository {
	return NewGormEmployeeRepository(r.tx)
}

// AssignmentRepo returns the assignment repository scoped to the current transaction.
func (r *gormTransactionalRepositories) AssignmentRepo() assignment.AssignmentRepository {
	return NewGormAssignmentRepository(r.tx)
}

// UserRepo returns the user repository scoped to the current transaction.
func (r *gormTransactionalRepositories) UserRepo() identity.UserRepository {
	return NewGormUserRepository(r.tx)
}

var (
	_ appassignment.TransactionScope          = (*GormAssignmentTransactionScope)(nil)
	_ appassignment.TransactionalRepositories = (*gormTransactionalRepositories)(nil)
	_ appemployee.TransactionScope            = (*GormEmployeeTransactionScope)(nil)
	_ appemployee.TransactionalRepositories   = (*gormTransactionalRepositories)(nil)
)
