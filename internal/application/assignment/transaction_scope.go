package assignment

import (
	"context"

	"github.com/assettrack/backend/internal/domain/asset"
	"github.com/assettrack/backend/internal/domain/assignment"
	"github.com/assettrack/backend/internal/domain/employee"
)

// TransactionScope provides transactional access to the ledger repositories.
// Every ledger mutation and the matching asset status change commit or roll back together.
type TransactionScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides access to the repositories a ledger mutation touches.
// All repositories returned share the same underlying database transaction.
type TransactionalRepositories interface {
	// AssetRepo returns the asset repository scoped to the current transaction
	AssetRepo() asset.AssetRepository
	// EmployeeRepo returns the employee repository scoped to the current transaction
	EmployeeRepo() employee.EmployeeRepository
	// AssignmentRepo returns the assignment repository scoped to the current transaction
	AssignmentRepo() assignment.AssignmentRepository
}

// NoOpTransactionScope runs the function against plain repositories without a transaction.
// This is useful for testing.
type NoOpTransactionScope struct {
	assetRepo      asset.AssetRepository
	employeeRepo   employee.EmployeeRepository
	assignmentRepo assignment.AssignmentRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope with the given repositories.
func NewNoOpTransactionScope(
	assetRepo asset.AssetRepository,
	employeeRepo employee.EmployeeRepository,
	assignmentRepo assignment.AssignmentRepository,
) *NoOpTransactionScope {
	return &NoOpTransactionScope{
		assetRepo:      assetRepo,
		employeeRepo:   employeeRepo,
		assignmentRepo: assignmentRepo,
	}
}

// Execute runs the function without a real transaction.
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// AssetRepo returns the asset repository.
func (s *NoOpTransactionScope) AssetRepo() asset.AssetRepository {
	return s.assetRepo
}

// EmployeeRepo returns the employee repository.
func (s *NoOpTransactionScope) EmployeeRepo() employee.EmployeeRepository {
	return s.employeeRepo
}

// AssignmentRepo returns the assignment repository.
func (s *NoOpTransactionScope) AssignmentRepo() assignment.AssignmentRepository {
	return s.assignmentRepo
}

var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)
