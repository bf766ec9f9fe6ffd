package employee

import (
	"context"

	"github.com/assettrack/backend/internal/domain/assignment"
	"github.com/assettrack/backend/internal/domain/employee"
	"github.com/assettrack/backend/internal/domain/identity"
)

// TransactionScope runs an employee change and its cascade to the linked
// user account in one database transaction.
type TransactionScope interface {
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides the repositories an employee mutation touches.
type TransactionalRepositories interface {
	EmployeeRepo() employee.EmployeeRepository
	UserRepo() identity.UserRepository
	AssignmentRepo() assignment.AssignmentRepository
}

// NoOpTransactionScope runs the function against plain repositories without a transaction.
type NoOpTransactionScope struct {
	employeeRepo   employee.EmployeeRepository
	userRepo       identity.UserRepository
	assignmentRepo assignment.AssignmentRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope with the given repositories.
func NewNoOpTransactionScope(
	employeeRepo employee.EmployeeRepository,
	userRepo identity.UserRepository,
	assignmentRepo assignment.AssignmentRepository,
) *NoOpTransactionScope {
	return &NoOpTransactionScope{
		employeeRepo:   employeeRepo,
		userRepo:       userRepo,
		assignmentRepo: assignmentRepo,
	}
}

// Execute runs the function without a real transaction.
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

func (s *NoOpTransactionScope) EmployeeRepo() employee.EmployeeRepository {
	return s.employeeRepo
}

func (s *NoOpTransactionScope) UserRepo() identity.UserRepository {
	return s.userRepo
}

func (s *NoOpTransactionScope) AssignmentRepo() assignment.AssignmentRepository {
	return s.assignmentRepo
}

var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)
