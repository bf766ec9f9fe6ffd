package employee

import "github.com/assettrack/backend/internal/domain/shared"

var (
	ErrEmployeeNotFound    = shared.NewNotFoundError("EMPLOYEE_NOT_FOUND", "Employee not found")
	ErrDuplicateEmployeeID = shared.NewConflictError(shared.CodeDuplicateID, "Employee ID already exists")
	ErrDuplicateEmail      = shared.NewConflictError(shared.CodeDuplicateEmail, "Employee with this email already exists")
	ErrHasActiveAssets     = shared.NewConflictError("HAS_ACTIVE_ASSETS", "Cannot relieve employee with active asset assignments")
	ErrInvalidCompany      = shared.NewDomainError("INVALID_COMPANY", "Company is not recognized for employee ID generation")
	ErrExitDateRequired    = shared.NewDomainError("EXIT_DATE_REQUIRED", "Exit date is required when status is Relieved")
)
