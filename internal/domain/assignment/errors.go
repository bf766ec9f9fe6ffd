package assignment

import "github.com/assettrack/backend/internal/domain/shared"

var (
	ErrAssignmentNotFound = shared.NewNotFoundError("ASSIGNMENT_NOT_FOUND", "Assignment not found")
	ErrAlreadyAssigned    = shared.NewConflictError("ALREADY_ASSIGNED", "Asset is already assigned")
	ErrAlreadyReturned    = shared.NewConflictError("ALREADY_RETURNED", "Assignment is already returned")
	ErrNotActive          = shared.NewConflictError("NOT_ACTIVE", "Assignment is not active")
	ErrCannotUpdateActive = shared.NewConflictError("CANNOT_UPDATE_ACTIVE", "Can only update returned accessories for returned assignments")

	ErrAccessoryNotIssued = shared.NewFieldError("returnedAccessories", "Returned accessories must have been issued with the assignment")
	ErrReconcileExclusive = shared.NewFieldError("returnedAccessories", "Returned accessories cannot be combined with other fields")
	ErrForbiddenFields    = shared.NewFieldError("body", "Only dueDate, notes, accessories, and condition can be updated")
)

// forbiddenPatchFields are request keys an update may never carry
var forbiddenPatchFields = map[string]struct{}{
	"assetId":      {},
	"employeeId":   {},
	"assignedAt":   {},
	"assignedDate": {},
	"returnedAt":   {},
	"returnDate":   {},
	"status":       {},
	"assignedBy":   {},
	"asset":        {},
	"employee":     {},
}

// CheckPatchKeys rejects updates that try to touch ledger-owned fields
func CheckPatchKeys(keys []string) error {
	for _, k := range keys {
		if _, bad := forbiddenPatchFields[k]; bad {
			return ErrForbiddenFields
		}
	}
	return nil
}
