package event

import (
	"github.com/assettrack/backend/internal/domain/asset"
	"github.com/assettrack/backend/internal/domain/assignment"
	"github.com/assettrack/backend/internal/domain/employee"
	"github.com/assettrack/backend/internal/domain/identity"
)

// RegisterDomainEvents registers every event the services publish
func RegisterDomainEvents(s *Serializer) {
	s.Register(asset.EventTypeAssetCreated, &asset.AssetCreatedEvent{})
	s.Register(asset.EventTypeAssetStatusChanged, &asset.AssetStatusChangedEvent{})
	s.Register(asset.EventTypeAssetDeleted, &asset.AssetDeletedEvent{})

	s.Register(employee.EventTypeEmployeeCreated, &employee.EmployeeCreatedEvent{})
	s.Register(employee.EventTypeEmployeeStatusChanged, &employee.EmployeeStatusChangedEvent{})

	s.Register(identity.EventTypeUserCreated, &identity.UserCreatedEvent{})
	s.Register(identity.EventTypeUserPasswordChanged, &identity.UserPasswordChangedEvent{})
	s.Register(identity.EventTypeUserStatusChanged, &identity.UserStatusChangedEvent{})

	s.Register(assignment.EventTypeAssignmentCreated, &assignment.AssignmentCreatedEvent{})
	s.Register(assignment.EventTypeAssignmentReturned, &assignment.AssignmentReturnedEvent{})
	s.Register(assignment.EventTypeAssignmentUpdated, &assignment.AssignmentUpdatedEvent{})
	s.Register(assignment.EventTypeAccessoriesReconciled, &assignment.AccessoriesReconciledEvent{})
}
