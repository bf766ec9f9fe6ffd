package assignment

import (
	"time"

	"github.com/assettrack/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Aggregate type constant for Assignment
const AggregateTypeAssignment = "Assignment"

// Assignment domain event types
const (
	EventTypeAssignmentCreated     = "assignment.created"
	EventTypeAssignmentReturned    = "assignment.returned"
	EventTypeAssignmentUpdated     = "assignment.updated"
	EventTypeAccessoriesReconciled = "assignment.accessories_reconciled"
)

// LedgerEvent is implemented by every assignment event so handlers can
// read the common references without a type switch.
type LedgerEvent interface {
	shared.DomainEvent
	Ledger() LedgerRef
}

// LedgerRef identifies the rows an assignment event touches
type LedgerRef struct {
	AssignmentID uuid.UUID `json:"assignment_id"`
	AssetID      uuid.UUID `json:"asset_id"`
	EmployeeID   uuid.UUID `json:"employee_id"`
	AssignedBy   uuid.UUID `json:"assigned_by"`
}

func refOf(a *Assignment) LedgerRef {
	return LedgerRef{
		AssignmentID: a.ID,
		AssetID:      a.AssetID,
		EmployeeID:   a.EmployeeID,
		AssignedBy:   a.AssignedBy,
	}
}

// AssignmentCreatedEvent is published when an asset is handed out
type AssignmentCreatedEvent struct {
	shared.BaseDomainEvent
	LedgerRef
	IssuedAccessories []string   `json:"issued_accessories"`
	DueDate           *time.Time `json:"due_date,omitempty"`
}

// Ledger returns the assignment references
func (e *AssignmentCreatedEvent) Ledger() LedgerRef { return e.LedgerRef }

// NewAssignmentCreatedEvent creates a new AssignmentCreatedEvent
func NewAssignmentCreatedEvent(a *Assignment) *AssignmentCreatedEvent {
	return &AssignmentCreatedEvent{
		BaseDomainEvent:   shared.NewBaseDomainEvent(EventTypeAssignmentCreated, AggregateTypeAssignment, a.ID),
		LedgerRef:         refOf(a),
		IssuedAccessories: a.IssuedAccessories.Strings(),
		DueDate:           a.DueDate,
	}
}

// AssignmentReturnedEvent is published when an assignment is closed
type AssignmentReturnedEvent struct {
	shared.BaseDomainEvent
	LedgerRef
	Condition          Condition `json:"condition,omitempty"`
	PendingAccessories []string  `json:"pending_accessories"`
	ReturnedAt         time.Time `json:"returned_at"`
}

// Ledger returns the assignment references
func (e *AssignmentReturnedEvent) Ledger() LedgerRef { return e.LedgerRef }

// NewAssignmentReturnedEvent creates a new AssignmentReturnedEvent
func NewAssignmentReturnedEvent(a *Assignment) *AssignmentReturnedEvent {
	var returnedAt time.Time
	if a.ReturnedAt != nil {
		returnedAt = *a.ReturnedAt
	}
	return &AssignmentReturnedEvent{
		BaseDomainEvent:    shared.NewBaseDomainEvent(EventTypeAssignmentReturned, AggregateTypeAssignment, a.ID),
		LedgerRef:          refOf(a),
		Condition:          a.Condition,
		PendingAccessories: a.PendingAccessories().Strings(),
		ReturnedAt:         returnedAt,
	}
}

// AssignmentUpdatedEvent is published when an active assignment is edited
type AssignmentUpdatedEvent struct {
	shared.BaseDomainEvent
	LedgerRef
	IssuedAccessories []string   `json:"issued_accessories"`
	DueDate           *time.Time `json:"due_date,omitempty"`
}

// Ledger returns the assignment references
func (e *AssignmentUpdatedEvent) Ledger() LedgerRef { return e.LedgerRef }

// NewAssignmentUpdatedEvent creates a new AssignmentUpdatedEvent
func NewAssignmentUpdatedEvent(a *Assignment) *AssignmentUpdatedEvent {
	return &AssignmentUpdatedEvent{
		BaseDomainEvent:   shared.NewBaseDomainEvent(EventTypeAssignmentUpdated, AggregateTypeAssignment, a.ID),
		LedgerRef:         refOf(a),
		IssuedAccessories: a.IssuedAccessories.Strings(),
		DueDate:           a.DueDate,
	}
}

// AccessoriesReconciledEvent is published when pending accessories come back
type AccessoriesReconciledEvent struct {
	shared.BaseDomainEvent
	LedgerRef
	Confirmed []string `json:"confirmed"`
	Pending   []string `json:"pending"`
}

// Ledger returns the assignment references
func (e *AccessoriesReconciledEvent) Ledger() LedgerRef { return e.LedgerRef }

// NewAccessoriesReconciledEvent creates a new AccessoriesReconciledEvent
func NewAccessoriesReconciledEvent(a *Assignment, confirmed AccessorySet) *AccessoriesReconciledEvent {
	return &AccessoriesReconciledEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeAccessoriesReconciled, AggregateTypeAssignment, a.ID),
		LedgerRef:       refOf(a),
		Confirmed:       confirmed.Strings(),
		Pending:         a.PendingAccessories().Strings(),
	}
}
