package employee

import (
	"time"

	"github.com/assettrack/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Aggregate type constant for Employee
const AggregateTypeEmployee = "Employee"

// Employee domain event types
const (
	EventTypeEmployeeCreated       = "employee.created"
	EventTypeEmployeeStatusChanged = "employee.status_changed"
)

// EmployeeCreatedEvent is published when an employee is registered
type EmployeeCreatedEvent struct {
	shared.BaseDomainEvent
	EmployeeID string  `json:"employee_id"`
	Company    Company `json:"company,omitempty"`
	Status     Status  `json:"status"`
}

// NewEmployeeCreatedEvent creates a new EmployeeCreatedEvent
func NewEmployeeCreatedEvent(e *Employee) *EmployeeCreatedEvent {
	return &EmployeeCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeEmployeeCreated, AggregateTypeEmployee, e.ID),
		EmployeeID:      e.EmployeeID,
		Company:         e.Company,
		Status:          e.Status,
	}
}

// EmployeeStatusChangedEvent is published on every status transition
type EmployeeStatusChangedEvent struct {
	shared.BaseDomainEvent
	EmployeeID string     `json:"employee_id"`
	OldStatus  Status     `json:"old_status"`
	NewStatus  Status     `json:"new_status"`
	ExitDate   *time.Time `json:"exit_date,omitempty"`
	UserID     *uuid.UUID `json:"user_id,omitempty"`
}

// NewEmployeeStatusChangedEvent creates a new EmployeeStatusChangedEvent
func NewEmployeeStatusChangedEvent(e *Employee, old Status) *EmployeeStatusChangedEvent {
	return &EmployeeStatusChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeEmployeeStatusChanged, AggregateTypeEmployee, e.ID),
		EmployeeID:      e.EmployeeID,
		OldStatus:       old,
		NewStatus:       e.Status,
		ExitDate:        e.ExitDate,
		UserID:          e.UserID,
	}
}
