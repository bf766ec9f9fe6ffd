package shared

import (
	"time"

	"github.com/google/uuid"
)

// AggregateRoot is anything that buffers domain events until its service publishes them
type AggregateRoot interface {
	PendingEvents() []DomainEvent
	ClearEvents()
}

// BaseAggregateRoot holds the identity, audit timestamps and optimistic version
// shared by assets, employees, assignments and users.
type BaseAggregateRoot struct {
	ID        uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
	Version   int

	pending []DomainEvent
}

// NewBaseAggregateRoot stamps a fresh identity at version 1
func NewBaseAggregateRoot() BaseAggregateRoot {
	now := time.Now()
	return BaseAggregateRoot{ID: uuid.New(), CreatedAt: now, UpdatedAt: now, Version: 1}
}

// Touch records a mutation at the given instant
func (a *BaseAggregateRoot) Touch(at time.Time) {
	a.UpdatedAt = at
	a.Version++
}

func (a *BaseAggregateRoot) RecordEvent(e DomainEvent) {
	a.pending = append(a.pending, e)
}

func (a *BaseAggregateRoot) PendingEvents() []DomainEvent {
	return a.pending
}

func (a *BaseAggregateRoot) ClearEvents() {
	a.pending = nil
}
