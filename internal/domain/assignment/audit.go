package assignment

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// AuditEntry is one append-only record of a ledger event
type AuditEntry struct {
	ID           uuid.UUID
	EventID      uuid.UUID
	EventType    string
	AssignmentID uuid.UUID
	AssetID      uuid.UUID
	EmployeeID   uuid.UUID
	ActorID      uuid.UUID
	Payload      string
	OccurredAt   time.Time
}

// AuditLogRepository persists ledger audit entries
type AuditLogRepository interface {
	// Append stores an entry; an entry whose EventID already exists is ignored
	Append(ctx context.Context, entry *AuditEntry) error

	// FindByAssignment returns the entries of one assignment, oldest first
	FindByAssignment(ctx context.Context, assignmentID uuid.UUID) ([]*AuditEntry, error)
}
