package event

import (
	"context"
	"encoding/json"
	"time"

	"github.com/assettrack/backend/internal/domain/assignment"
	"github.com/google/uuid"
)

// AuditEntryResponse is one audit row as returned by the API
type AuditEntryResponse struct {
	ID         uuid.UUID       `json:"id"`
	EventID    uuid.UUID       `json:"eventId"`
	EventType  string          `json:"eventType"`
	ActorID    uuid.UUID       `json:"actorId"`
	Payload    json.RawMessage `json:"payload"`
	OccurredAt time.Time       `json:"occurredAt"`
}

// AuditService reads the assignment audit trail
type AuditService struct {
	repo assignment.AuditLogRepository
}

// NewAuditService creates a new AuditService
func NewAuditService(repo assignment.AuditLogRepository) *AuditService {
	return &AuditService{repo: repo}
}

// Trail returns the audit entries of an assignment, oldest first
func (s *AuditService) Trail(ctx context.Context, assignmentID uuid.UUID) ([]AuditEntryResponse, error) {
	entries, err := s.repo.FindByAssignment(ctx, assignmentID)
	if err != nil {
		return nil, err
	}
	out := make([]AuditEntryResponse, len(entries))
	for i, e := range entries {
		out[i] = AuditEntryResponse{
			ID:         e.ID,
			EventID:    e.EventID,
			EventType:  e.EventType,
			ActorID:    e.ActorID,
			Payload:    json.RawMessage(e.Payload),
			OccurredAt: e.OccurredAt,
		}
	}
	return out, nil
}
