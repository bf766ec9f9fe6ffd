package event

import (
	"context"
	"fmt"

	"github.com/assettrack/backend/internal/domain/assignment"
	"github.com/assettrack/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// PayloadEncoder turns an event into its stored JSON form
type PayloadEncoder interface {
	Serialize(e shared.DomainEvent) ([]byte, error)
}

// AuditLogHandler appends one audit row per assignment ledger event
type AuditLogHandler struct {
	repo    assignment.AuditLogRepository
	encoder PayloadEncoder
	logger  *zap.Logger
}

// NewAuditLogHandler creates a new AuditLogHandler
func NewAuditLogHandler(repo assignment.AuditLogRepository, encoder PayloadEncoder, logger *zap.Logger) *AuditLogHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuditLogHandler{repo: repo, encoder: encoder, logger: logger}
}

// EventTypes returns the ledger event types
func (h *AuditLogHandler) EventTypes() []string {
	return []string{
		assignment.EventTypeAssignmentCreated,
		assignment.EventTypeAssignmentReturned,
		assignment.EventTypeAssignmentUpdated,
		assignment.EventTypeAccessoriesReconciled,
	}
}

// Handle writes the audit row
func (h *AuditLogHandler) Handle(ctx context.Context, e shared.DomainEvent) error {
	le, ok := e.(assignment.LedgerEvent)
	if !ok {
		h.logger.Debug("ignoring non-ledger event", zap.String("event_type", e.EventType()))
		return nil
	}

	payload, err := h.encoder.Serialize(e)
	if err != nil {
		return fmt.Errorf("encode %s payload: %w", e.EventType(), err)
	}

	ref := le.Ledger()
	entry := &assignment.AuditEntry{
		EventID:      e.EventID(),
		EventType:    e.EventType(),
		AssignmentID: ref.AssignmentID,
		AssetID:      ref.AssetID,
		EmployeeID:   ref.EmployeeID,
		ActorID:      ref.AssignedBy,
		Payload:      string(payload),
		OccurredAt:   e.OccurredAt(),
	}
	if err := h.repo.Append(ctx, entry); err != nil {
		return fmt.Errorf("append audit entry: %w", err)
	}
	return nil
}

var _ shared.EventHandler = (*AuditLogHandler)(nil)
