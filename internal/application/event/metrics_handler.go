package event

import (
	"context"

	"github.com/assettrack/backend/internal/domain/assignment"
	"github.com/assettrack/backend/internal/domain/shared"
)

// LedgerRecorder receives ledger activity counts
type LedgerRecorder interface {
	AssignmentCreated(ctx context.Context)
	AssignmentReturned(ctx context.Context, condition string)
	AccessoriesReconciled(ctx context.Context, accessories []string)
}

// LedgerMetricsHandler feeds ledger events into business counters
type LedgerMetricsHandler struct {
	recorder LedgerRecorder
}

// NewLedgerMetricsHandler creates a new LedgerMetricsHandler
func NewLedgerMetricsHandler(recorder LedgerRecorder) *LedgerMetricsHandler {
	return &LedgerMetricsHandler{recorder: recorder}
}

// EventTypes returns the counted event types
func (h *LedgerMetricsHandler) EventTypes() []string {
	return []string{
		assignment.EventTypeAssignmentCreated,
		assignment.EventTypeAssignmentReturned,
		assignment.EventTypeAccessoriesReconciled,
	}
}

// Handle increments the counter matching the event
func (h *LedgerMetricsHandler) Handle(ctx context.Context, e shared.DomainEvent) error {
	switch ev := e.(type) {
	case *assignment.AssignmentCreatedEvent:
		h.recorder.AssignmentCreated(ctx)
	case *assignment.AssignmentReturnedEvent:
		h.recorder.AssignmentReturned(ctx, string(ev.Condition))
	case *assignment.AccessoriesReconciledEvent:
		h.recorder.AccessoriesReconciled(ctx, ev.Confirmed)
	}
	return nil
}

var _ shared.EventHandler = (*LedgerMetricsHandler)(nil)
