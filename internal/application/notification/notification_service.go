// Package notification derives reminders from the assignment ledger.
// Nothing here is persisted; every call recomputes from the current rows.
package notification

import (
	"context"
	"time"

	ledger "github.com/assettrack/backend/internal/application/assignment"
	"github.com/assettrack/backend/internal/domain/assignment"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// PendingAccessory is one accessory still outstanding after an asset came back
type PendingAccessory struct {
	AssignmentID uuid.UUID               `json:"assignmentId"`
	Asset        *ledger.AssetSummary    `json:"asset"`
	Employee     *ledger.EmployeeSummary `json:"employee"`
	Accessory    string                  `json:"accessory"`
	ReturnedAt   time.Time               `json:"returnedAt"`
}

// NotificationService lists accessories that were issued but not yet handed back
type NotificationService struct {
	assignmentRepo assignment.AssignmentRepository
	summaries      *ledger.SummaryLoader
	logger         *zap.Logger
}

// NewNotificationService creates a new NotificationService
func NewNotificationService(
	assignmentRepo assignment.AssignmentRepository,
	summaries *ledger.SummaryLoader,
	logger *zap.Logger,
) *NotificationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &NotificationService{
		assignmentRepo: assignmentRepo,
		summaries:      summaries,
		logger:         logger,
	}
}

// PendingAccessories emits one record per pending accessory, most recent return first
func (s *NotificationService) PendingAccessories(ctx context.Context) ([]PendingAccessory, error) {
	returned, err := s.assignmentRepo.FindReturned(ctx)
	if err != nil {
		return nil, err
	}

	var withPending []*assignment.Assignment
	for _, a := range returned {
		if len(a.PendingAccessories()) > 0 {
			withPending = append(withPending, a)
		}
	}
	summaries, err := s.summaries.Load(ctx, withPending)
	if err != nil {
		return nil, err
	}

	out := make([]PendingAccessory, 0, len(withPending))
	for _, a := range withPending {
		returnedAt := returnTimeOf(a)
		for _, item := range a.PendingAccessories() {
			out = append(out, PendingAccessory{
				AssignmentID: a.ID,
				Asset:        trimAsset(summaries.Asset(a.AssetID)),
				Employee:     trimEmployee(summaries.Employee(a.EmployeeID)),
				Accessory:    string(item),
				ReturnedAt:   returnedAt,
			})
		}
	}

	s.logger.Debug("Derived pending accessories",
		zap.Int("assignments", len(withPending)),
		zap.Int("notifications", len(out)))
	return out, nil
}

func returnTimeOf(a *assignment.Assignment) time.Time {
	switch {
	case a.ReturnedAt != nil:
		return *a.ReturnedAt
	case a.ReturnDate != nil:
		return *a.ReturnDate
	}
	return a.UpdatedAt
}

// trimAsset keeps id, name and assetId
func trimAsset(s *ledger.AssetSummary) *ledger.AssetSummary {
	if s == nil {
		return nil
	}
	return &ledger.AssetSummary{ID: s.ID, AssetID: s.AssetID, Name: s.Name}
}

// trimEmployee keeps id, employeeId, name and department
func trimEmployee(s *ledger.EmployeeSummary) *ledger.EmployeeSummary {
	if s == nil {
		return nil
	}
	return &ledger.EmployeeSummary{ID: s.ID, EmployeeID: s.EmployeeID, Name: s.Name, Department: s.Department}
}
