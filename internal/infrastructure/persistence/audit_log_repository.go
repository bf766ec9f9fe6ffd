package persistence

import (
	"context"
	"time"

	"github.com/assettrack/backend/internal/domain/assignment"
	"github.com/assettrack/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormAuditLogRepository implements AuditLogRepository using GORM
type GormAuditLogRepository struct {
	db *gorm.DB
}

// NewGormAuditLogRepository creates a new GormAuditLogRepository
func NewGormAuditLogRepository(db *gorm.DB) *GormAuditLogRepository {
	return &GormAuditLogRepository{db: db}
}

// Append inserts an entry, ignoring replays of the same event
func (r *GormAuditLogRepository) Append(ctx context.Context, entry *assignment.AuditEntry) error {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	model := &models.AssignmentAuditLogModel{
		ID:           entry.ID,
		EventID:      entry.EventID,
		EventType:    entry.EventType,
		AssignmentID: entry.AssignmentID,
		AssetID:      entry.AssetID,
		EmployeeID:   entry.EmployeeID,
		ActorID:      entry.ActorID,
		Payload:      entry.Payload,
		OccurredAt:   entry.OccurredAt,
		CreatedAt:    time.Now(),
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "event_id"}}, DoNothing: true}).
		Create(model).Error
}

// FindByAssignment returns the entries of one assignment, oldest first
func (r *GormAuditLogRepository) FindByAssignment(ctx context.Context, assignmentID uuid.UUID) ([]*assignment.AuditEntry, error) {
	var rows []models.AssignmentAuditLogModel
	if err := r.db.WithContext(ctx).
		Where("assignment_id = ?", assignmentID).
		Order("occurred_at ASC").
		Order("created_at ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	entries := make([]*assignment.AuditEntry, len(rows))
	for i, row := range rows {
		entries[i] = &assignment.AuditEntry{
			ID:           row.ID,
			EventID:      row.EventID,
			EventType:    row.EventType,
			AssignmentID: row.AssignmentID,
			AssetID:      row.AssetID,
			EmployeeID:   row.EmployeeID,
			ActorID:      row.ActorID,
			Payload:      row.Payload,
			OccurredAt:   row.OccurredAt,
		}
	}
	return entries, nil
}

// Ensure GormAuditLogRepository implements AuditLogRepository
var _ assignment.AuditLogRepository = (*GormAuditLogRepository)(nil)
