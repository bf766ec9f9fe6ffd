package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/assettrack/backend/internal/domain/shared"
	"github.com/assettrack/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// nextValueSQL raises the counter to floor if needed and increments it in one statement.
// ON CONFLICT ... RETURNING works on Postgres and SQLite >= 3.35.
const nextValueSQL = `INSERT INTO sequence_counters (name, seq, updated_at) VALUES (?, ?, ?)
ON CONFLICT (name) DO UPDATE SET
	seq = CASE WHEN sequence_counters.seq < ? THEN ? ELSE sequence_counters.seq END + 1,
	updated_at = excluded.updated_at
RETURNING seq`

const ensureAtLeastSQL = `INSERT INTO sequence_counters (name, seq, updated_at) VALUES (?, ?, ?)
ON CONFLICT (name) DO UPDATE SET
	seq = CASE WHEN sequence_counters.seq < excluded.seq THEN excluded.seq ELSE sequence_counters.seq END,
	updated_at = excluded.updated_at`

// GormSequenceRepository implements shared.Sequencer on the sequence_counters table
type GormSequenceRepository struct {
	db *gorm.DB
}

// NewGormSequenceRepository creates a new GormSequenceRepository
func NewGormSequenceRepository(db *gorm.DB) *GormSequenceRepository {
	return &GormSequenceRepository{db: db}
}

// NextValue atomically increments the named counter and returns the new value
func (r *GormSequenceRepository) NextValue(ctx context.Context, name string, floor int64) (int64, error) {
	var value int64
	err := r.db.WithContext(ctx).
		Raw(nextValueSQL, name, floor+1, time.Now(), floor, floor).
		Row().
		Scan(&value)
	if err != nil {
		return 0, fmt.Errorf("next value for sequence %q: %w", name, err)
	}
	return value, nil
}

// Peek returns the value NextValue would hand out, without consuming it
func (r *GormSequenceRepository) Peek(ctx context.Context, name string, floor int64) (int64, error) {
	var model models.SequenceCounterModel
	err := r.db.WithContext(ctx).First(&model, "name = ?", name).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return floor + 1, nil
	}
	if err != nil {
		return 0, fmt.Errorf("peek sequence %q: %w", name, err)
	}
	return max(model.Seq, floor) + 1, nil
}

// EnsureAtLeast raises the counter to value when it is lower
func (r *GormSequenceRepository) EnsureAtLeast(ctx context.Context, name string, value int64) error {
	if err := r.db.WithContext(ctx).Exec(ensureAtLeastSQL, name, value, time.Now()).Error; err != nil {
		return fmt.Errorf("bump sequence %q: %w", name, err)
	}
	return nil
}

// Ensure GormSequenceRepository implements Sequencer
var _ shared.Sequencer = (*GormSequenceRepository)(nil)
