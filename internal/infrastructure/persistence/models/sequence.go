package models

import "time"

// SequenceCounterModel stores the last value handed out for a named counter.
type SequenceCounterModel struct {
	Name      string    `gorm:"type:varchar(50);primaryKey"`
	Seq       int64     `gorm:"not null;default:0"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM
func (SequenceCounterModel) TableName() string {
	return "sequence_counters"
}
