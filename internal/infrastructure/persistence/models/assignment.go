package models

import (
	"time"

	"github.com/assettrack/backend/internal/domain/assignment"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

// AssignmentModel is the persistence model for the Assignment aggregate root.
// Accessory lists are stored as Postgres TEXT[]; the array literal form also
// round-trips through plain TEXT columns in SQLite.
type AssignmentModel struct {
	AggregateModel
	AssetID             uuid.UUID            `gorm:"type:uuid;not null;index"`
	EmployeeID          uuid.UUID            `gorm:"type:uuid;not null;index"`
	AssignedDate        time.Time            `gorm:"not null"`
	AssignedAt          time.Time            `gorm:"not null;index"`
	DueDate             *time.Time           `gorm:""`
	ReturnDate          *time.Time           `gorm:""`
	ReturnedAt          *time.Time           `gorm:"index"`
	Status              assignment.Status    `gorm:"type:varchar(20);not null;default:'Active';index"`
	AssignedBy          uuid.UUID            `gorm:"type:uuid;not null"`
	Notes               string               `gorm:"type:text"`
	Condition           assignment.Condition `gorm:"type:varchar(20)"`
	Remarks             string               `gorm:"type:text"`
	IssuedAccessories   pq.StringArray       `gorm:"type:text;not null;default:'{}'"`
	ReturnedAccessories pq.StringArray       `gorm:"type:text;not null;default:'{}'"`
}

// TableName returns the table name for GORM
func (AssignmentModel) TableName() string {
	return "assignments"
}

// ToDomain converts the persistence model to a domain Assignment entity.
// Unknown accessory labels are dropped.
func (m *AssignmentModel) ToDomain() *assignment.Assignment {
	a := &assignment.Assignment{
		AssetID:             m.AssetID,
		EmployeeID:          m.EmployeeID,
		AssignedDate:        m.AssignedDate,
		AssignedAt:          m.AssignedAt,
		DueDate:             m.DueDate,
		ReturnDate:          m.ReturnDate,
		ReturnedAt:          m.ReturnedAt,
		Status:              m.Status,
		AssignedBy:          m.AssignedBy,
		Notes:               m.Notes,
		Condition:           m.Condition,
		Remarks:             m.Remarks,
		IssuedAccessories:   accessorySetFromColumn(m.IssuedAccessories),
		ReturnedAccessories: accessorySetFromColumn(m.ReturnedAccessories),
	}
	m.PopulateAggregateRoot(&a.BaseAggregateRoot)
	return a
}

// FromDomain populates the persistence model from a domain Assignment entity.
func (m *AssignmentModel) FromDomain(a *assignment.Assignment) {
	m.FromDomainAggregateRoot(a.BaseAggregateRoot)
	m.AssetID = a.AssetID
	m.EmployeeID = a.EmployeeID
	m.AssignedDate = a.AssignedDate
	m.AssignedAt = a.AssignedAt
	m.DueDate = a.DueDate
	m.ReturnDate = a.ReturnDate
	m.ReturnedAt = a.ReturnedAt
	m.Status = a.Status
	m.AssignedBy = a.AssignedBy
	m.Notes = a.Notes
	m.Condition = a.Condition
	m.Remarks = a.Remarks
	m.IssuedAccessories = pq.StringArray(a.IssuedAccessories.Strings())
	m.ReturnedAccessories = pq.StringArray(a.ReturnedAccessories.Strings())
}

// AssignmentModelFromDomain creates a new persistence model from a domain Assignment entity.
func AssignmentModelFromDomain(a *assignment.Assignment) *AssignmentModel {
	m := &AssignmentModel{}
	m.FromDomain(a)
	return m
}

func accessorySetFromColumn(values pq.StringArray) assignment.AccessorySet {
	items := make([]assignment.Accessory, 0, len(values))
	for _, v := range values {
		if acc := assignment.Accessory(v); acc.IsValid() {
			items = append(items, acc)
		}
	}
	return assignment.NewAccessorySet(items...)
}

// AssignmentAuditLogModel is an append-only record of ledger changes.
type AssignmentAuditLogModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key"`
	EventID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:ux_assignment_audit_logs_event_id"`
	EventType    string    `gorm:"type:varchar(100);not null;index"`
	AssignmentID uuid.UUID `gorm:"type:uuid;not null;index"`
	AssetID      uuid.UUID `gorm:"type:uuid;not null"`
	EmployeeID   uuid.UUID `gorm:"type:uuid;not null"`
	ActorID      uuid.UUID `gorm:"type:uuid;not null"`
	Payload      string    `gorm:"type:text"`
	OccurredAt   time.Time `gorm:"not null"`
	CreatedAt    time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM
func (AssignmentAuditLogModel) TableName() string {
	return "assignment_audit_logs"
}
