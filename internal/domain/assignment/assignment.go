package assignment

import (
	"time"

	"github.com/assettrack/backend/internal/domain/asset"
	"github.com/assettrack/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Status represents the state of an assignment
type Status string

const (
	StatusActive   Status = "Active"
	StatusReturned Status = "Returned"
)

// IsValid reports whether s is a known status
func (s Status) IsValid() bool {
	return s == StatusActive || s == StatusReturned
}

// Condition is the state an asset came back in
type Condition string

const (
	ConditionGood    Condition = "GOOD"
	ConditionDamaged Condition = "DAMAGED"
)

// IsValid reports whether c is a known condition
func (c Condition) IsValid() bool {
	return c == ConditionGood || c == ConditionDamaged
}

// AssetStatusAfterReturn is Available for GOOD and In Repair for DAMAGED
func (c Condition) AssetStatusAfterReturn() asset.Status {
	if c == ConditionDamaged {
		return asset.StatusInRepair
	}
	return asset.StatusAvailable
}

// ParseCondition validates a return condition
func ParseCondition(s string) (Condition, error) {
	c := Condition(s)
	if !c.IsValid() {
		return "", shared.NewFieldError("condition", "Condition must be either GOOD or DAMAGED")
	}
	return c, nil
}

// Assignment links one asset to one employee for a span of time
type Assignment struct {
	shared.BaseAggregateRoot
	AssetID             uuid.UUID
	EmployeeID          uuid.UUID
	AssignedDate        time.Time
	AssignedAt          time.Time
	DueDate             *time.Time
	ReturnDate          *time.Time
	ReturnedAt          *time.Time
	Status              Status
	AssignedBy          uuid.UUID
	Notes               string
	Condition           Condition
	Remarks             string
	IssuedAccessories   AccessorySet
	ReturnedAccessories AccessorySet
}

// NewAssignmentInput carries the fields for opening an assignment
type NewAssignmentInput struct {
	AssetID      uuid.UUID
	EmployeeID   uuid.UUID
	AssignedBy   uuid.UUID
	AssignedDate *time.Time
	DueDate      *time.Time
	Notes        string
	Accessories  AccessorySet
}

// NewAssignment opens an Active assignment. Asset availability and
// uniqueness of the active assignment are checked by the caller.
func NewAssignment(in NewAssignmentInput, now time.Time) (*Assignment, error) {
	var verrs shared.ValidationErrors
	if in.AssetID == uuid.Nil {
		verrs.Add("assetId", "Asset ID is required")
	}
	if in.EmployeeID == uuid.Nil {
		verrs.Add("employeeId", "Employee ID is required")
	}
	if in.AssignedBy == uuid.Nil {
		verrs.Add("assignedBy", "Acting user is required")
	}
	for _, a := range in.Accessories {
		if !a.IsValid() {
			verrs.Add("accessories", "Accessory must be one of Charger, Mouse, Headphones, Monitor")
			break
		}
	}
	if err := verrs.Err(); err != nil {
		return nil, err
	}

	assignedDate := now
	if in.AssignedDate != nil && !in.AssignedDate.IsZero() {
		assignedDate = *in.AssignedDate
	}

	a := &Assignment{
		BaseAggregateRoot:   shared.NewBaseAggregateRoot(),
		AssetID:             in.AssetID,
		EmployeeID:          in.EmployeeID,
		AssignedDate:        assignedDate,
		AssignedAt:          now,
		DueDate:             in.DueDate,
		Status:              StatusActive,
		AssignedBy:          in.AssignedBy,
		Notes:               in.Notes,
		IssuedAccessories:   NewAccessorySet(in.Accessories...),
		ReturnedAccessories: AccessorySet{},
	}
	a.RecordEvent(NewAssignmentCreatedEvent(a))
	return a, nil
}

// IsActive reports whether the assignment is still open
func (a *Assignment) IsActive() bool {
	return a.Status == StatusActive
}

// IsReturned reports whether the assignment has been closed
func (a *Assignment) IsReturned() bool {
	return a.Status == StatusReturned
}

// IsOverdue is true for open assignments whose due date has passed
func (a *Assignment) IsOverdue(now time.Time) bool {
	if a.DueDate == nil || a.ReturnedAt != nil || a.ReturnDate != nil {
		return false
	}
	if a.Status != StatusActive {
		return false
	}
	return a.DueDate.Before(now)
}

// PendingAccessories returns issued accessories not yet confirmed back.
// Only returned assignments can have pending accessories.
func (a *Assignment) PendingAccessories() AccessorySet {
	if !a.IsReturned() {
		return AccessorySet{}
	}
	return a.IssuedAccessories.Difference(a.ReturnedAccessories)
}

// ReturnInput carries the primary return shape
type ReturnInput struct {
	Condition           Condition
	Remarks             string
	ReturnedAccessories AccessorySet
}

// Return closes the assignment with a condition. returnedAt and returnDate are both now.
func (a *Assignment) Return(in ReturnInput, now time.Time) error {
	if a.IsReturned() {
		return ErrAlreadyReturned
	}
	if !in.Condition.IsValid() {
		return shared.NewFieldError("condition", "Condition must be either GOOD or DAMAGED")
	}
	returned := NewAccessorySet(in.ReturnedAccessories...)
	if !returned.IsSubsetOf(a.IssuedAccessories) {
		return ErrAccessoryNotIssued
	}

	a.close(now, now)
	a.Condition = in.Condition
	a.Remarks = in.Remarks
	a.ReturnedAccessories = returned
	a.RecordEvent(NewAssignmentReturnedEvent(a))
	return nil
}

// ReturnLegacy closes the assignment with an explicit business return date.
// Supplied notes replace the stored notes.
func (a *Assignment) ReturnLegacy(returnDate time.Time, notes *string, now time.Time) error {
	if a.IsReturned() {
		return ErrAlreadyReturned
	}
	if returnDate.IsZero() {
		return shared.NewFieldError("returnDate", "Return date is required")
	}
	a.close(returnDate, now)
	if notes != nil {
		a.Notes = *notes
	}
	a.RecordEvent(NewAssignmentReturnedEvent(a))
	return nil
}

func (a *Assignment) close(returnDate, now time.Time) {
	rd := returnDate
	ra := now
	a.Status = StatusReturned
	a.ReturnDate = &rd
	a.ReturnedAt = &ra
	a.Touch(now)
}

// Patch is a partial update of an assignment. ReturnedAccessories selects
// the post-return reconciliation path and excludes every other field.
type Patch struct {
	DueDate             *time.Time
	Notes               *string
	Accessories         *AccessorySet
	Condition           *Condition
	ReturnedAccessories *AccessorySet
}

func (p Patch) hasActiveFields() bool {
	return p.DueDate != nil || p.Notes != nil || p.Accessories != nil || p.Condition != nil
}

// Update applies a patch following the Active / Returned split
func (a *Assignment) Update(p Patch, now time.Time) error {
	if p.ReturnedAccessories != nil {
		return a.reconcileReturned(p, now)
	}

	if !a.IsActive() {
		return ErrNotActive
	}
	if p.Condition != nil && !p.Condition.IsValid() {
		return shared.NewFieldError("condition", "Condition must be either GOOD or DAMAGED")
	}
	if p.Accessories != nil {
		for _, it := range *p.Accessories {
			if !it.IsValid() {
				return shared.NewFieldError("accessories", "Accessory must be one of Charger, Mouse, Headphones, Monitor")
			}
		}
	}

	if p.DueDate != nil {
		d := *p.DueDate
		a.DueDate = &d
	}
	if p.Notes != nil {
		a.Notes = *p.Notes
	}
	if p.Accessories != nil {
		a.IssuedAccessories = NewAccessorySet((*p.Accessories)...)
	}
	if p.Condition != nil {
		a.Condition = *p.Condition
	}
	a.Touch(now)
	a.RecordEvent(NewAssignmentUpdatedEvent(a))
	return nil
}

func (a *Assignment) reconcileReturned(p Patch, now time.Time) error {
	if !a.IsReturned() {
		return ErrCannotUpdateActive
	}
	if p.hasActiveFields() {
		return ErrReconcileExclusive
	}
	confirmed := NewAccessorySet((*p.ReturnedAccessories)...)
	if !confirmed.IsSubsetOf(a.IssuedAccessories) {
		return ErrAccessoryNotIssued
	}

	before := len(a.ReturnedAccessories)
	a.ReturnedAccessories = a.ReturnedAccessories.Union(confirmed)
	if len(a.ReturnedAccessories) == before {
		return nil
	}
	a.Touch(now)
	a.RecordEvent(NewAccessoriesReconciledEvent(a, confirmed))
	return nil
}
