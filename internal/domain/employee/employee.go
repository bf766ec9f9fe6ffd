package employee

import (
	"regexp"
	"strings"
	"time"

	"github.com/assettrack/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Status represents the employment status of an employee
type Status string

const (
	StatusActive   Status = "ACTIVE"
	StatusInactive Status = "INACTIVE"
	StatusRelieved Status = "Relieved"
)

// IsValid reports whether s is a known status
func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusInactive, StatusRelieved:
		return true
	}
	return false
}

// NormalizeStatus uppercases a status, leaving the literal "Relieved" as is
func NormalizeStatus(s string) Status {
	s = strings.TrimSpace(s)
	if s == string(StatusRelieved) {
		return StatusRelieved
	}
	return Status(strings.ToUpper(s))
}

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Employee is a member of staff who can hold assets
type Employee struct {
	shared.BaseAggregateRoot
	EmployeeID string
	Company    Company
	Name       string
	Email      string
	Phone      string
	Department string
	Position   string
	Status     Status
	HireDate   time.Time
	ExitDate   *time.Time
	UserID     *uuid.UUID
}

// NewEmployeeInput carries the fields required to register an employee.
// EmployeeID must already be normalized and validated (or generated).
type NewEmployeeInput struct {
	EmployeeID string
	Company    Company
	Name       string
	Email      string
	Phone      string
	Department string
	Position   string
	Status     Status
	HireDate   time.Time
	ExitDate   *time.Time
	UserID     *uuid.UUID
}

// NewEmployee creates an employee, defaulting status to ACTIVE
func NewEmployee(in NewEmployeeInput) (*Employee, error) {
	var verrs shared.ValidationErrors
	if err := ValidateEmployeeID(in.EmployeeID); err != nil {
		verrs.Add("employeeId", err.Error())
	}
	if in.Company != "" && !in.Company.IsValid() {
		verrs.Add("company", "Company must be one of V-Accel, Axess Technology")
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		verrs.Add("name", "Name is required")
	}
	email := normalizeEmail(in.Email)
	if !emailPattern.MatchString(email) {
		verrs.Add("email", "Invalid email address")
	}
	phone := strings.TrimSpace(in.Phone)
	if phone == "" {
		verrs.Add("phone", "Phone is required")
	}
	department := strings.TrimSpace(in.Department)
	if department == "" {
		verrs.Add("department", "Department is required")
	}
	position := strings.TrimSpace(in.Position)
	if position == "" {
		verrs.Add("position", "Position is required")
	}
	if in.HireDate.IsZero() {
		verrs.Add("hireDate", "Hire date is required")
	}
	status := in.Status
	if status == "" {
		status = StatusActive
	} else if !status.IsValid() {
		verrs.Add("status", "Status must be one of ACTIVE, INACTIVE, Relieved")
	}
	if err := verrs.Err(); err != nil {
		return nil, err
	}

	exitDate, err := resolveExitDate(status, in.ExitDate)
	if err != nil {
		return nil, err
	}

	e := &Employee{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		EmployeeID:        in.EmployeeID,
		Company:           in.Company,
		Name:              name,
		Email:             email,
		Phone:             phone,
		Department:        department,
		Position:          position,
		Status:            status,
		HireDate:          in.HireDate,
		ExitDate:          exitDate,
		UserID:            in.UserID,
	}
	e.RecordEvent(NewEmployeeCreatedEvent(e))
	return e, nil
}

// Patch is a partial update; the employee ID is immutable
type Patch struct {
	Name       *string
	Email      *string
	Phone      *string
	Department *string
	Position   *string
	Status     *Status
	HireDate   *time.Time
	ExitDate   *time.Time
}

// Apply re-validates and applies a partial update. Moving to Relieved here
// does not check assignments; callers gate that with CanRelieve.
func (e *Employee) Apply(p Patch) error {
	var verrs shared.ValidationErrors
	next := *e

	if p.Name != nil {
		next.Name = strings.TrimSpace(*p.Name)
		if next.Name == "" {
			verrs.Add("name", "Name is required")
		}
	}
	if p.Email != nil {
		next.Email = normalizeEmail(*p.Email)
		if !emailPattern.MatchString(next.Email) {
			verrs.Add("email", "Invalid email address")
		}
	}
	if p.Phone != nil {
		next.Phone = strings.TrimSpace(*p.Phone)
		if next.Phone == "" {
			verrs.Add("phone", "Phone is required")
		}
	}
	if p.Department != nil {
		next.Department = strings.TrimSpace(*p.Department)
		if next.Department == "" {
			verrs.Add("department", "Department is required")
		}
	}
	if p.Position != nil {
		next.Position = strings.TrimSpace(*p.Position)
		if next.Position == "" {
			verrs.Add("position", "Position is required")
		}
	}
	if p.HireDate != nil {
		next.HireDate = *p.HireDate
	}
	if p.Status != nil {
		if !p.Status.IsValid() {
			verrs.Add("status", "Status must be one of ACTIVE, INACTIVE, Relieved")
		}
		next.Status = *p.Status
	}
	if err := verrs.Err(); err != nil {
		return err
	}

	exit := e.ExitDate
	if p.ExitDate != nil {
		d := *p.ExitDate
		exit = &d
	}
	exitDate, err := resolveExitDate(next.Status, exit)
	if err != nil {
		return err
	}

	oldStatus := e.Status
	e.Name = next.Name
	e.Email = next.Email
	e.Phone = next.Phone
	e.Department = next.Department
	e.Position = next.Position
	e.HireDate = next.HireDate
	e.Status = next.Status
	e.ExitDate = exitDate
	e.touch()

	if oldStatus != e.Status {
		e.RecordEvent(NewEmployeeStatusChangedEvent(e, oldStatus))
	}
	return nil
}

// CanRelieve rejects the Relieved transition while assets are still held
func (e *Employee) CanRelieve(activeAssignments int64) error {
	if activeAssignments > 0 {
		return ErrHasActiveAssets
	}
	return nil
}

// Relieve moves the employee to the terminal Relieved state with exit date at
func (e *Employee) Relieve(at time.Time, activeAssignments int64) error {
	if err := e.CanRelieve(activeAssignments); err != nil {
		return err
	}
	old := e.Status
	exit := at
	e.Status = StatusRelieved
	e.ExitDate = &exit
	e.touch()
	e.RecordEvent(NewEmployeeStatusChangedEvent(e, old))
	return nil
}

// SetStatus sets ACTIVE or INACTIVE directly and clears any exit date
func (e *Employee) SetStatus(status Status) error {
	if status != StatusActive && status != StatusInactive {
		return shared.NewFieldError("status", "Status must be ACTIVE or INACTIVE")
	}
	old := e.Status
	e.Status = status
	e.ExitDate = nil
	e.touch()
	if old != status {
		e.RecordEvent(NewEmployeeStatusChangedEvent(e, old))
	}
	return nil
}

// AccountStatus is the status a linked login account should carry
func (e *Employee) AccountStatus() string {
	if e.Status == StatusActive {
		return string(StatusActive)
	}
	return string(StatusInactive)
}

// IsRelieved reports whether the employee has left
func (e *Employee) IsRelieved() bool {
	return e.Status == StatusRelieved
}

func (e *Employee) touch() {
	e.Touch(time.Now())
}

// Validation functions

// resolveExitDate enforces exitDate present iff status is Relieved
func resolveExitDate(status Status, exit *time.Time) (*time.Time, error) {
	if status != StatusRelieved {
		return nil, nil
	}
	if exit == nil || exit.IsZero() {
		return nil, ErrExitDateRequired
	}
	d := *exit
	return &d, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
