package asset

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/assettrack/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Status represents the lifecycle status of an asset
type Status string

const (
	StatusAvailable Status = "Available"
	StatusAssigned  Status = "Assigned"
	StatusInRepair  Status = "In Repair"
	StatusRetired   Status = "Retired"
)

// IsValid reports whether s is a known status
func (s Status) IsValid() bool {
	switch s {
	case StatusAvailable, StatusAssigned, StatusInRepair, StatusRetired:
		return true
	}
	return false
}

// AllStatuses returns every asset status in display order
func AllStatuses() []Status {
	return []Status{StatusAvailable, StatusAssigned, StatusInRepair, StatusRetired}
}

// SequenceName is the counter backing auto-generated asset IDs
const SequenceName = "asset"

var assetIDPattern = regexp.MustCompile(`^AST-\d{3,}$`)

// NormalizeAssetID trims and uppercases a caller-supplied asset ID
func NormalizeAssetID(id string) string {
	return strings.ToUpper(strings.TrimSpace(id))
}

// ValidateAssetID checks an already-normalized asset ID
func ValidateAssetID(id string) error {
	if !assetIDPattern.MatchString(id) {
		return shared.NewFieldError("assetId", "Asset ID must match format AST-001")
	}
	return nil
}

// FormatAssetID renders a sequence value as AST-001
func FormatAssetID(seq int64) string {
	return fmt.Sprintf("AST-%03d", seq)
}

// MaintenanceRecord is one entry of an asset's maintenance history
type MaintenanceRecord struct {
	ID          uuid.UUID
	Date        time.Time
	Type        string
	Description string
	Cost        decimal.Decimal
	PerformedBy string
}

// Asset is a trackable physical item
type Asset struct {
	shared.BaseAggregateRoot
	AssetID            string
	Name               string
	Category           string
	SerialNumber       string
	Status             Status
	PurchaseDate       time.Time
	WarrantyExpiration *time.Time
	Department         string
	CurrentHolder      *uuid.UUID
	MaintenanceHistory []MaintenanceRecord
}

// NewAssetInput carries the fields required to register an asset.
// AssetID must already be normalized and validated (or generated).
type NewAssetInput struct {
	AssetID            string
	Name               string
	Category           string
	SerialNumber       string
	Status             Status
	PurchaseDate       time.Time
	WarrantyExpiration *time.Time
	Department         string
}

// NewAsset creates an asset, defaulting status to Available
func NewAsset(in NewAssetInput) (*Asset, error) {
	var verrs shared.ValidationErrors
	if err := ValidateAssetID(in.AssetID); err != nil {
		verrs.Add("assetId", err.Error())
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		verrs.Add("name", "Name is required")
	}
	category := strings.TrimSpace(in.Category)
	if category == "" {
		verrs.Add("category", "Category is required")
	}
	serial := strings.TrimSpace(in.SerialNumber)
	if serial == "" {
		verrs.Add("serialNumber", "Serial number is required")
	}
	if in.PurchaseDate.IsZero() {
		verrs.Add("purchaseDate", "Purchase date is required")
	}
	status := in.Status
	switch {
	case status == "":
		status = StatusAvailable
	case !status.IsValid():
		verrs.Add("status", "Status must be one of Available, Assigned, In Repair, Retired")
	case status == StatusAssigned:
		verrs.Add("status", msgAssignedByLedger)
	}
	if err := verrs.Err(); err != nil {
		return nil, err
	}

	a := &Asset{
		BaseAggregateRoot:  shared.NewBaseAggregateRoot(),
		AssetID:            in.AssetID,
		Name:               name,
		Category:           category,
		SerialNumber:       serial,
		Status:             status,
		PurchaseDate:       in.PurchaseDate,
		WarrantyExpiration: in.WarrantyExpiration,
		Department:         strings.TrimSpace(in.Department),
		MaintenanceHistory: make([]MaintenanceRecord, 0),
	}
	a.RecordEvent(NewAssetCreatedEvent(a))
	return a, nil
}

const msgAssignedByLedger = "Status Assigned is set by creating an assignment"

// Patch is a partial update; nil fields are left untouched.
// Status never moves to or from Assigned here; the ledger owns that transition.
type Patch struct {
	AssetID            *string
	Name               *string
	Category           *string
	SerialNumber       *string
	Status             *Status
	PurchaseDate       *time.Time
	WarrantyExpiration *time.Time
	Department         *string
}

// Apply re-validates and applies a partial update
func (a *Asset) Apply(p Patch) error {
	var verrs shared.ValidationErrors
	next := *a

	if p.AssetID != nil {
		id := NormalizeAssetID(*p.AssetID)
		if err := ValidateAssetID(id); err != nil {
			verrs.Add("assetId", err.Error())
		}
		next.AssetID = id
	}
	if p.Name != nil {
		next.Name = strings.TrimSpace(*p.Name)
		if next.Name == "" {
			verrs.Add("name", "Name is required")
		}
	}
	if p.Category != nil {
		next.Category = strings.TrimSpace(*p.Category)
		if next.Category == "" {
			verrs.Add("category", "Category is required")
		}
	}
	if p.SerialNumber != nil {
		next.SerialNumber = strings.TrimSpace(*p.SerialNumber)
		if next.SerialNumber == "" {
			verrs.Add("serialNumber", "Serial number is required")
		}
	}
	if p.Status != nil && *p.Status != a.Status {
		switch {
		case !p.Status.IsValid():
			verrs.Add("status", "Status must be one of Available, Assigned, In Repair, Retired")
		case *p.Status == StatusAssigned:
			verrs.Add("status", msgAssignedByLedger)
		case a.CurrentHolder != nil:
			verrs.Add("status", "Status of an assigned asset changes only when its assignment is returned")
		}
		next.Status = *p.Status
	}
	if p.PurchaseDate != nil {
		next.PurchaseDate = *p.PurchaseDate
	}
	if p.WarrantyExpiration != nil {
		w := *p.WarrantyExpiration
		next.WarrantyExpiration = &w
	}
	if p.Department != nil {
		next.Department = strings.TrimSpace(*p.Department)
	}
	if err := verrs.Err(); err != nil {
		return err
	}

	oldStatus := a.Status
	a.AssetID = next.AssetID
	a.Name = next.Name
	a.Category = next.Category
	a.SerialNumber = next.SerialNumber
	a.Status = next.Status
	a.PurchaseDate = next.PurchaseDate
	a.WarrantyExpiration = next.WarrantyExpiration
	a.Department = next.Department
	a.touch()

	if oldStatus != a.Status {
		a.RecordEvent(NewAssetStatusChangedEvent(a, oldStatus))
	}
	return nil
}

// IsAvailable reports whether the asset can be assigned
func (a *Asset) IsAvailable() bool {
	return a.Status == StatusAvailable
}

// AssignTo marks the asset as held by an employee
func (a *Asset) AssignTo(employeeID uuid.UUID) error {
	if !a.IsAvailable() {
		return ErrAssetNotAvailable
	}
	holder := employeeID
	a.Status = StatusAssigned
	a.CurrentHolder = &holder
	a.touch()
	a.RecordEvent(NewAssetStatusChangedEvent(a, StatusAvailable))
	return nil
}

// Release clears the holder and moves the asset to next, which must be
// Available or In Repair.
func (a *Asset) Release(next Status) error {
	if next != StatusAvailable && next != StatusInRepair {
		return shared.NewFieldError("status", "Released asset must become Available or In Repair")
	}
	old := a.Status
	a.Status = next
	a.CurrentHolder = nil
	a.touch()
	if old != next {
		a.RecordEvent(NewAssetStatusChangedEvent(a, old))
	}
	return nil
}

// AddMaintenanceRecord appends to the maintenance history
func (a *Asset) AddMaintenanceRecord(date time.Time, kind, description string, cost decimal.Decimal, performedBy string) (*MaintenanceRecord, error) {
	var verrs shared.ValidationErrors
	if date.IsZero() {
		verrs.Add("date", "Date is required")
	}
	if strings.TrimSpace(kind) == "" {
		verrs.Add("type", "Type is required")
	}
	if strings.TrimSpace(description) == "" {
		verrs.Add("description", "Description is required")
	}
	if strings.TrimSpace(performedBy) == "" {
		verrs.Add("performedBy", "Performed by is required")
	}
	if cost.IsNegative() {
		verrs.Add("cost", "Cost cannot be negative")
	}
	if err := verrs.Err(); err != nil {
		return nil, err
	}

	rec := MaintenanceRecord{
		ID:          uuid.New(),
		Date:        date,
		Type:        strings.TrimSpace(kind),
		Description: strings.TrimSpace(description),
		Cost:        cost,
		PerformedBy: strings.TrimSpace(performedBy),
	}
	a.MaintenanceHistory = append(a.MaintenanceHistory, rec)
	a.touch()
	return &rec, nil
}

// TotalMaintenanceCost sums the cost of every maintenance record
func (a *Asset) TotalMaintenanceCost() decimal.Decimal {
	total := decimal.Zero
	for _, r := range a.MaintenanceHistory {
		total = total.Add(r.Cost)
	}
	return total
}

func (a *Asset) touch() {
	a.Touch(time.Now())
}
