package models

import (
	"time"

	"github.com/assettrack/backend/internal/domain/asset"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AssetModel is the persistence model for the Asset aggregate root.
type AssetModel struct {
	AggregateModel
	AssetID            string                   `gorm:"type:varchar(50);not null;uniqueIndex:ux_assets_asset_id"`
	Name               string                   `gorm:"type:varchar(200);not null"`
	Category           string                   `gorm:"type:varchar(100);not null;index"`
	SerialNumber       string                   `gorm:"type:varchar(100);not null;uniqueIndex:ux_assets_serial_number"`
	Status             asset.Status             `gorm:"type:varchar(20);not null;default:'Available';index"`
	PurchaseDate       time.Time                `gorm:"not null"`
	WarrantyExpiration *time.Time               `gorm:""`
	Department         string                   `gorm:"type:varchar(100)"`
	CurrentHolder      *uuid.UUID               `gorm:"type:uuid;index"`
	MaintenanceHistory []MaintenanceRecordModel `gorm:"foreignKey:AssetID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (AssetModel) TableName() string {
	return "assets"
}

// ToDomain converts the persistence model to a domain Asset entity.
func (m *AssetModel) ToDomain() *asset.Asset {
	a := &asset.Asset{
		AssetID:            m.AssetID,
		Name:               m.Name,
		Category:           m.Category,
		SerialNumber:       m.SerialNumber,
		Status:             m.Status,
		PurchaseDate:       m.PurchaseDate,
		WarrantyExpiration: m.WarrantyExpiration,
		Department:         m.Department,
		CurrentHolder:      m.CurrentHolder,
		MaintenanceHistory: make([]asset.MaintenanceRecord, 0, len(m.MaintenanceHistory)),
	}
	m.PopulateAggregateRoot(&a.BaseAggregateRoot)
	for i := range m.MaintenanceHistory {
		a.MaintenanceHistory = append(a.MaintenanceHistory, m.MaintenanceHistory[i].ToDomain())
	}
	return a
}

// FromDomain populates the persistence model from a domain Asset entity.
func (m *AssetModel) FromDomain(a *asset.Asset) {
	m.FromDomainAggregateRoot(a.BaseAggregateRoot)
	m.AssetID = a.AssetID
	m.Name = a.Name
	m.Category = a.Category
	m.SerialNumber = a.SerialNumber
	m.Status = a.Status
	m.PurchaseDate = a.PurchaseDate
	m.WarrantyExpiration = a.WarrantyExpiration
	m.Department = a.Department
	m.CurrentHolder = a.CurrentHolder
	m.MaintenanceHistory = make([]MaintenanceRecordModel, 0, len(a.MaintenanceHistory))
	for i, r := range a.MaintenanceHistory {
		m.MaintenanceHistory = append(m.MaintenanceHistory, MaintenanceRecordModelFromDomain(a.ID, i, r))
	}
}

// AssetModelFromDomain creates a new persistence model from a domain Asset entity.
func AssetModelFromDomain(a *asset.Asset) *AssetModel {
	m := &AssetModel{}
	m.FromDomain(a)
	return m
}

// MaintenanceRecordModel is one row of an asset's maintenance history.
// Position keeps the records in insertion order.
type MaintenanceRecordModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key"`
	AssetID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	Position    int             `gorm:"not null;default:0"`
	Date        time.Time       `gorm:"not null"`
	Type        string          `gorm:"type:varchar(100);not null"`
	Description string          `gorm:"type:text"`
	Cost        decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	PerformedBy string          `gorm:"type:varchar(200)"`
}

// TableName returns the table name for GORM
func (MaintenanceRecordModel) TableName() string {
	return "asset_maintenance_records"
}

// ToDomain converts the persistence model to a domain MaintenanceRecord.
func (m *MaintenanceRecordModel) ToDomain() asset.MaintenanceRecord {
	return asset.MaintenanceRecord{
		ID:          m.ID,
		Date:        m.Date,
		Type:        m.Type,
		Description: m.Description,
		Cost:        m.Cost,
		PerformedBy: m.PerformedBy,
	}
}

// MaintenanceRecordModelFromDomain creates a persistence row for a maintenance record.
func MaintenanceRecordModelFromDomain(assetID uuid.UUID, position int, r asset.MaintenanceRecord) MaintenanceRecordModel {
	return MaintenanceRecordModel{
		ID:          r.ID,
		AssetID:     assetID,
		Position:    position,
		Date:        r.Date,
		Type:        r.Type,
		Description: r.Description,
		Cost:        r.Cost,
		PerformedBy: r.PerformedBy,
	}
}
