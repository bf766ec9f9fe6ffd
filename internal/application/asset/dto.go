package asset

import (
	"time"

	"github.com/assettrack/backend/internal/domain/asset"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateAssetRequest registers an asset. AssetID is generated when empty.
type CreateAssetRequest struct {
	AssetID            string
	Name               string
	Category           string
	SerialNumber       string
	Status             asset.Status
	PurchaseDate       time.Time
	WarrantyExpiration *time.Time
	Department         string
}

// UpdateAssetRequest is a partial update; nil fields are left untouched.
// MaintenanceRecords are appended to the existing history.
type UpdateAssetRequest struct {
	AssetID            *string
	Name               *string
	Category           *string
	SerialNumber       *string
	Status             *asset.Status
	PurchaseDate       *time.Time
	WarrantyExpiration *time.Time
	Department         *string
	MaintenanceRecords []MaintenanceRecordInput
}

// MaintenanceRecordInput is one maintenance entry to append
type MaintenanceRecordInput struct {
	Date        time.Time
	Type        string
	Description string
	Cost        decimal.Decimal
	PerformedBy string
}

// ListAssetsFilter selects assets. Paginate is false for the plain listing.
type ListAssetsFilter struct {
	Status   asset.Status
	Category string
	Search   string
	Page     int
	Limit    int
	Paginate bool
}

// AssetListResult is a page of assets
type AssetListResult struct {
	Items []AssetResponse
	Total int64
	Page  int
	Limit int
}

// MaintenanceRecordResponse is one maintenance entry in API responses
type MaintenanceRecordResponse struct {
	ID          uuid.UUID       `json:"id"`
	Date        time.Time       `json:"date"`
	Type        string          `json:"type"`
	Description string          `json:"description"`
	Cost        decimal.Decimal `json:"cost"`
	PerformedBy string          `json:"performedBy"`
}

// AssetResponse represents an asset in API responses
type AssetResponse struct {
	ID                   uuid.UUID                   `json:"id"`
	AssetID              string                      `json:"assetId"`
	Name                 string                      `json:"name"`
	Category             string                      `json:"category"`
	SerialNumber         string                      `json:"serialNumber"`
	Status               asset.Status                `json:"status"`
	PurchaseDate         time.Time                   `json:"purchaseDate"`
	WarrantyExpiration   *time.Time                  `json:"warrantyExpiration"`
	Department           string                      `json:"department"`
	CurrentHolder        *uuid.UUID                  `json:"currentHolder"`
	MaintenanceHistory   []MaintenanceRecordResponse `json:"maintenanceHistory"`
	TotalMaintenanceCost decimal.Decimal             `json:"totalMaintenanceCost"`
	CreatedAt            time.Time                   `json:"createdAt"`
	UpdatedAt            time.Time                   `json:"updatedAt"`
}

// NextIDResponse is the preview of the next generated identifier
type NextIDResponse struct {
	NextID string `json:"nextId"`
}

// ToAssetResponse converts a domain asset to a response DTO
func ToAssetResponse(a *asset.Asset) AssetResponse {
	history := make([]MaintenanceRecordResponse, len(a.MaintenanceHistory))
	for i, r := range a.MaintenanceHistory {
		history[i] = MaintenanceRecordResponse{
			ID:          r.ID,
			Date:        r.Date,
			Type:        r.Type,
			Description: r.Description,
			Cost:        r.Cost,
			PerformedBy: r.PerformedBy,
		}
	}
	return AssetResponse{
		ID:                   a.ID,
		AssetID:              a.AssetID,
		Name:                 a.Name,
		Category:             a.Category,
		SerialNumber:         a.SerialNumber,
		Status:               a.Status,
		PurchaseDate:         a.PurchaseDate,
		WarrantyExpiration:   a.WarrantyExpiration,
		Department:           a.Department,
		CurrentHolder:        a.CurrentHolder,
		MaintenanceHistory:   history,
		TotalMaintenanceCost: a.TotalMaintenanceCost(),
		CreatedAt:            a.CreatedAt,
		UpdatedAt:            a.UpdatedAt,
	}
}

// ToAssetResponses converts a slice of domain assets
func ToAssetResponses(assets []*asset.Asset) []AssetResponse {
	out := make([]AssetResponse, len(assets))
	for i, a := range assets {
		out[i] = ToAssetResponse(a)
	}
	return out
}
