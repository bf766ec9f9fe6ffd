package asset

import (
	"github.com/assettrack/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Aggregate type constant for Asset
const AggregateTypeAsset = "Asset"

// Asset domain event types
const (
	EventTypeAssetCreated       = "asset.created"
	EventTypeAssetStatusChanged = "asset.status_changed"
	EventTypeAssetDeleted       = "asset.deleted"
)

// AssetCreatedEvent is published when an asset is registered
type AssetCreatedEvent struct {
	shared.BaseDomainEvent
	AssetID      string `json:"asset_id"`
	SerialNumber string `json:"serial_number"`
	Status       Status `json:"status"`
}

// NewAssetCreatedEvent creates a new AssetCreatedEvent
func NewAssetCreatedEvent(a *Asset) *AssetCreatedEvent {
	return &AssetCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeAssetCreated, AggregateTypeAsset, a.ID),
		AssetID:         a.AssetID,
		SerialNumber:    a.SerialNumber,
		Status:          a.Status,
	}
}

// AssetStatusChangedEvent is published on every status transition
type AssetStatusChangedEvent struct {
	shared.BaseDomainEvent
	AssetID   string     `json:"asset_id"`
	OldStatus Status     `json:"old_status"`
	NewStatus Status     `json:"new_status"`
	Holder    *uuid.UUID `json:"holder,omitempty"`
}

// NewAssetStatusChangedEvent creates a new AssetStatusChangedEvent
func NewAssetStatusChangedEvent(a *Asset, old Status) *AssetStatusChangedEvent {
	return &AssetStatusChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeAssetStatusChanged, AggregateTypeAsset, a.ID),
		AssetID:         a.AssetID,
		OldStatus:       old,
		NewStatus:       a.Status,
		Holder:          a.CurrentHolder,
	}
}

// AssetDeletedEvent is published after a hard delete
type AssetDeletedEvent struct {
	shared.BaseDomainEvent
	AssetID string `json:"asset_id"`
	Status  Status `json:"status"`
}

// NewAssetDeletedEvent creates a new AssetDeletedEvent
func NewAssetDeletedEvent(a *Asset) *AssetDeletedEvent {
	return &AssetDeletedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeAssetDeleted, AggregateTypeAsset, a.ID),
		AssetID:         a.AssetID,
		Status:          a.Status,
	}
}
