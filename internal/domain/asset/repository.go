package asset

import (
	"context"

	"github.com/assettrack/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// AssetRepository defines the interface for asset persistence
type AssetRepository interface {
	// Save inserts or updates an asset together with its maintenance history
	Save(ctx context.Context, asset *Asset) error

	// Delete hard-deletes an asset by ID
	Delete(ctx context.Context, id uuid.UUID) error

	// FindByID finds an asset by its internal ID
	FindByID(ctx context.Context, id uuid.UUID) (*Asset, error)

	// FindByIDForUpdate is FindByID with a row lock where the store supports it
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*Asset, error)

	// FindByIDs loads several assets, skipping IDs that do not exist
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*Asset, error)

	// FindAll lists assets newest-first
	FindAll(ctx context.Context, filter Filter) ([]*Asset, int64, error)

	// ExistsByAssetID checks for another asset using the human-readable ID
	ExistsByAssetID(ctx context.Context, assetID string, excludeID *uuid.UUID) (bool, error)

	// ExistsBySerialNumber checks for another asset using the serial number
	ExistsBySerialNumber(ctx context.Context, serial string, excludeID *uuid.UUID) (bool, error)

	// CountByStatus returns the number of assets per status
	CountByStatus(ctx context.Context) (map[Status]int64, error)
}

// Filter contains filter options for listing assets
type Filter struct {
	shared.ListFilter
	Status   Status
	Category string
}
