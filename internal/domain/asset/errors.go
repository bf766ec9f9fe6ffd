package asset

import "github.com/assettrack/backend/internal/domain/shared"

var (
	ErrAssetNotFound     = shared.NewNotFoundError("ASSET_NOT_FOUND", "Asset not found")
	ErrAssetNotAvailable = shared.NewConflictError("ASSET_NOT_AVAILABLE", "Asset is not available for assignment")
	ErrDuplicateAssetID  = shared.NewConflictError(shared.CodeDuplicateID, "Asset ID already exists")
	ErrDuplicateSerial   = shared.NewConflictError(shared.CodeDuplicateSerial, "Serial number already exists")
)
