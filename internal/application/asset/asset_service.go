package asset

import (
	"context"
	"fmt"

	"github.com/assettrack/backend/internal/domain/asset"
	"github.com/assettrack/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// maxIDAttempts bounds how many generated IDs are skipped when legacy rows already use them
const maxIDAttempts = 50

// AssetService handles the asset registry
type AssetService struct {
	assetRepo      asset.AssetRepository
	sequencer      shared.Sequencer
	eventPublisher shared.EventPublisher
	logger         *zap.Logger
}

// NewAssetService creates a new AssetService
func NewAssetService(assetRepo asset.AssetRepository, sequencer shared.Sequencer, logger *zap.Logger) *AssetService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AssetService{
		assetRepo: assetRepo,
		sequencer: sequencer,
		logger:    logger,
	}
}

// SetEventPublisher sets the event publisher for publishing domain events
func (s *AssetService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// Create registers a new asset
func (s *AssetService) Create(ctx context.Context, req CreateAssetRequest) (*AssetResponse, error) {
	assetID, err := s.resolveAssetID(ctx, req.AssetID)
	if err != nil {
		return nil, err
	}

	if serialTaken, err := s.assetRepo.ExistsBySerialNumber(ctx, req.SerialNumber, nil); err != nil {
		return nil, err
	} else if serialTaken {
		return nil, asset.ErrDuplicateSerial
	}

	a, err := asset.NewAsset(asset.NewAssetInput{
		AssetID:            assetID,
		Name:               req.Name,
		Category:           req.Category,
		SerialNumber:       req.SerialNumber,
		Status:             req.Status,
		PurchaseDate:       req.PurchaseDate,
		WarrantyExpiration: req.WarrantyExpiration,
		Department:         req.Department,
	})
	if err != nil {
		return nil, err
	}

	if err := s.assetRepo.Save(ctx, a); err != nil {
		return nil, err
	}
	s.publishDomainEvents(ctx, a)

	s.logger.Info("Asset created",
		zap.String("asset_id", a.AssetID),
		zap.String("id", a.ID.String()))

	resp := ToAssetResponse(a)
	return &resp, nil
}

// resolveAssetID validates a supplied ID or generates the next free one
func (s *AssetService) resolveAssetID(ctx context.Context, supplied string) (string, error) {
	if supplied != "" {
		id := asset.NormalizeAssetID(supplied)
		if err := asset.ValidateAssetID(id); err != nil {
			return "", err
		}
		taken, err := s.assetRepo.ExistsByAssetID(ctx, id, nil)
		if err != nil {
			return "", err
		}
		if taken {
			return "", asset.ErrDuplicateAssetID
		}
		var seq int64
		if _, err := fmt.Sscanf(id, "AST-%d", &seq); err == nil {
			if err := s.sequencer.EnsureAtLeast(ctx, asset.SequenceName, seq); err != nil {
				return "", err
			}
		}
		return id, nil
	}

	for range maxIDAttempts {
		seq, err := s.sequencer.NextValue(ctx, asset.SequenceName, 0)
		if err != nil {
			return "", err
		}
		id := asset.FormatAssetID(seq)
		taken, err := s.assetRepo.ExistsByAssetID(ctx, id, nil)
		if err != nil {
			return "", err
		}
		if !taken {
			return id, nil
		}
		s.logger.Warn("Skipping generated asset ID already in use", zap.String("asset_id", id))
	}
	return "", fmt.Errorf("no free asset ID after %d attempts", maxIDAttempts)
}

// GetByID retrieves an asset by ID
func (s *AssetService) GetByID(ctx context.Context, id uuid.UUID) (*AssetResponse, error) {
	a, err := s.assetRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToAssetResponse(a)
	return &resp, nil
}

// List returns assets newest-first, paginated when requested
func (s *AssetService) List(ctx context.Context, filter ListAssetsFilter) (*AssetListResult, error) {
	domainFilter := asset.Filter{
		ListFilter: shared.ListFilter{Search: filter.Search},
		Status:     filter.Status,
		Category:   filter.Category,
	}
	var page shared.PageRequest
	if filter.Paginate {
		page = shared.NewPageRequest(filter.Page, filter.Limit)
		domainFilter.Page = &page
	}

	assets, total, err := s.assetRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, err
	}
	return &AssetListResult{
		Items: ToAssetResponses(assets),
		Total: total,
		Page:  page.Page,
		Limit: page.Limit,
	}, nil
}

// Update applies a partial update and appends maintenance records
func (s *AssetService) Update(ctx context.Context, id uuid.UUID, req UpdateAssetRequest) (*AssetResponse, error) {
	a, err := s.assetRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	previousAssetID := a.AssetID
	previousSerial := a.SerialNumber

	if err := a.Apply(asset.Patch{
		AssetID:            req.AssetID,
		Name:               req.Name,
		Category:           req.Category,
		SerialNumber:       req.SerialNumber,
		Status:             req.Status,
		PurchaseDate:       req.PurchaseDate,
		WarrantyExpiration: req.WarrantyExpiration,
		Department:         req.Department,
	}); err != nil {
		return nil, err
	}

	if a.AssetID != previousAssetID {
		taken, err := s.assetRepo.ExistsByAssetID(ctx, a.AssetID, &a.ID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, asset.ErrDuplicateAssetID
		}
	}
	if a.SerialNumber != previousSerial {
		taken, err := s.assetRepo.ExistsBySerialNumber(ctx, a.SerialNumber, &a.ID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, asset.ErrDuplicateSerial
		}
	}

	for _, rec := range req.MaintenanceRecords {
		if _, err := a.AddMaintenanceRecord(rec.Date, rec.Type, rec.Description, rec.Cost, rec.PerformedBy); err != nil {
			return nil, err
		}
	}

	if err := s.assetRepo.Save(ctx, a); err != nil {
		return nil, err
	}
	s.publishDomainEvents(ctx, a)

	resp := ToAssetResponse(a)
	return &resp, nil
}

// AddMaintenance appends a single maintenance record
func (s *AssetService) AddMaintenance(ctx context.Context, id uuid.UUID, rec MaintenanceRecordInput) (*AssetResponse, error) {
	return s.Update(ctx, id, UpdateAssetRequest{MaintenanceRecords: []MaintenanceRecordInput{rec}})
}

// Delete hard-deletes an asset. Assignments that reference it are left in place.
func (s *AssetService) Delete(ctx context.Context, id uuid.UUID) error {
	a, err := s.assetRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.assetRepo.Delete(ctx, id); err != nil {
		return err
	}
	a.RecordEvent(asset.NewAssetDeletedEvent(a))
	s.publishDomainEvents(ctx, a)

	s.logger.Info("Asset deleted", zap.String("asset_id", a.AssetID))
	return nil
}

// NextAssetID previews the next generated asset ID without consuming it
func (s *AssetService) NextAssetID(ctx context.Context) (*NextIDResponse, error) {
	seq, err := s.sequencer.Peek(ctx, asset.SequenceName, 0)
	if err != nil {
		return nil, err
	}
	return &NextIDResponse{NextID: asset.FormatAssetID(seq)}, nil
}

func (s *AssetService) publishDomainEvents(ctx context.Context, a *asset.Asset) {
	if s.eventPublisher == nil {
		a.ClearEvents()
		return
	}
	events := a.PendingEvents()
	if len(events) == 0 {
		return
	}
	if err := s.eventPublisher.Publish(ctx, events...); err != nil {
		s.logger.Warn("Failed to publish asset events", zap.Error(err))
	}
	a.ClearEvents()
}
