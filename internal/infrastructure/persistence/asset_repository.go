package persistence

import (
	"context"
	"errors"

	"github.com/assettrack/backend/internal/domain/asset"
	"github.com/assettrack/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var assetUniqueRules = []uniqueRule{
	{Constraint: "ux_assets_asset_id", Column: "assets.asset_id", Err: asset.ErrDuplicateAssetID},
	{Constraint: "ux_assets_serial_number", Column: "assets.serial_number", Err: asset.ErrDuplicateSerial},
}

// GormAssetRepository implements AssetRepository using GORM
type GormAssetRepository struct {
	db *gorm.DB
}

// NewGormAssetRepository creates a new GormAssetRepository
func NewGormAssetRepository(db *gorm.DB) *GormAssetRepository {
	return &GormAssetRepository{db: db}
}

// Save inserts or updates an asset and replaces its maintenance history
func (r *GormAssetRepository) Save(ctx context.Context, a *asset.Asset) error {
	model := models.AssetModelFromDomain(a)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("MaintenanceHistory").Save(model).Error; err != nil {
			return err
		}
		if err := tx.Where("asset_id = ?", model.ID).Delete(&models.MaintenanceRecordModel{}).Error; err != nil {
			return err
		}
		if len(model.MaintenanceHistory) == 0 {
			return nil
		}
		return tx.Create(&model.MaintenanceHistory).Error
	})
	return translateUniqueViolation(err, assetUniqueRules...)
}

// Delete hard-deletes an asset by ID
func (r *GormAssetRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("asset_id = ?", id).Delete(&models.MaintenanceRecordModel{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.AssetModel{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return asset.ErrAssetNotFound
		}
		return nil
	})
}

// FindByID finds an asset by ID
func (r *GormAssetRepository) FindByID(ctx context.Context, id uuid.UUID) (*asset.Asset, error) {
	return r.findOne(ctx, r.db.WithContext(ctx), id)
}

// FindByIDForUpdate finds an asset by ID and locks the row until the transaction ends
func (r *GormAssetRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*asset.Asset, error) {
	return r.findOne(ctx, lockForUpdate(r.db.WithContext(ctx)), id)
}

func (r *GormAssetRepository) findOne(ctx context.Context, query *gorm.DB, id uuid.UUID) (*asset.Asset, error) {
	var model models.AssetModel
	if err := query.First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, asset.ErrAssetNotFound
		}
		return nil, err
	}
	if err := r.db.WithContext(ctx).Where("asset_id = ?", model.ID).
		Order("position ASC").
		Find(&model.MaintenanceHistory).Error; err != nil {
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByIDs loads several assets without their maintenance history
func (r *GormAssetRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*asset.Asset, error) {
	if len(ids) == 0 {
		return []*asset.Asset{}, nil
	}
	return findAs[models.AssetModel, *asset.Asset](r.db.WithContext(ctx).Where("id IN ?", ids))
}

// FindAll lists assets newest-first with optional search and pagination
func (r *GormAssetRepository) FindAll(ctx context.Context, filter asset.Filter) ([]*asset.Asset, int64, error) {
	var assetModels []*models.AssetModel
	var total int64

	query := r.db.WithContext(ctx).Model(&models.AssetModel{})
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	query = applySearch(query, filter.SearchTerm(), "name", "asset_id", "serial_number", "category")

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPage(query.Order("created_at DESC").Order("id DESC"), filter.Page)
	if err := query.Preload("MaintenanceHistory", func(db *gorm.DB) *gorm.DB {
		return db.Order("position ASC")
	}).Find(&assetModels).Error; err != nil {
		return nil, 0, err
	}

	assets := make([]*asset.Asset, len(assetModels))
	for i, model := range assetModels {
		assets[i] = model.ToDomain()
	}
	return assets, total, nil
}

// ExistsByAssetID checks if another asset uses the human-readable ID
func (r *GormAssetRepository) ExistsByAssetID(ctx context.Context, assetID string, excludeID *uuid.UUID) (bool, error) {
	return r.exists(ctx, "asset_id = ?", assetID, excludeID)
}

// ExistsBySerialNumber checks if another asset uses the serial number
func (r *GormAssetRepository) ExistsBySerialNumber(ctx context.Context, serial string, excludeID *uuid.UUID) (bool, error) {
	return r.exists(ctx, "serial_number = ?", serial, excludeID)
}

func (r *GormAssetRepository) exists(ctx context.Context, cond string, value string, excludeID *uuid.UUID) (bool, error) {
	query := r.db.WithContext(ctx).Model(&models.AssetModel{}).Where(cond, value)
	if excludeID != nil {
		query = query.Where("id <> ?", *excludeID)
	}
	return existsIn(query)
}

// CountByStatus returns the number of assets per status
func (r *GormAssetRepository) CountByStatus(ctx context.Context) (map[asset.Status]int64, error) {
	var rows []struct {
		Status asset.Status
		Count  int64
	}
	if err := r.db.WithContext(ctx).
		Model(&models.AssetModel{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	counts := make(map[asset.Status]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

// Ensure GormAssetRepository implements AssetRepository
var _ asset.AssetRepository = (*GormAssetRepository)(nil)
