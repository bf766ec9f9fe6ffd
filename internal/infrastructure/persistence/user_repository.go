package persistence

import (
	"context"
	"strings"
	"time"

	"github.com/assettrack/backend/internal/domain/identity"
	"github.com/assettrack/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var userUniqueRules = []uniqueRule{
	{Constraint: "ux_users_email", Column: "users.email", Err: identity.ErrEmailInUse},
}

// GormUserRepository stores login accounts in the users table
type GormUserRepository struct {
	db *gorm.DB
}

func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

func (r *GormUserRepository) users(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Model(&models.UserModel{})
}

func (r *GormUserRepository) Create(ctx context.Context, user *identity.User) error {
	err := r.db.WithContext(ctx).Create(models.UserModelFromDomain(user)).Error
	return translateUniqueViolation(err, userUniqueRules...)
}

// Update writes every column, zero values included
func (r *GormUserRepository) Update(ctx context.Context, user *identity.User) error {
	row := models.UserModelFromDomain(user)
	res := r.db.WithContext(ctx).Model(row).Select("*").Updates(row)
	switch {
	case res.Error != nil:
		return translateUniqueViolation(res.Error, userUniqueRules...)
	case res.RowsAffected == 0:
		return identity.ErrUserNotFound
	}
	return nil
}

func (r *GormUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.User, error) {
	return firstAs[models.UserModel, *identity.User](r.db.WithContext(ctx), identity.ErrUserNotFound, "id = ?", id)
}

// FindByIDs skips IDs without a row
func (r *GormUserRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*identity.User, error) {
	if len(ids) == 0 {
		return []*identity.User{}, nil
	}
	return findAs[models.UserModel, *identity.User](r.db.WithContext(ctx).Where("id IN ?", ids))
}

// FindByEmail matches case-insensitively
func (r *GormUserRepository) FindByEmail(ctx context.Context, email string) (*identity.User, error) {
	if email == "" {
		return nil, identity.ErrUserNotFound
	}
	return firstAs[models.UserModel, *identity.User](r.db.WithContext(ctx), identity.ErrUserNotFound,
		"LOWER(email) = ?", strings.ToLower(email))
}

func (r *GormUserRepository) ExistsByEmail(ctx context.Context, email string, excludeID *uuid.UUID) (bool, error) {
	q := r.users(ctx).Where("LOWER(email) = ?", strings.ToLower(email))
	if excludeID != nil {
		q = q.Where("id <> ?", *excludeID)
	}
	return existsIn(q)
}

// UpdateStatus bypasses the aggregate; deactivation also revokes the stored refresh token
func (r *GormUserRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status identity.UserStatus) error {
	set := map[string]any{
		"status":     status,
		"updated_at": time.Now(),
		"version":    gorm.Expr("version + 1"),
	}
	if status == identity.UserStatusInactive {
		set["refresh_token"] = ""
	}
	res := r.users(ctx).Where("id = ?", id).Updates(set)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return identity.ErrUserNotFound
	}
	return nil
}

func (r *GormUserRepository) Count(ctx context.Context) (int64, error) {
	return countOf(r.users(ctx))
}

var _ identity.UserRepository = (*GormUserRepository)(nil)
