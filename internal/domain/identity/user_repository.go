package identity

import (
	"context"

	"github.com/assettrack/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// User errors
var (
	ErrUserNotFound             = shared.NewNotFoundError("USER_NOT_FOUND", "User not found")
	ErrInvalidCredentials       = shared.NewUnauthorizedError("INVALID_CREDENTIALS", "Invalid credentials")
	ErrUserInactive             = shared.NewForbiddenError("USER_INACTIVE", "User is inactive")
	ErrInvalidRefreshToken      = shared.NewUnauthorizedError("INVALID_TOKEN", "Invalid refresh token")
	ErrCurrentPasswordIncorrect = shared.NewFieldError("currentPassword", "Current password is incorrect")
	ErrPasswordIncorrect        = shared.NewFieldError("password", "Password is incorrect")
	ErrEmailInUse               = shared.NewConflictError(shared.CodeDuplicateEmail, "Email is already in use")
)

// UserRepository defines the interface for user persistence
type UserRepository interface {
	// Create creates a new user
	Create(ctx context.Context, user *User) error

	// Update updates an existing user
	Update(ctx context.Context, user *User) error

	// FindByID finds a user by ID
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)

	// FindByIDs loads several users, skipping IDs that do not exist
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*User, error)

	// FindByEmail finds a user by lowercase email
	FindByEmail(ctx context.Context, email string) (*User, error)

	// ExistsByEmail checks if another user already uses the email
	ExistsByEmail(ctx context.Context, email string, excludeID *uuid.UUID) (bool, error)

	// UpdateStatus sets the status without loading the aggregate
	UpdateStatus(ctx context.Context, id uuid.UUID, status UserStatus) error

	// Count returns the total number of users
	Count(ctx context.Context) (int64, error)
}
