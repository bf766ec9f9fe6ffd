package identity

import (
	"time"

	"github.com/assettrack/backend/internal/domain/identity"
	"github.com/google/uuid"
)

// LoginRequest contains the credentials for login
type LoginRequest struct {
	Email    string
	Password string
}

// ChangePasswordRequest contains the input for password change
type ChangePasswordRequest struct {
	CurrentPassword string
	NewPassword     string
}

// UpdateEmailRequest contains the input for an email change
type UpdateEmailRequest struct {
	Email    string
	Password string
}

// LogoutRequest identifies the session being ended
type LogoutRequest struct {
	UserID uuid.UUID
	// AccessTokenID is the JTI of the access token used for the call
	AccessTokenID string
	// AccessTokenTTL is how long that token would otherwise stay valid
	AccessTokenTTL time.Duration
}

// UploadImageRequest carries a profile image upload
type UploadImageRequest struct {
	Filename    string
	ContentType string
	Size        int64
	Data        []byte
}

// TokenResponse is returned by login and refresh
type TokenResponse struct {
	AccessToken           string        `json:"accessToken"`
	RefreshToken          string        `json:"refreshToken"`
	AccessTokenExpiresAt  time.Time     `json:"accessTokenExpiresAt"`
	RefreshTokenExpiresAt time.Time     `json:"refreshTokenExpiresAt"`
	TokenType             string        `json:"tokenType"`
	User                  *UserResponse `json:"user,omitempty"`
}

// UserResponse is the public view of a login account
type UserResponse struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	Role         string    `json:"role"`
	Status       string    `json:"status"`
	ProfileImage *string   `json:"profileImage"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// ToUserResponse renders u; imageURL replaces the stored object key when set
func ToUserResponse(u *identity.User, imageURL *string) UserResponse {
	return UserResponse{
		ID:           u.ID,
		Email:        u.Email,
		Name:         u.Name,
		Role:         string(u.Role),
		Status:       string(u.Status),
		ProfileImage: imageURL,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}
