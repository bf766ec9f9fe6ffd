package identity

import (
	"context"
	"errors"
	"strings"

	"github.com/assettrack/backend/internal/domain/identity"
	"github.com/assettrack/backend/internal/domain/shared"
	"github.com/assettrack/backend/internal/infrastructure/auth"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AuthService handles login, token rotation and credential changes
type AuthService struct {
	userRepo       identity.UserRepository
	jwtService     *auth.JWTService
	blacklist      auth.TokenBlacklist
	eventPublisher shared.EventPublisher
	logger         *zap.Logger
}

// NewAuthService creates a new authentication service
func NewAuthService(
	userRepo identity.UserRepository,
	jwtService *auth.JWTService,
	blacklist auth.TokenBlacklist,
	logger *zap.Logger,
) *AuthService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthService{
		userRepo:   userRepo,
		jwtService: jwtService,
		blacklist:  blacklist,
		logger:     logger,
	}
}

// SetEventPublisher sets the event publisher for user events
func (s *AuthService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// Login authenticates by email and password and issues a token pair.
// Unknown emails and wrong passwords produce the same error.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*TokenResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if shared.IsNotFound(err) {
			s.logger.Warn("Login attempt for unknown email")
			return nil, identity.ErrInvalidCredentials
		}
		return nil, err
	}

	if !user.IsActive() {
		s.logger.Warn("Login attempt for inactive user", zap.String("user_id", user.ID.String()))
		return nil, identity.ErrUserInactive
	}

	if !user.VerifyPassword(req.Password) {
		s.logger.Warn("Invalid password attempt", zap.String("user_id", user.ID.String()))
		return nil, identity.ErrInvalidCredentials
	}

	resp, err := s.issue(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info("User logged in", zap.String("user_id", user.ID.String()))
	view := ToUserResponse(user, nil)
	resp.User = &view
	return resp, nil
}

// Refresh rotates the token pair. The presented token must be the one on record,
// so a refresh token can be used once.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*TokenResponse, error) {
	claims, err := s.jwtService.ValidateRefreshToken(refreshToken)
	if err != nil {
		s.logger.Debug("Refresh token rejected", zap.Error(err))
		return nil, identity.ErrInvalidRefreshToken
	}

	userID, err := claims.GetUserUUID()
	if err != nil {
		return nil, identity.ErrInvalidRefreshToken
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if shared.IsNotFound(err) {
			return nil, identity.ErrInvalidRefreshToken
		}
		return nil, err
	}
	if !user.HasRefreshToken(refreshToken) {
		s.logger.Warn("Refresh token does not match stored token", zap.String("user_id", userID.String()))
		return nil, identity.ErrInvalidRefreshToken
	}
	if !user.IsActive() {
		return nil, identity.ErrUserInactive
	}

	return s.issue(ctx, user)
}

// issue generates a pair and stores the refresh token on the user
func (s *AuthService) issue(ctx context.Context, user *identity.User) (*TokenResponse, error) {
	pair, err := s.jwtService.GenerateTokenPair(auth.Subject{
		UserID: user.ID,
		Email:  user.Email,
		Role:   string(user.Role),
	})
	if err != nil {
		s.logger.Error("Failed to generate token pair", zap.Error(err))
		return nil, err
	}

	user.SetRefreshToken(pair.RefreshToken)
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return &TokenResponse{
		AccessToken:           pair.AccessToken,
		RefreshToken:          pair.RefreshToken,
		AccessTokenExpiresAt:  pair.AccessTokenExpiresAt,
		RefreshTokenExpiresAt: pair.RefreshTokenExpiresAt,
		TokenType:             pair.TokenType,
	}, nil
}

// Logout forgets the refresh token and revokes the calling access token
func (s *AuthService) Logout(ctx context.Context, req LogoutRequest) error {
	user, err := s.userRepo.FindByID(ctx, req.UserID)
	if err != nil {
		return err
	}

	user.ClearRefreshToken()
	if err := s.userRepo.Update(ctx, user); err != nil {
		return err
	}

	if s.blacklist != nil {
		if err := s.blacklist.Revoke(ctx, req.AccessTokenID, req.AccessTokenTTL); err != nil {
			// the refresh token is already gone; the access token lapses on its own
			s.logger.Warn("Failed to revoke access token", zap.Error(err))
		}
	}

	s.logger.Info("User logged out", zap.String("user_id", req.UserID.String()))
	return nil
}

// IsRevoked reports whether an access token JTI was revoked by logout
func (s *AuthService) IsRevoked(ctx context.Context, jti string) (bool, error) {
	if s.blacklist == nil || jti == "" {
		return false, nil
	}
	return s.blacklist.IsRevoked(ctx, jti)
}

// ChangePassword verifies the current password and sets a new one
func (s *AuthService) ChangePassword(ctx context.Context, userID uuid.UUID, req ChangePasswordRequest) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	if err := user.ChangePassword(req.CurrentPassword, req.NewPassword); err != nil {
		return err
	}
	if err := s.userRepo.Update(ctx, user); err != nil {
		return err
	}
	s.publishDomainEvents(ctx, user)

	s.logger.Info("User password changed", zap.String("user_id", userID.String()))
	return nil
}

// UpdateEmail changes the login email after re-checking the password
func (s *AuthService) UpdateEmail(ctx context.Context, userID uuid.UUID, req UpdateEmailRequest) (*UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if !user.VerifyPassword(req.Password) {
		return nil, identity.ErrPasswordIncorrect
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	taken, err := s.userRepo.ExistsByEmail(ctx, email, &user.ID)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, identity.ErrEmailInUse
	}

	if err := user.SetEmail(email); err != nil {
		return nil, err
	}
	if err := s.userRepo.Update(ctx, user); err != nil {
		if errors.Is(err, identity.ErrEmailInUse) {
			return nil, identity.ErrEmailInUse
		}
		return nil, err
	}

	s.logger.Info("User email changed", zap.String("user_id", userID.String()))
	resp := ToUserResponse(user, nil)
	return &resp, nil
}

func (s *AuthService) publishDomainEvents(ctx context.Context, u *identity.User) {
	events := u.PendingEvents()
	if s.eventPublisher == nil || len(events) == 0 {
		u.ClearEvents()
		return
	}
	if err := s.eventPublisher.Publish(ctx, events...); err != nil {
		s.logger.Warn("Failed to publish user events", zap.Error(err))
	}
	u.ClearEvents()
}
