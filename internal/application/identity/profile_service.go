package identity

import (
	"context"
	"fmt"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/assettrack/backend/internal/domain/identity"
	"github.com/assettrack/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultMaxImageSize is the upload limit for profile images
const DefaultMaxImageSize int64 = 5 << 20

const profileImagePrefix = "profile-images"

var imageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
}

// ObjectStorage stores profile image bytes
type ObjectStorage interface {
	Put(ctx context.Context, key string, data []byte, contentType string) error
	Delete(ctx context.Context, key string) error
	PresignGet(ctx context.Context, key string) (string, time.Time, error)
}

// ProfileService manages the caller's own profile
type ProfileService struct {
	userRepo     identity.UserRepository
	storage      ObjectStorage
	maxImageSize int64
	logger       *zap.Logger
}

// NewProfileService creates a new ProfileService; maxImageSize <= 0 uses DefaultMaxImageSize
func NewProfileService(userRepo identity.UserRepository, storage ObjectStorage, maxImageSize int64, logger *zap.Logger) *ProfileService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if maxImageSize <= 0 {
		maxImageSize = DefaultMaxImageSize
	}
	return &ProfileService{
		userRepo:     userRepo,
		storage:      storage,
		maxImageSize: maxImageSize,
		logger:       logger,
	}
}

// MaxImageSize returns the upload limit in bytes
func (s *ProfileService) MaxImageSize() int64 {
	return s.maxImageSize
}

// GetProfile returns the user with a fresh image URL
func (s *ProfileService) GetProfile(ctx context.Context, userID uuid.UUID) (*UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.render(ctx, user), nil
}

// UpdateName sets the display name
func (s *ProfileService) UpdateName(ctx context.Context, userID uuid.UUID, name string) (*UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := user.SetName(name); err != nil {
		return nil, err
	}
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return s.render(ctx, user), nil
}

// UploadProfileImage stores a JPEG or PNG and replaces the previous image
func (s *ProfileService) UploadProfileImage(ctx context.Context, userID uuid.UUID, req UploadImageRequest) (*UserResponse, error) {
	contentType, err := s.checkImage(req)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("%s/%s/%s%s", profileImagePrefix, user.ID, uuid.New(), imageExtension(req.Filename, contentType))
	if err := s.storage.Put(ctx, key, req.Data, contentType); err != nil {
		return nil, err
	}

	previous := user.ProfileImage
	user.SetProfileImage(&key)
	if err := s.userRepo.Update(ctx, user); err != nil {
		s.removeObject(ctx, key)
		return nil, err
	}
	if previous != nil {
		s.removeObject(ctx, *previous)
	}

	s.logger.Info("Profile image uploaded",
		zap.String("user_id", user.ID.String()),
		zap.Int64("size", req.Size),
		zap.String("content_type", contentType))
	return s.render(ctx, user), nil
}

// DeleteProfileImage clears the image and removes the stored object
func (s *ProfileService) DeleteProfileImage(ctx context.Context, userID uuid.UUID) (*UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	previous := user.ProfileImage
	if previous == nil {
		return s.render(ctx, user), nil
	}

	user.SetProfileImage(nil)
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	s.removeObject(ctx, *previous)

	return s.render(ctx, user), nil
}

// checkImage validates size and type; the declared type must agree with the bytes
func (s *ProfileService) checkImage(req UploadImageRequest) (string, error) {
	if len(req.Data) == 0 {
		return "", shared.NewFieldError("image", "No file uploaded")
	}
	if req.Size > s.maxImageSize || int64(len(req.Data)) > s.maxImageSize {
		return "", shared.NewFieldError("image", fmt.Sprintf("Image must be at most %dMB", s.maxImageSize>>20))
	}

	declared := strings.ToLower(strings.TrimSpace(req.ContentType))
	if declared == "image/jpg" {
		declared = "image/jpeg"
	}
	sniffed := http.DetectContentType(req.Data)
	if _, ok := imageExtensions[declared]; !ok || sniffed != declared {
		return "", shared.NewFieldError("image", "Only JPEG and PNG images are allowed")
	}
	return declared, nil
}

func imageExtension(filename, contentType string) string {
	switch ext := strings.ToLower(path.Ext(filename)); ext {
	case ".jpg", ".jpeg", ".png":
		if (ext == ".png") == (contentType == "image/png") {
			return ext
		}
	}
	return imageExtensions[contentType]
}

func (s *ProfileService) removeObject(ctx context.Context, key string) {
	if err := s.storage.Delete(ctx, key); err != nil {
		s.logger.Warn("Failed to delete profile image", zap.String("key", key), zap.Error(err))
	}
}

// render swaps the stored key for a presigned URL; a signing failure leaves it empty
func (s *ProfileService) render(ctx context.Context, user *identity.User) *UserResponse {
	var imageURL *string
	if user.ProfileImage != nil {
		u, _, err := s.storage.PresignGet(ctx, *user.ProfileImage)
		if err != nil {
			s.logger.Warn("Failed to sign profile image URL", zap.String("user_id", user.ID.String()), zap.Error(err))
		} else {
			imageURL = &u
		}
	}
	resp := ToUserResponse(user, imageURL)
	return &resp
}
