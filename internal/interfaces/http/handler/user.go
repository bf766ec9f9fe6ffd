package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	identityapp "github.com/assettrack/backend/internal/application/identity"
	"github.com/assettrack/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// ProfileFormField is the multipart field carrying the profile image
const ProfileFormField = "image"

// UserHandler serves the caller's own profile
type UserHandler struct {
	BaseHandler
	profileService *identityapp.ProfileService
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(profileService *identityapp.ProfileService) *UserHandler {
	return &UserHandler{profileService: profileService}
}

// UpdateProfileRequest renames the caller
//
//	@Description	Display name
type UpdateProfileRequest struct {
	Name string `json:"name" binding:"required,min=1,max=200" example:"Priya Sharma"`
}

// Me godoc
// @ID           getCurrentUser
// @Summary      The authenticated user's profile
// @Tags         users
// @Produce      json
// @Success      200 {object} APIResponse[identityapp.UserResponse]
// @Failure      401 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /users/me [get]
func (h *UserHandler) Me(c *gin.Context) {
	userID, ok := h.currentUserID(c)
	if !ok {
		return
	}
	resp, err := h.profileService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// UpdateProfile godoc
// @ID           updateProfile
// @Summary      Update the caller's name
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request body UpdateProfileRequest true "Name"
// @Success      200 {object} APIResponse[identityapp.UserResponse]
// @Failure      400 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /users/profile [patch]
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID, ok := h.currentUserID(c)
	if !ok {
		return
	}
	var req UpdateProfileRequest
	if !h.bindJSON(c, &req) {
		return
	}
	resp, err := h.profileService.UpdateName(c.Request.Context(), userID, req.Name)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// UploadProfileImage godoc
// @ID           uploadProfileImage
// @Summary      Upload or replace the caller's profile image
// @Description  JPEG or PNG in the multipart field "image"
// @Tags         users
// @Accept       multipart/form-data
// @Produce      json
// @Param        image formData file true "Profile image"
// @Success      200 {object} APIResponse[identityapp.UserResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      413 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /users/profile-image [post]
func (h *UserHandler) UploadProfileImage(c *gin.Context) {
	userID, ok := h.currentUserID(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile(ProfileFormField)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.Error(c, http.StatusRequestEntityTooLarge, dto.ErrCodeTooLarge, "Request body too large")
			return
		}
		h.ValidationError(c, "Request validation failed", []dto.ValidationDetail{{Field: ProfileFormField, Message: "No file uploaded"}})
		return
	}

	maxSize := h.profileService.MaxImageSize()
	if fileHeader.Size > maxSize {
		h.ValidationError(c, "Request validation failed", []dto.ValidationDetail{{
			Field:   ProfileFormField,
			Message: fmt.Sprintf("Image must be at most %dMB", maxSize>>20),
		}})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.HandleError(c, fmt.Errorf("open upload: %w", err))
		return
	}
	defer file.Close()

	// one byte past the limit lets the service reject oversize streams
	data, err := io.ReadAll(io.LimitReader(file, maxSize+1))
	if err != nil {
		h.HandleError(c, fmt.Errorf("read upload: %w", err))
		return
	}

	resp, err := h.profileService.UploadProfileImage(c.Request.Context(), userID, identityapp.UploadImageRequest{
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Size:        fileHeader.Size,
		Data:        data,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// DeleteProfileImage godoc
// @ID           deleteProfileImage
// @Summary      Remove the caller's profile image
// @Tags         users
// @Produce      json
// @Success      200 {object} APIResponse[identityapp.UserResponse]
// @Security     BearerAuth
// @Router       /users/profile-image [delete]
func (h *UserHandler) DeleteProfileImage(c *gin.Context) {
	userID, ok := h.currentUserID(c)
	if !ok {
		return
	}
	resp, err := h.profileService.DeleteProfileImage(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}
