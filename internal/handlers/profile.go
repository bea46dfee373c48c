package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/takumi-ao/project-tracker-api/internal/dto"
	apierrors "github.com/takumi-ao/project-tracker-api/internal/errors"
	"github.com/takumi-ao/project-tracker-api/internal/middleware"
	"github.com/takumi-ao/project-tracker-api/internal/services"
)

// ProfileHandler coordinates profile and git PAC HTTP handlers.
type ProfileHandler struct {
	profileService *services.ProfileService
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(profileService *services.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
	}
}

// GetProfile returns the caller's username and git PAC.
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	view, err := h.profileService.Get(userID)
	if err != nil {
		respondProfileError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ProfileDTO{
		Username: view.Username,
		GitPAC:   view.GitPAC,
	})
}

// UpdateProfile overwrites the caller's git PAC, creating the profile row
// on first write. An absent field binds to "" and "" is a valid value, so
// there is nothing to reject.
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type UpdateProfileRequest struct {
		GitPAC string `json:"git_pac"`
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	gitPAC, err := h.profileService.UpdatePAC(userID, req.GitPAC)
	if err != nil {
		respondProfileError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Profile updated successfully",
		"git_pac": gitPAC,
	})
}

// GetPAC is the legacy minimal endpoint returning only the git PAC.
func (h *ProfileHandler) GetPAC(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	view, err := h.profileService.Get(userID)
	if err != nil {
		respondProfileError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"git_pac": view.GitPAC,
	})
}

func respondProfileError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrUserNotFound):
		apierrors.NotFound(c, err.Error())
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}
