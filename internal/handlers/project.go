package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/takumi-ao/project-tracker-api/internal/dto"
	apierrors "github.com/takumi-ao/project-tracker-api/internal/errors"
	"github.com/takumi-ao/project-tracker-api/internal/middleware"
	"github.com/takumi-ao/project-tracker-api/internal/services"
)

// ProjectHandler coordinates project HTTP handlers.
type ProjectHandler struct {
	projectService *services.ProjectService
}

// NewProjectHandler creates a new ProjectHandler.
func NewProjectHandler(projectService *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
	}
}

// CreateProject creates a project owned by the caller.
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type CreateProjectRequest struct {
		Title string `json:"title"`
	}

	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	project, err := h.projectService.Create(userID, req.Title)
	if err != nil {
		respondProjectError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToProjectDTO(*project))
}

// ListProjects returns all of the caller's projects, archived ones
// included; the listing view filters on isDeleted client-side.
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	projects, err := h.projectService.List(userID)
	if err != nil {
		respondProjectError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProjectListDTO(projects))
}

// GetProject returns a project with its active and archived tasks.
func (h *ProjectHandler) GetProject(c *gin.Context) {
	userID, projectID, ok := projectRequestIDs(c)
	if !ok {
		return
	}

	project, err := h.projectService.Get(userID, projectID)
	if err != nil {
		respondProjectError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProjectDetailDTO(*project))
}

// UpdateTitle replaces the project title.
func (h *ProjectHandler) UpdateTitle(c *gin.Context) {
	userID, projectID, ok := projectRequestIDs(c)
	if !ok {
		return
	}

	type UpdateTitleRequest struct {
		Title string `json:"title"`
	}

	var req UpdateTitleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	project, err := h.projectService.UpdateTitle(userID, projectID, req.Title)
	if err != nil {
		respondProjectError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProjectDTO(*project))
}

// DeleteProject soft deletes a project.
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	userID, projectID, ok := projectRequestIDs(c)
	if !ok {
		return
	}

	if err := h.projectService.Archive(userID, projectID); err != nil {
		respondProjectError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// RestoreProject clears a project's soft-delete flag.
func (h *ProjectHandler) RestoreProject(c *gin.Context) {
	userID, projectID, ok := projectRequestIDs(c)
	if !ok {
		return
	}

	if err := h.projectService.Restore(userID, projectID); err != nil {
		respondProjectError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ActualDeleteProject removes the project row and all of its tasks.
func (h *ProjectHandler) ActualDeleteProject(c *gin.Context) {
	userID, projectID, ok := projectRequestIDs(c)
	if !ok {
		return
	}

	if err := h.projectService.HardDelete(userID, projectID); err != nil {
		respondProjectError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// projectRequestIDs pulls the caller and the :id path parameter, writing
// the error response itself when either is unusable.
func projectRequestIDs(c *gin.Context) (userID, projectID uint64, ok bool) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return 0, 0, false
	}

	projectID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid project ID")
		return 0, 0, false
	}

	return userID, projectID, true
}

func respondProjectError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrProjectNotFound):
		apierrors.NotFound(c, "Project not found")
	case errors.Is(err, services.ErrTitleRequired):
		apierrors.BadRequest(c, "Project title is required")
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}
