package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/projectpulse/project-management-api/internal/dto"
	apierrors "github.com/projectpulse/project-management-api/internal/errors"
	"github.com/projectpulse/project-management-api/internal/middleware"
	"github.com/projectpulse/project-management-api/internal/models"
	"github.com/projectpulse/project-management-api/internal/services"
	"github.com/projectpulse/project-management-api/internal/utils"
)

// ProjectHandler coordinates project-related HTTP handlers.
type ProjectHandler struct {
	projectService *services.ProjectService
}

// NewProjectHandler creates a new ProjectHandler.
func NewProjectHandler(projectService *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
	}
}

// CreateProject creates a project. The owning user is resolved by the
// email supplied in the payload, not by the session identifier.
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	type CreateProjectRequest struct {
		Name        string        `json:"projectname" binding:"required"`
		Description *string       `json:"description"`
		Deadline    *string       `json:"deadline"`
		Status      models.Status `json:"status"`
		Email       string        `json:"email" binding:"required,email"`
		Creator     string        `json:"projectcreator" binding:"required"`
	}

	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	err := h.projectService.CreateProject(services.CreateProjectInput{
		Name:        req.Name,
		Description: req.Description,
		Deadline:    req.Deadline,
		Status:      req.Status,
		Email:       req.Email,
		Creator:     req.Creator,
	})
	if err != nil {
		respondProjectError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewMutationResult("Project created successfully"))
}

// ListProjects returns the caller's projects, filtered by the creator
// username snapshot from the session.
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	username, exists := middleware.GetUsername(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	projects, err := h.projectService.ListByCreator(username)
	if err != nil {
		respondProjectError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"projects": projects})
}

// ListRespectiveProjects returns the same creator-scoped listing as
// ListProjects. The dashboard and the project list page call it
// independently, so it stays a separate operation.
func (h *ProjectHandler) ListRespectiveProjects(c *gin.Context) {
	h.ListProjects(c)
}

// ListAllProjects returns every project regardless of caller.
func (h *ProjectHandler) ListAllProjects(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	projects, total, err := h.projectService.ListAll(params)
	if err != nil {
		respondProjectError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"projects": projects,
		"pagination": utils.PaginationResponse{
			Page:  params.Page,
			Limit: params.Limit,
			Total: total,
		},
	})
}

// UpdateProject updates the supplied fields of a project. Any
// authenticated caller may update any project by ID.
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	type UpdateProjectRequest struct {
		ID          uint64         `json:"projectid" binding:"required"`
		Name        string         `json:"projectname" binding:"required"`
		Description *string        `json:"description"`
		Deadline    *string        `json:"deadline"`
		Status      *models.Status `json:"status"`
	}

	var req UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	err := h.projectService.UpdateProject(services.UpdateProjectInput{
		ID:          req.ID,
		Name:        req.Name,
		Description: req.Description,
		Deadline:    req.Deadline,
		Status:      req.Status,
	})
	if err != nil {
		respondProjectError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewMutationResult("Project updated successfully"))
}

// DeleteProject deletes a project by ID. Any authenticated caller may
// delete any project.
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid project ID")
		return
	}

	if err := h.projectService.DeleteProject(id); err != nil {
		respondProjectError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewMutationResult("Project deleted successfully"))
}

func respondProjectError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrUserNotFound):
		apierrors.NotFound(c, "User not found")
	case errors.Is(err, services.ErrInvalidStatus),
		errors.Is(err, services.ErrInvalidDeadline):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrFailedToCreateProject):
		apierrors.OperationFailed(c, "Failed to create project")
	case errors.Is(err, services.ErrFailedToUpdateProject):
		apierrors.OperationFailed(c, "Failed to update project")
	case errors.Is(err, services.ErrFailedToDeleteProject):
		apierrors.OperationFailed(c, "Failed to delete project")
	case errors.Is(err, services.ErrFailedToListProjects):
		apierrors.OperationFailed(c, "Failed to fetch projects")
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}
