package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/projectpulse/project-management-api/internal/dto"
	apierrors "github.com/projectpulse/project-management-api/internal/errors"
	"github.com/projectpulse/project-management-api/internal/middleware"
	"github.com/projectpulse/project-management-api/internal/models"
	"github.com/projectpulse/project-management-api/internal/services"
	"github.com/projectpulse/project-management-api/internal/utils"
)

// TaskHandler coordinates task-related HTTP handlers.
type TaskHandler struct {
	taskService *services.TaskService
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(taskService *services.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

// CreateTask creates a task under an existing project.
func (h *TaskHandler) CreateTask(c *gin.Context) {
	type CreateTaskRequest struct {
		Name        string        `json:"name" binding:"required"`
		Description string        `json:"description" binding:"required"`
		AssignedBy  string        `json:"task_assgn_by" binding:"required"`
		AssignedTo  *string       `json:"task_assgn_to"`
		Deadline    *string       `json:"deadline"`
		CreatedByID uint64        `json:"createdById" binding:"required"`
		ProjectID   uint64        `json:"projectId" binding:"required"`
		Status      models.Status `json:"status"`
	}

	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	err := h.taskService.CreateTask(services.CreateTaskInput{
		Name:        req.Name,
		Description: req.Description,
		AssignedBy:  req.AssignedBy,
		AssignedTo:  req.AssignedTo,
		Deadline:    req.Deadline,
		CreatedByID: req.CreatedByID,
		ProjectID:   req.ProjectID,
		Status:      req.Status,
	})
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewMutationResult("Task created successfully"))
}

// ListTasks returns every task regardless of caller.
func (h *TaskHandler) ListTasks(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	tasks, total, err := h.taskService.ListAll(params)
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"tasks": tasks,
		"pagination": utils.PaginationResponse{
			Page:  params.Page,
			Limit: params.Limit,
			Total: total,
		},
	})
}

// ListMyTasks returns the tasks assigned to the caller's username snapshot.
func (h *TaskHandler) ListMyTasks(c *gin.Context) {
	username, exists := middleware.GetUsername(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	tasks, err := h.taskService.ListByAssignee(username)
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"tasks": tasks})
}

func respondTaskError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidStatus),
		errors.Is(err, services.ErrInvalidDeadline):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrFailedToCreateTask):
		apierrors.OperationFailed(c, "Failed to create task")
	case errors.Is(err, services.ErrFailedToListTasks):
		apierrors.OperationFailed(c, "Failed to fetch tasks")
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}
