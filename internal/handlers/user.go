package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	apierrors "github.com/projectpulse/project-management-api/internal/errors"
	"github.com/projectpulse/project-management-api/internal/services"
)

// UserHandler coordinates user directory HTTP handlers.
type UserHandler struct {
	authService *services.AuthService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(authService *services.AuthService) *UserHandler {
	return &UserHandler{
		authService: authService,
	}
}

// ListUsers returns every user row. The password hash never serializes.
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.authService.ListUsers()
	if err != nil {
		if errors.Is(err, services.ErrFailedToListUsers) {
			apierrors.OperationFailed(c, "Failed to fetch users")
			return
		}
		apierrors.InternalError(c, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, gin.H{"users": users})
}
