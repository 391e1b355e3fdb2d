package dto

import (
	"time"

	"github.com/projectpulse/project-management-api/internal/models"
)

// UserDTO represents a registered user in API responses
type UserDTO struct {
	ID        uint64    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SessionIdentity is the identity snapshot embedded in the session at
// login and echoed by /api/auth/me. Username is empty when the account
// has no display name.
type SessionIdentity struct {
	ID       uint64 `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username,omitempty"`
}

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

// ToSessionIdentity projects a User model to its session snapshot
func ToSessionIdentity(user models.User) SessionIdentity {
	return SessionIdentity{
		ID:       user.ID,
		Email:    user.Email,
		Username: user.Username,
	}
}
