package repository

import (
	"github.com/projectpulse/project-management-api/internal/models"
	"github.com/projectpulse/project-management-api/internal/utils"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByEmail finds a user by email
	FindByEmail(email string) (*models.User, error)

	// List returns every user row
	List() ([]models.User, error)
}

// ProjectRepository defines the interface for project data access
type ProjectRepository interface {
	// Create creates a new project
	Create(project *models.Project) error

	// FindByID finds a project by ID
	FindByID(id uint64) (*models.Project, error)

	// ListByCreator lists projects whose projectcreator matches the username
	ListByCreator(username string) ([]models.Project, error)

	// ListAll lists every project with pagination
	ListAll(params utils.PaginationParams) ([]models.Project, int64, error)

	// Updates applies the given column values to a project row
	Updates(id uint64, fields map[string]interface{}) error

	// Delete hard-deletes a project and reports how many rows were removed
	Delete(id uint64) (int64, error)
}

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// Create creates a new task
	Create(task *models.Task) error

	// ListAll lists every task with pagination
	ListAll(params utils.PaginationParams) ([]models.Task, int64, error)

	// ListByAssignee lists tasks whose task_assgn_to matches the username
	ListByAssignee(username string) ([]models.Task, error)
}
