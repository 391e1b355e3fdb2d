package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/projectpulse/project-management-api/internal/models"
	"github.com/projectpulse/project-management-api/internal/repository"
	"github.com/projectpulse/project-management-api/internal/utils"
	"gorm.io/gorm"
)

var (
	ErrUserNotFound          = errors.New("user not found")
	ErrInvalidStatus         = errors.New("invalid status")
	ErrInvalidDeadline       = errors.New("invalid deadline")
	ErrFailedToCreateProject = errors.New("failed to create project")
	ErrFailedToUpdateProject = errors.New("failed to update project")
	ErrFailedToDeleteProject = errors.New("failed to delete project")
	ErrFailedToListProjects  = errors.New("failed to list projects")
)

// ProjectService handles project business logic.
type ProjectService struct {
	projectRepo repository.ProjectRepository
	userRepo    repository.UserRepository
}

// NewProjectService creates a new ProjectService.
func NewProjectService(projectRepo repository.ProjectRepository, userRepo repository.UserRepository) *ProjectService {
	return &ProjectService{
		projectRepo: projectRepo,
		userRepo:    userRepo,
	}
}

// CreateProjectInput represents input for creating a project.
type CreateProjectInput struct {
	Name        string
	Description *string
	Deadline    *string
	Status      models.Status
	Email       string
	Creator     string
}

// CreateProject resolves the owning user by email and inserts the project.
// The creator display string is stored as supplied, independent of the
// resolved user ID.
func (s *ProjectService) CreateProject(input CreateProjectInput) error {
	if input.Status == "" {
		input.Status = models.StatusActive
	}
	if !input.Status.Valid() {
		return ErrInvalidStatus
	}

	deadline, err := parseOptionalDeadline(input.Deadline)
	if err != nil {
		return err
	}

	user, err := s.userRepo.FindByEmail(input.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to find user: %w", err)
	}

	project := &models.Project{
		Name:        input.Name,
		Description: input.Description,
		Deadline:    deadline,
		Creator:     &input.Creator,
		UserID:      user.ID,
		Status:      input.Status,
	}

	if err := s.projectRepo.Create(project); err != nil {
		log.Printf("create project: %v", err)
		return ErrFailedToCreateProject
	}

	return nil
}

// ListByCreator returns the projects whose creator string matches the username.
func (s *ProjectService) ListByCreator(username string) ([]models.Project, error) {
	projects, err := s.projectRepo.ListByCreator(username)
	if err != nil {
		log.Printf("list projects by creator: %v", err)
		return nil, ErrFailedToListProjects
	}
	return projects, nil
}

// ListAll returns every project regardless of caller.
func (s *ProjectService) ListAll(params utils.PaginationParams) ([]models.Project, int64, error) {
	projects, total, err := s.projectRepo.ListAll(params)
	if err != nil {
		log.Printf("list all projects: %v", err)
		return nil, 0, ErrFailedToListProjects
	}
	return projects, total, nil
}

// UpdateProjectInput represents input for updating a project. Nil optional
// fields are left unchanged.
type UpdateProjectInput struct {
	ID          uint64
	Name        string
	Description *string
	Deadline    *string
	Status      *models.Status
}

// UpdateProject changes exactly the supplied fields. There is no ownership
// check: any authenticated caller may update any project by ID.
func (s *ProjectService) UpdateProject(input UpdateProjectInput) error {
	fields := map[string]interface{}{
		"projectname": input.Name,
	}
	if input.Description != nil {
		fields["description"] = *input.Description
	}
	if input.Deadline != nil {
		deadline, err := utils.ParseDeadline(*input.Deadline)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidDeadline, err)
		}
		fields["deadline"] = deadline
	}
	if input.Status != nil {
		if !input.Status.Valid() {
			return ErrInvalidStatus
		}
		fields["status"] = *input.Status
	}

	if _, err := s.projectRepo.FindByID(input.ID); err != nil {
		log.Printf("update project %d: %v", input.ID, err)
		return ErrFailedToUpdateProject
	}

	if err := s.projectRepo.Updates(input.ID, fields); err != nil {
		log.Printf("update project %d: %v", input.ID, err)
		return ErrFailedToUpdateProject
	}

	return nil
}

// DeleteProject removes a project by ID. Deleting a missing row fails.
func (s *ProjectService) DeleteProject(id uint64) error {
	rows, err := s.projectRepo.Delete(id)
	if err != nil {
		log.Printf("delete project %d: %v", id, err)
		return ErrFailedToDeleteProject
	}
	if rows == 0 {
		log.Printf("delete project %d: no such project", id)
		return ErrFailedToDeleteProject
	}
	return nil
}

// parseOptionalDeadline parses a deadline pointer, treating nil as absent.
func parseOptionalDeadline(value *string) (*time.Time, error) {
	if value == nil {
		return nil, nil
	}
	deadline, err := utils.ParseDeadline(*value)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDeadline, err)
	}
	return deadline, nil
}
