package services

import (
	"errors"
	"log"

	"github.com/projectpulse/project-management-api/internal/models"
	"github.com/projectpulse/project-management-api/internal/repository"
	"github.com/projectpulse/project-management-api/internal/utils"
)

var (
	ErrFailedToCreateTask = errors.New("failed to create task")
	ErrFailedToListTasks  = errors.New("failed to list tasks")
)

// TaskService handles task business logic.
type TaskService struct {
	taskRepo    repository.TaskRepository
	projectRepo repository.ProjectRepository
}

// NewTaskService creates a new TaskService.
func NewTaskService(taskRepo repository.TaskRepository, projectRepo repository.ProjectRepository) *TaskService {
	return &TaskService{
		taskRepo:    taskRepo,
		projectRepo: projectRepo,
	}
}

// CreateTaskInput represents input for creating a task.
type CreateTaskInput struct {
	Name        string
	Description string
	AssignedBy  string
	AssignedTo  *string
	Deadline    *string
	CreatedByID uint64
	ProjectID   uint64
	Status      models.Status
}

// CreateTask inserts a task under an existing project. The creator is not
// required to own the referenced project.
func (s *TaskService) CreateTask(input CreateTaskInput) error {
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

	if _, err := s.projectRepo.FindByID(input.ProjectID); err != nil {
		log.Printf("create task: project %d: %v", input.ProjectID, err)
		return ErrFailedToCreateTask
	}

	task := &models.Task{
		Name:        input.Name,
		Description: input.Description,
		AssignedBy:  input.AssignedBy,
		AssignedTo:  input.AssignedTo,
		Deadline:    deadline,
		CreatedByID: input.CreatedByID,
		ProjectID:   input.ProjectID,
		Status:      input.Status,
	}

	if err := s.taskRepo.Create(task); err != nil {
		log.Printf("create task: %v", err)
		return ErrFailedToCreateTask
	}

	return nil
}

// ListAll returns every task regardless of caller.
func (s *TaskService) ListAll(params utils.PaginationParams) ([]models.Task, int64, error) {
	tasks, total, err := s.taskRepo.ListAll(params)
	if err != nil {
		log.Printf("list all tasks: %v", err)
		return nil, 0, ErrFailedToListTasks
	}
	return tasks, total, nil
}

// ListByAssignee returns the tasks assigned to the given username.
func (s *TaskService) ListByAssignee(username string) ([]models.Task, error) {
	tasks, err := s.taskRepo.ListByAssignee(username)
	if err != nil {
		log.Printf("list tasks by assignee: %v", err)
		return nil, ErrFailedToListTasks
	}
	return tasks, nil
}
