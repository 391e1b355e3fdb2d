package repository

import (
	"github.com/projectpulse/project-management-api/internal/database"
	"github.com/projectpulse/project-management-api/internal/models"
	"github.com/projectpulse/project-management-api/internal/utils"
	"gorm.io/gorm"
)

// GormTaskRepository is a GORM implementation of TaskRepository
type GormTaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new TaskRepository
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &GormTaskRepository{db: db}
}

// Create creates a new task
func (r *GormTaskRepository) Create(task *models.Task) error {
	return r.db.Create(task).Error
}

// ListAll lists every task with pagination
func (r *GormTaskRepository) ListAll(params utils.PaginationParams) ([]models.Task, int64, error) {
	var total int64
	if err := r.db.Model(&models.Task{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var tasks []models.Task
	if err := r.db.Scopes(database.Paginate(params)).
		Order("created_at DESC").
		Find(&tasks).Error; err != nil {
		return nil, 0, err
	}
	return tasks, total, nil
}

// ListByAssignee lists tasks whose task_assgn_to matches the username
func (r *GormTaskRepository) ListByAssignee(username string) ([]models.Task, error) {
	var tasks []models.Task
	if err := r.db.Where("task_assgn_to = ?", username).
		Order("created_at DESC").
		Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}
