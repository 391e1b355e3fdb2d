package repository

import (
	"github.com/projectpulse/project-management-api/internal/database"
	"github.com/projectpulse/project-management-api/internal/models"
	"github.com/projectpulse/project-management-api/internal/utils"
	"gorm.io/gorm"
)

// GormProjectRepository is a GORM implementation of ProjectRepository
type GormProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new ProjectRepository
func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &GormProjectRepository{db: db}
}

// Create creates a new project
func (r *GormProjectRepository) Create(project *models.Project) error {
	return r.db.Create(project).Error
}

// FindByID finds a project by ID
func (r *GormProjectRepository) FindByID(id uint64) (*models.Project, error) {
	var project models.Project
	if err := r.db.First(&project, id).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

// ListByCreator lists projects whose projectcreator matches the username
func (r *GormProjectRepository) ListByCreator(username string) ([]models.Project, error) {
	var projects []models.Project
	if err := r.db.Where("projectcreator = ?", username).
		Order("created_at DESC").
		Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

// ListAll lists every project with pagination
func (r *GormProjectRepository) ListAll(params utils.PaginationParams) ([]models.Project, int64, error) {
	var total int64
	if err := r.db.Model(&models.Project{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var projects []models.Project
	if err := r.db.Scopes(database.Paginate(params)).
		Order("created_at DESC").
		Find(&projects).Error; err != nil {
		return nil, 0, err
	}
	return projects, total, nil
}

// Updates applies the given column values to a project row
func (r *GormProjectRepository) Updates(id uint64, fields map[string]interface{}) error {
	return r.db.Model(&models.Project{}).Where("projectid = ?", id).Updates(fields).Error
}

// Delete hard-deletes a project and reports how many rows were removed
func (r *GormProjectRepository) Delete(id uint64) (int64, error) {
	res := r.db.Delete(&models.Project{}, id)
	return res.RowsAffected, res.Error
}
