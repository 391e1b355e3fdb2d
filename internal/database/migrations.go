package database

import (
	"fmt"

	"gorm.io/gorm"
)

// AddIndexes adds performance-critical indexes to the database.
// Only runs against Postgres; other drivers rely on AutoMigrate indexes.
func AddIndexes(db *gorm.DB) error {
	indexes := []struct {
		table   string
		name    string
		columns string
	}{
		// Project indexes for the creator-scoped listings and dashboards
		{"projects", "idx_projects_projectcreator", "projectcreator"},
		{"projects", "idx_projects_user_id", "user_id"},
		{"projects", "idx_projects_status", "status"},
		{"projects", "idx_projects_deadline", "deadline"},

		// Task indexes for assignee-scoped listing and project grouping
		{"tasks", "idx_tasks_task_assgn_to", "task_assgn_to"},
		{"tasks", "idx_tasks_project_id", "project_id"},
		{"tasks", "idx_tasks_created_by_id", "created_by_id"},
		{"tasks", "idx_tasks_status", "status"},
	}

	for _, idx := range indexes {
		// Check if index already exists
		var count int64
		err := db.Raw(`
			SELECT COUNT(*)
			FROM pg_indexes
			WHERE tablename = ? AND indexname = ?
		`, idx.table, idx.name).Count(&count).Error

		if err != nil {
			return fmt.Errorf("failed to check index %s: %w", idx.name, err)
		}

		if count > 0 {
			continue
		}

		sql := fmt.Sprintf("CREATE INDEX %s ON %s (%s)", idx.name, idx.table, idx.columns)
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}
	}

	return nil
}
