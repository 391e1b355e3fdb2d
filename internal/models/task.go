package models

import "time"

type Task struct {
	ID          uint64     `gorm:"column:taskid;primarykey" json:"taskid"`
	Name        string     `gorm:"type:varchar(255);not null" json:"name"`
	Description string     `gorm:"type:text" json:"description"`
	AssignedBy  string     `gorm:"column:task_assgn_by;type:varchar(255);not null" json:"task_assgn_by"`
	// Assignment is by username string, not by user ID; a task can keep
	// referencing a renamed or deleted username.
	AssignedTo  *string    `gorm:"column:task_assgn_to;type:varchar(255)" json:"task_assgn_to"`
	Deadline    *time.Time `json:"deadline"`
	CreatedByID uint64     `gorm:"not null" json:"createdById"`
	ProjectID   uint64     `gorm:"not null" json:"projectId"`
	Status      Status     `gorm:"type:varchar(20);not null;default:'ACTIVE'" json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`

	// Relations
	CreatedBy User    `gorm:"foreignKey:CreatedByID" json:"-"`
	Project   Project `gorm:"foreignKey:ProjectID" json:"-"`
}
