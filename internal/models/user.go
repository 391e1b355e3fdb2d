package models

import "time"

type User struct {
	ID           uint64    `gorm:"primarykey" json:"id"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Username     string    `gorm:"type:varchar(255)" json:"username"`
	PasswordHash *string   `gorm:"column:password;type:varchar(255)" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Relations
	Projects []Project `gorm:"foreignKey:UserID" json:"-"`
	Tasks    []Task    `gorm:"foreignKey:CreatedByID" json:"-"`
}
