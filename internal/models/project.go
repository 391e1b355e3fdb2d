package models

import "time"

type Project struct {
	ID          uint64     `gorm:"column:projectid;primarykey" json:"projectid"`
	Name        string     `gorm:"column:projectname;type:varchar(255);not null" json:"projectname"`
	Description *string    `gorm:"type:text" json:"description"`
	Deadline    *time.Time `json:"deadline"`
	// Creator holds the creating user's username for display and for the
	// creator-scoped listings. It is stored independently of UserID and the
	// two can drift if a username changes.
	Creator   *string   `gorm:"column:projectcreator;type:varchar(255)" json:"projectcreator"`
	UserID    uint64    `gorm:"not null" json:"user_id"`
	Status    Status    `gorm:"type:varchar(20);not null;default:'ACTIVE'" json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	User  User   `gorm:"foreignKey:UserID" json:"-"`
	Tasks []Task `gorm:"foreignKey:ProjectID" json:"-"`
}
