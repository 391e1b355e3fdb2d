package models

// Status is the lifecycle state shared by projects and tasks.
type Status string

const (
	StatusActive     Status = "ACTIVE"
	StatusInactive   Status = "INACTIVE"
	StatusArchived   Status = "ARCHIVED"
	StatusInProgress Status = "IN_PROGRESS"
	StatusCompleted  Status = "COMPLETED"
	StatusCancelled  Status = "CANCELLED"
	StatusDeleted    Status = "DELETED"
)

// Valid reports whether s is a member of the status enumeration.
func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusInactive, StatusArchived, StatusInProgress,
		StatusCompleted, StatusCancelled, StatusDeleted:
		return true
	}
	return false
}
