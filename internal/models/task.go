package models

import (
	"time"
)

type TaskStatus string

const (
	TaskStatusDone    TaskStatus = "done"
	TaskStatusNotDone TaskStatus = "not_done"
)

// Toggle returns the opposite status value.
func (s TaskStatus) Toggle() TaskStatus {
	if s == TaskStatusDone {
		return TaskStatusNotDone
	}
	return TaskStatusDone
}

// Task belongs to exactly one project. It has no owner field of its own;
// authorization always goes through the parent project's creator.
type Task struct {
	ID          uint64     `gorm:"primarykey" json:"id"`
	ProjectID   uint64     `gorm:"not null;index" json:"project_id"`
	Description string     `gorm:"type:varchar(255)" json:"description"`
	Status      TaskStatus `gorm:"type:varchar(25);not null;default:'not_done'" json:"status"`
	CreatedAt   time.Time  `json:"created_date"`
	UpdatedAt   time.Time  `json:"last_updated_on"`
	Lifecycle

	// Relations
	Project Project `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
}
