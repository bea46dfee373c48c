package models

import (
	"time"
)

type Project struct {
	ID          uint64    `gorm:"primarykey" json:"id"`
	Title       string    `gorm:"type:varchar(255);not null" json:"title"`
	CreatedByID uint64    `gorm:"not null;index" json:"created_by_id"`
	CreatedAt   time.Time `json:"created_date"`
	UpdatedAt   time.Time `json:"last_updated_on"`
	Lifecycle

	// Relations
	CreatedBy User   `gorm:"foreignKey:CreatedByID" json:"created_by,omitempty"`
	Tasks     []Task `gorm:"foreignKey:ProjectID" json:"tasks,omitempty"`
}
