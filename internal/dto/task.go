package dto

import (
	"time"

	"github.com/takumi-ao/project-tracker-api/internal/models"
)

// TaskDTO represents a task in API responses
type TaskDTO struct {
	ID            uint64            `json:"id"`
	ProjectID     uint64            `json:"project_id"`
	Description   string            `json:"description"`
	Status        models.TaskStatus `json:"status"`
	CreatedDate   time.Time         `json:"created_date"`
	LastUpdatedOn time.Time         `json:"last_updated_on"`
	IsDeleted     bool              `json:"isDeleted"`
}

// ToTaskDTO converts a Task model to TaskDTO
func ToTaskDTO(task models.Task) TaskDTO {
	return TaskDTO{
		ID:            task.ID,
		ProjectID:     task.ProjectID,
		Description:   task.Description,
		Status:        task.Status,
		CreatedDate:   task.CreatedAt,
		LastUpdatedOn: task.UpdatedAt,
		IsDeleted:     task.IsDeleted,
	}
}
