package dto

import (
	"time"

	"github.com/takumi-ao/project-tracker-api/internal/models"
)

// ProjectDTO represents a project in API responses
type ProjectDTO struct {
	ID            uint64    `json:"id"`
	Title         string    `json:"title"`
	CreatedDate   time.Time `json:"created_date"`
	LastUpdatedOn time.Time `json:"last_updated_on"`
	IsDeleted     bool      `json:"isDeleted"`
}

// ProjectDetailDTO represents a project with its task collections. Active
// and archived tasks are materialized separately so the client never has to
// filter.
type ProjectDetailDTO struct {
	ProjectDTO
	Tasks        []TaskDTO `json:"tasks"`
	DeletedTasks []TaskDTO `json:"deleted_tasks"`
}

// ToProjectDTO converts a Project model to ProjectDTO
func ToProjectDTO(project models.Project) ProjectDTO {
	return ProjectDTO{
		ID:            project.ID,
		Title:         project.Title,
		CreatedDate:   project.CreatedAt,
		LastUpdatedOn: project.UpdatedAt,
		IsDeleted:     project.IsDeleted,
	}
}

// ToProjectListDTO converts a slice of projects to DTOs
func ToProjectListDTO(projects []models.Project) []ProjectDTO {
	dtos := make([]ProjectDTO, len(projects))
	for i, project := range projects {
		dtos[i] = ToProjectDTO(project)
	}
	return dtos
}

// ToProjectDetailDTO converts a project with preloaded tasks to a detail DTO
func ToProjectDetailDTO(project models.Project) ProjectDetailDTO {
	tasks := make([]TaskDTO, 0, len(project.Tasks))
	deletedTasks := make([]TaskDTO, 0)

	for _, task := range project.Tasks {
		if task.Archived() {
			deletedTasks = append(deletedTasks, ToTaskDTO(task))
			continue
		}
		tasks = append(tasks, ToTaskDTO(task))
	}

	return ProjectDetailDTO{
		ProjectDTO:   ToProjectDTO(project),
		Tasks:        tasks,
		DeletedTasks: deletedTasks,
	}
}
