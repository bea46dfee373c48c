package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/takumi-ao/project-tracker-api/internal/models"
	"github.com/takumi-ao/project-tracker-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrTaskNotFound        = errors.New("task not found")
	ErrDescriptionRequired = errors.New("task description is required")
)

// TaskService handles task business logic. A task's owner is transitive:
// every check goes through the parent project's creator.
type TaskService struct {
	taskRepo    repository.TaskRepository
	projectRepo repository.ProjectRepository
}

// NewTaskService creates a new TaskService.
func NewTaskService(taskRepo repository.TaskRepository, projectRepo repository.ProjectRepository) *TaskService {
	return &TaskService{
		taskRepo:    taskRepo,
		projectRepo: projectRepo,
	}
}

// Add creates a task under the caller's project with status not_done.
// Archived projects still accept tasks; archiving hides, it does not lock.
func (s *TaskService) Add(ownerID, projectID uint64, description string) (*models.Task, error) {
	if _, err := s.projectRepo.FindByIDForOwner(projectID, ownerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to find project: %w", err)
	}

	if strings.TrimSpace(description) == "" {
		return nil, ErrDescriptionRequired
	}

	task := &models.Task{
		ProjectID:   projectID,
		Description: description,
		Status:      models.TaskStatusNotDone,
	}

	if err := s.taskRepo.Create(task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return task, nil
}

// ToggleStatus flips the task between done and not_done and bumps
// last_updated_on.
func (s *TaskService) ToggleStatus(ownerID, taskID uint64) (*models.Task, error) {
	task, err := s.findOwned(ownerID, taskID)
	if err != nil {
		return nil, err
	}

	task.Status = task.Status.Toggle()

	if err := s.taskRepo.Update(task); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	return task, nil
}

// UpdateDescription replaces the description when the new value is
// non-empty. An empty value silently keeps the old one; the write still
// happens, so last_updated_on is bumped either way.
func (s *TaskService) UpdateDescription(ownerID, taskID uint64, description string) (*models.Task, error) {
	task, err := s.findOwned(ownerID, taskID)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(description) != "" {
		task.Description = description
	}

	if err := s.taskRepo.Update(task); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	return task, nil
}

// Archive soft deletes a task. Idempotent.
func (s *TaskService) Archive(ownerID, taskID uint64) error {
	return s.setArchived(ownerID, taskID, true)
}

// Restore clears a task's soft-delete flag. Idempotent.
func (s *TaskService) Restore(ownerID, taskID uint64) error {
	return s.setArchived(ownerID, taskID, false)
}

func (s *TaskService) setArchived(ownerID, taskID uint64, archived bool) error {
	task, err := s.findOwned(ownerID, taskID)
	if err != nil {
		return err
	}

	if archived {
		task.Archive()
	} else {
		task.Restore()
	}

	if err := s.taskRepo.Update(task); err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}

	return nil
}

// HardDelete removes the task row, independent of the parent project's
// soft-delete state.
func (s *TaskService) HardDelete(ownerID, taskID uint64) error {
	task, err := s.findOwned(ownerID, taskID)
	if err != nil {
		return err
	}

	if err := s.taskRepo.Delete(task.ID); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	return nil
}

// findOwned fetches a task and enforces the transitive ownership check via
// the parent project. Non-owners get not-found to avoid leaking existence.
func (s *TaskService) findOwned(ownerID, taskID uint64) (*models.Task, error) {
	task, err := s.taskRepo.FindByID(taskID, "Project")
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	if task.Project.CreatedByID != ownerID {
		return nil, ErrTaskNotFound
	}

	return task, nil
}
