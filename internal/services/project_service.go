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
	ErrProjectNotFound = errors.New("project not found")
	ErrTitleRequired   = errors.New("project title is required")
)

// ProjectService handles project business logic. Ownership failures are
// reported as not-found so that a project's existence never leaks to
// non-owners.
type ProjectService struct {
	projectRepo repository.ProjectRepository
}

// NewProjectService creates a new ProjectService.
func NewProjectService(projectRepo repository.ProjectRepository) *ProjectService {
	return &ProjectService{
		projectRepo: projectRepo,
	}
}

// Create creates a project owned by the caller.
func (s *ProjectService) Create(ownerID uint64, title string) (*models.Project, error) {
	if strings.TrimSpace(title) == "" {
		return nil, ErrTitleRequired
	}

	project := &models.Project{
		Title:       title,
		CreatedByID: ownerID,
	}

	if err := s.projectRepo.Create(project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	return project, nil
}

// List returns all of the caller's projects, archived ones included.
func (s *ProjectService) List(ownerID uint64) ([]models.Project, error) {
	projects, err := s.projectRepo.ListByOwner(ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}

// Get returns a project with its tasks, scoped to the owner.
func (s *ProjectService) Get(ownerID, projectID uint64) (*models.Project, error) {
	project, err := s.projectRepo.FindByIDForOwner(projectID, ownerID, "Tasks")
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to find project: %w", err)
	}

	return project, nil
}

// UpdateTitle replaces the project title and bumps last_updated_on.
func (s *ProjectService) UpdateTitle(ownerID, projectID uint64, title string) (*models.Project, error) {
	project, err := s.projectRepo.FindByID(projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to find project: %w", err)
	}

	if project.CreatedByID != ownerID {
		return nil, ErrProjectNotFound
	}

	if strings.TrimSpace(title) == "" {
		return nil, ErrTitleRequired
	}

	project.Title = title

	if err := s.projectRepo.Update(project); err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}

	return project, nil
}

// Archive soft deletes a project. Idempotent.
func (s *ProjectService) Archive(ownerID, projectID uint64) error {
	return s.setArchived(ownerID, projectID, true)
}

// Restore clears a project's soft-delete flag. Idempotent.
func (s *ProjectService) Restore(ownerID, projectID uint64) error {
	return s.setArchived(ownerID, projectID, false)
}

func (s *ProjectService) setArchived(ownerID, projectID uint64, archived bool) error {
	project, err := s.projectRepo.FindByIDForOwner(projectID, ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProjectNotFound
		}
		return fmt.Errorf("failed to find project: %w", err)
	}

	if archived {
		project.Archive()
	} else {
		project.Restore()
	}

	if err := s.projectRepo.Update(project); err != nil {
		return fmt.Errorf("failed to update project: %w", err)
	}

	return nil
}

// HardDelete removes the project row and cascades to all of its tasks,
// regardless of either side's soft-delete state.
func (s *ProjectService) HardDelete(ownerID, projectID uint64) error {
	project, err := s.projectRepo.FindByIDForOwner(projectID, ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProjectNotFound
		}
		return fmt.Errorf("failed to find project: %w", err)
	}

	if err := s.projectRepo.Delete(project.ID); err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}

	return nil
}
