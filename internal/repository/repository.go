package repository

import (
	"github.com/takumi-ao/project-tracker-api/internal/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByEmail finds a user by email
	FindByEmail(email string) (*models.User, error)

	// FindByUsername finds a user by username (login handle)
	FindByUsername(username string) (*models.User, error)
}

// TokenRepository defines the interface for auth token data access
type TokenRepository interface {
	// GetOrCreate returns the user's token, creating one if absent.
	// Issuance is atomic under the user uniqueness constraint, so two
	// concurrent sign-ins resolve to the same token.
	GetOrCreate(userID uint64) (*models.AuthToken, error)

	// FindByKey finds a token by its opaque key
	FindByKey(key string) (*models.AuthToken, error)
}

// ProfileRepository defines the interface for profile data access
type ProfileRepository interface {
	// FindByUserID finds the profile belonging to a user
	FindByUserID(userID uint64) (*models.Profile, error)

	// Save creates or updates a profile
	Save(profile *models.Profile) error
}

// ProjectRepository defines the interface for project data access
type ProjectRepository interface {
	// Create creates a new project
	Create(project *models.Project) error

	// FindByID finds a project by ID with optional preloading
	FindByID(id uint64, preload ...string) (*models.Project, error)

	// FindByIDForOwner finds a project by ID scoped to its owner
	FindByIDForOwner(id, ownerID uint64, preload ...string) (*models.Project, error)

	// ListByOwner lists all projects owned by a user, archived ones included
	ListByOwner(ownerID uint64) ([]models.Project, error)

	// Update updates a project
	Update(project *models.Project) error

	// Delete removes a project row and all of its tasks
	Delete(id uint64) error
}

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// Create creates a new task
	Create(task *models.Task) error

	// FindByID finds a task by ID with optional preloading
	FindByID(id uint64, preload ...string) (*models.Task, error)

	// Update updates a task
	Update(task *models.Task) error

	// Delete removes a task row
	Delete(id uint64) error
}
