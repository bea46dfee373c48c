package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/takumi-ao/project-tracker-api/internal/models"
	"github.com/takumi-ao/project-tracker-api/internal/repository"
	"gorm.io/gorm"
)

// ProfileService handles the optional per-user profile and its git PAC.
type ProfileService struct {
	userRepo    repository.UserRepository
	profileRepo repository.ProfileRepository
}

// NewProfileService creates a new ProfileService.
func NewProfileService(userRepo repository.UserRepository, profileRepo repository.ProfileRepository) *ProfileService {
	return &ProfileService{
		userRepo:    userRepo,
		profileRepo: profileRepo,
	}
}

// ProfileView is the resolved profile state for a user. GitPAC is the empty
// string when no profile row exists yet.
type ProfileView struct {
	Username string
	GitPAC   string
}

// Get resolves the user's profile once, treating an absent row as an empty PAC.
func (s *ProfileService) Get(userID uint64) (*ProfileView, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	view := &ProfileView{Username: user.Username}

	profile, err := s.profileRepo.FindByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return view, nil
		}
		return nil, fmt.Errorf("failed to find profile: %w", err)
	}

	view.GitPAC = profile.GitPAC
	return view, nil
}

// UpdatePAC overwrites the user's git PAC, creating the profile row on first
// write. An empty string is a valid explicit value.
func (s *ProfileService) UpdatePAC(userID uint64, gitPAC string) (string, error) {
	gitPAC = strings.TrimSpace(gitPAC)

	profile, err := s.profileRepo.FindByUserID(userID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return "", fmt.Errorf("failed to find profile: %w", err)
		}
		profile = &models.Profile{UserID: userID}
	}

	profile.GitPAC = gitPAC

	if err := s.profileRepo.Save(profile); err != nil {
		return "", fmt.Errorf("failed to save profile: %w", err)
	}

	return profile.GitPAC, nil
}
