package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/takumi-ao/project-tracker-api/internal/models"
	"github.com/takumi-ao/project-tracker-api/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrPasswordMismatch     = errors.New("passwords do not match")
	ErrEmailTaken           = errors.New("email already exists")
	ErrUsernameTaken        = errors.New("username already exists")
	ErrCredentialsRequired  = errors.New("email and password are required")
	ErrEmailNotFound        = errors.New("email not found")
	ErrInvalidPassword      = errors.New("invalid password")
	ErrUserNotFound         = errors.New("user not found")
	ErrFailedToHashPassword = errors.New("failed to hash password")
	ErrFailedToCreateUser   = errors.New("failed to create user")
)

// MissingFieldsError reports every absent required field at once.
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return "Missing fields: " + strings.Join(e.Fields, ", ")
}

// AuthService handles signup, sign-in and token resolution.
type AuthService struct {
	userRepo  repository.UserRepository
	tokenRepo repository.TokenRepository
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repository.UserRepository, tokenRepo repository.TokenRepository) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		tokenRepo: tokenRepo,
	}
}

// SignupInput represents the required information to create a new user.
type SignupInput struct {
	FirstName       string
	Email           string
	Password        string
	ConfirmPassword string
}

// Signup creates a new user. The login handle is the email when one is
// given, otherwise the first name.
func (s *AuthService) Signup(input SignupInput) (*models.User, error) {
	firstName := strings.TrimSpace(input.FirstName)
	email := strings.TrimSpace(input.Email)

	var missing []string
	if firstName == "" {
		missing = append(missing, "first_name")
	}
	if input.Password == "" {
		missing = append(missing, "password")
	}
	if input.ConfirmPassword == "" {
		missing = append(missing, "confirm_password")
	}
	if len(missing) > 0 {
		return nil, &MissingFieldsError{Fields: missing}
	}

	if input.Password != input.ConfirmPassword {
		return nil, ErrPasswordMismatch
	}

	if email != "" {
		if _, err := s.userRepo.FindByEmail(email); err == nil {
			return nil, ErrEmailTaken
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to check email: %w", err)
		}
	}

	username := email
	if username == "" {
		username = firstName
	}

	if _, err := s.userRepo.FindByUsername(username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, ErrFailedToHashPassword
	}

	user := &models.User{
		Email:        email,
		Username:     username,
		FirstName:    firstName,
		PasswordHash: string(hashedPassword),
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, ErrFailedToCreateUser
	}

	return user, nil
}

// SignInInput holds the credentials for authentication.
type SignInInput struct {
	Email    string
	Password string
}

// SignIn verifies credentials and returns the user's bearer token. Token
// issuance is get-or-create, so repeated sign-ins return the same value.
func (s *AuthService) SignIn(input SignInInput) (*models.AuthToken, error) {
	if input.Email == "" || input.Password == "" {
		return nil, ErrCredentialsRequired
	}

	user, err := s.userRepo.FindByEmail(input.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmailNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, ErrInvalidPassword
	}

	token, err := s.tokenRepo.GetOrCreate(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return token, nil
}

// GetUser retrieves a user by ID.
func (s *AuthService) GetUser(id uint64) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return user, nil
}
