package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	apierrors "github.com/takumi-ao/project-tracker-api/internal/errors"
	"github.com/takumi-ao/project-tracker-api/internal/services"
)

// AuthHandler coordinates authentication-related HTTP handlers.
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Signup registers a new user. No token is issued here; a separate sign-in
// is required.
func (h *AuthHandler) Signup(c *gin.Context) {
	type SignupRequest struct {
		FirstName       string `json:"first_name"`
		Email           string `json:"email"`
		Password        string `json:"password"`
		ConfirmPassword string `json:"confirm_password"`
	}

	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	_, err := h.authService.Signup(services.SignupInput{
		FirstName:       req.FirstName,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		respondAuthError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Account created successfully",
	})
}

// SignIn authenticates a user and returns their bearer token.
func (h *AuthHandler) SignIn(c *gin.Context) {
	type SignInRequest struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	var req SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	token, err := h.authService.SignIn(services.SignInInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		respondAuthError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":   token.Key,
		"message": "Login successful!",
	})
}

// ValidateToken is a protected probe; reaching it means the token resolved
// to a user.
func (h *AuthHandler) ValidateToken(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Token is valid.",
	})
}

func respondAuthError(c *gin.Context, err error) {
	var missing *services.MissingFieldsError
	if errors.As(err, &missing) {
		apierrors.BadRequestWithDetails(c, missing.Error(), missing.Fields)
		return
	}

	switch {
	case errors.Is(err, services.ErrPasswordMismatch):
		apierrors.BadRequest(c, "Passwords do not match")
	case errors.Is(err, services.ErrCredentialsRequired):
		apierrors.BadRequest(c, "Please provide both email and password.")
	case errors.Is(err, services.ErrEmailTaken):
		apierrors.Conflict(c, "Email already exists")
	case errors.Is(err, services.ErrUsernameTaken):
		apierrors.Conflict(c, "Username already exists")
	case errors.Is(err, services.ErrEmailNotFound):
		apierrors.NotFound(c, "Email not found.")
	case errors.Is(err, services.ErrInvalidPassword):
		apierrors.Unauthorized(c, "Invalid password.")
	case errors.Is(err, services.ErrUserNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrFailedToHashPassword),
		errors.Is(err, services.ErrFailedToCreateUser):
		apierrors.InternalError(c, err.Error())
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}
