package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/takumi-ao/project-tracker-api/internal/constants"
	"github.com/takumi-ao/project-tracker-api/internal/database"
	apierrors "github.com/takumi-ao/project-tracker-api/internal/errors"
	"github.com/takumi-ao/project-tracker-api/internal/models"
)

// RequireAuth resolves the bearer token on the request to a user. Both
// "Token <key>" and "Bearer <key>" schemes are accepted.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		key, ok := extractTokenKey(c.GetHeader("Authorization"))
		if !ok {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		var token models.AuthToken
		if err := database.GetDB().Where("token_key = ?", key).First(&token).Error; err != nil {
			apierrors.Unauthorized(c, "Invalid token")
			c.Abort()
			return
		}

		// Store user ID in context for easy access in handlers
		c.Set(constants.ContextKeyUserID, token.UserID)
		c.Next()
	}
}

// GetUserID retrieves the current user ID from context
func GetUserID(c *gin.Context) (uint64, bool) {
	userID, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return 0, false
	}

	switch v := userID.(type) {
	case uint64:
		return v, true
	case uint:
		return uint64(v), true
	case int:
		if v < 0 {
			return 0, false
		}
		return uint64(v), true
	default:
		return 0, false
	}
}

func extractTokenKey(header string) (string, bool) {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 {
		return "", false
	}

	scheme := parts[0]
	if !strings.EqualFold(scheme, "Token") && !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}

	key := strings.TrimSpace(parts[1])
	if key == "" {
		return "", false
	}

	return key, true
}
