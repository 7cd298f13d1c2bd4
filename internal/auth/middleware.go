package auth

import (
	"errors"
	"net/http"
	"strings"

	"client-portal-backend/internal/engagement"
	apperrors "client-portal-backend/internal/errors"
	"client-portal-backend/internal/logger"
	"client-portal-backend/internal/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const callerKey = "caller"

// AuthMiddleware resolves bearer tokens to active caller identities
type AuthMiddleware struct {
	validator *TokenValidator
	users     repository.UserRepositoryInterface
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(secret string, users repository.UserRepositoryInterface) *AuthMiddleware {
	return &AuthMiddleware{validator: NewTokenValidator(secret), users: users}
}

// RequireAuth validates the bearer token, loads the caller and sets it on the context.
// A missing token is rejected with 401; a token that is present but unusable with 403.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abort(c, http.StatusUnauthorized, apperrors.ErrMissingToken.Error(), "")
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			abort(c, http.StatusForbidden, apperrors.ErrInvalidToken.Error(), "")
			return
		}

		claims, err := m.validator.Validate(tokenString)
		if err != nil {
			logger.WithContext(c.Request.Context()).WithError(err).Debug("rejected bearer token")
			abort(c, http.StatusForbidden, apperrors.ErrInvalidToken.Error(), "")
			return
		}

		userID, err := claims.CallerID()
		if err != nil {
			abort(c, http.StatusForbidden, apperrors.ErrInvalidToken.Error(), "")
			return
		}

		user, err := m.users.GetByID(c.Request.Context(), userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				abort(c, http.StatusForbidden, apperrors.ErrInactiveUser.Error(), "")
				return
			}
			logger.WithContext(c.Request.Context()).WithError(err).Error("failed to resolve caller")
			abort(c, http.StatusInternalServerError, "internal server error", "")
			return
		}
		if !user.IsActive {
			abort(c, http.StatusForbidden, apperrors.ErrInactiveUser.Error(), "")
			return
		}

		SetCaller(c, engagement.Caller{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
			Role:  user.Role,
		})
		c.Next()
	}
}

// RequireAdmin must run after RequireAuth and admits only global admins
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		caller, err := GetCaller(c)
		if err != nil {
			abort(c, http.StatusUnauthorized, err.Error(), "")
			return
		}
		if !caller.IsAdmin() {
			abort(c, http.StatusForbidden, apperrors.ErrAdminRequired.Message, apperrors.ErrAdminRequired.Code)
			return
		}
		c.Next()
	}
}

// SetCaller stores the caller on the gin context and its id on the request
// context so service-level log lines carry it.
func SetCaller(c *gin.Context, caller engagement.Caller) {
	c.Set(callerKey, caller)
	if c.Request != nil {
		ctx := logger.ContextWithCallerID(c.Request.Context(), caller.ID.String())
		c.Request = c.Request.WithContext(ctx)
	}
}

// GetCaller is a helper function to extract the authenticated caller from context
func GetCaller(c *gin.Context) (engagement.Caller, error) {
	value, exists := c.Get(callerKey)
	if !exists {
		return engagement.Caller{}, apperrors.ErrMissingCaller
	}
	caller, ok := value.(engagement.Caller)
	if !ok {
		return engagement.Caller{}, apperrors.ErrMissingCaller
	}
	return caller, nil
}

func abort(c *gin.Context, status int, message, code string) {
	body := gin.H{"status": "error", "message": message}
	if code != "" {
		body["code"] = code
	}
	c.AbortWithStatusJSON(status, body)
}
