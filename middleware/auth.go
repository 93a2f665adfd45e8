package middleware

import (
	"context"
	"errors"
	"strings"

	"blog-cms/helper"
	"blog-cms/models"
	"blog-cms/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TokenCookie is the cookie the token travels in after register or login.
const TokenCookie = "token"

// UserLookup resolves the current state of a user. services.AuthService
// satisfies it.
type UserLookup interface {
	GetUser(ctx context.Context, id string) (*models.User, error)
}

// Mediator decides whether a request may reach a guarded handler.
type Mediator struct {
	tokens services.TokenService
	users  UserLookup
	Helper *helper.HTTPHelper
	log    *zap.Logger
}

func NewMediator(tokens services.TokenService, users UserLookup, h *helper.HTTPHelper, log *zap.Logger) *Mediator {
	return &Mediator{
		tokens: tokens,
		users:  users,
		Helper: h,
		log:    log,
	}
}

// Authenticated rejects requests without a valid token for an existing
// user. The user is read fresh from the store on every request so deletions
// and role changes take effect before the token expires. The id and role
// are stored under helper.UserIDKey and helper.UserRoleKey.
func (m *Mediator) Authenticated() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractToken(c)
		if tokenString == "" {
			m.Helper.AbortWithError(c, models.ErrUnauthenticated)
			return
		}

		userID, err := m.tokens.Verify(tokenString)
		if err != nil {
			m.log.Debug("token rejected",
				zap.String("request_id", c.GetString(helper.RequestIDKey)),
				zap.Error(err),
			)
			m.Helper.AbortWithError(c, models.ErrUnauthenticated)
			return
		}

		user, err := m.users.GetUser(c.Request.Context(), userID)
		if err != nil {
			if errors.Is(err, models.ErrUserNotFound) || errors.Is(err, models.ErrInvalidID) {
				m.Helper.AbortWithError(c, models.ErrUnauthenticated)
				return
			}
			m.Helper.AbortWithError(c, err)
			return
		}

		c.Set(helper.UserIDKey, user.ID)
		c.Set(helper.UserRoleKey, user.Role)
		c.Next()
	}
}

// RequireRole must run after Authenticated.
func (m *Mediator) RequireRole(roles ...models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		value, exists := c.Get(helper.UserRoleKey)
		role, ok := value.(models.UserRole)
		if !exists || !ok {
			m.Helper.AbortWithError(c, models.ErrUnauthenticated)
			return
		}

		if !models.IsAuthorized(role, roles...) {
			m.Helper.AbortWithError(c, models.ErrForbidden)
			return
		}

		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	if cookie, err := c.Cookie(TokenCookie); err == nil && cookie != "" {
		return cookie
	}

	authHeader := c.GetHeader("Authorization")
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader {
		return ""
	}
	return strings.TrimSpace(tokenString)
}
