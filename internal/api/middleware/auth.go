package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"planeacion/backend/internal/model"
	"planeacion/backend/internal/service"
	"planeacion/backend/pkg/response"
)

const (
	currentUserKey = "current_user"
	// AuthCookieName is the cookie the front end's session route sets.
	AuthCookieName = "auth_token"
)

// Auth resolves the bearer token to an active user and stores it on the
// context. The Authorization header wins; the auth_token cookie is the
// fallback.
func Auth(authSvc service.AuthService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)

		user, err := authSvc.Authenticate(c.Request.Context(), token)
		if err != nil {
			c.Abort()
			response.FromError(c, logger, err)
			return
		}

		c.Set(currentUserKey, user)
		c.Set("user_id", user.ID)

		c.Next()
	}
}

// CurrentUser returns the user stored by Auth.
func CurrentUser(c *gin.Context) (*model.Usuario, bool) {
	v, exists := c.Get(currentUserKey)
	if !exists {
		return nil, false
	}
	user, ok := v.(*model.Usuario)
	return user, ok && user != nil
}

// SetCurrentUser stores user as the authenticated caller.
func SetCurrentUser(c *gin.Context, user *model.Usuario) {
	c.Set(currentUserKey, user)
}

func bearerToken(c *gin.Context) string {
	if header := c.GetHeader("Authorization"); header != "" {
		parts := strings.SplitN(header, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return strings.TrimSpace(parts[1])
		}
		return ""
	}
	if cookie, err := c.Cookie(AuthCookieName); err == nil {
		return cookie
	}
	return ""
}
