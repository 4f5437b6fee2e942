package middleware

import (
	"net/http"
	"strings"
	"time"

	"blogapi/logger"
	"blogapi/web/entity"
	"blogapi/web/service"

	"github.com/gin-gonic/gin"
)

// Context keys populated by AuthRequired.
const (
	CtxUsername = "username"
	CtxRoles    = "roles"
)

// AuthRequired verifies the bearer token and loads the principal into the
// request context. Verification failures never grant partial trust; the
// request is aborted before any handler runs.
func AuthRequired(tokens *service.TokenService, auth *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		subject, err := tokens.Verify(bearerToken(c))
		if err != nil {
			logger.Debugf("token rejected on %s: %v", c.Request.URL.Path, err)
			abortWithStatus(c, http.StatusUnauthorized, "Unauthorized")
			return
		}

		user, err := auth.GetPrincipal(subject)
		if err != nil {
			// Valid signature but the subject no longer exists.
			logger.Debugf("principal %q not resolvable: %v", subject, err)
			abortWithStatus(c, http.StatusUnauthorized, "Unauthorized")
			return
		}

		roles := make([]string, 0, len(user.Roles))
		for _, role := range user.Roles {
			roles = append(roles, role.Name)
		}
		c.Set(CtxUsername, user.Username)
		c.Set(CtxRoles, roles)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}

func abortWithStatus(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, entity.ErrorDetails{
		Timestamp: time.Now(),
		Message:   msg,
		Path:      c.Request.URL.Path,
	})
}
