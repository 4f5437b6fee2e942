package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireRole allows the request through only when the authenticated
// principal carries one of the given roles. Runs after AuthRequired.
func RequireRole(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]bool)
	for _, r := range roles {
		allowed[r] = true
	}
	return func(c *gin.Context) {
		rolesVal, exists := c.Get(CtxRoles)
		if !exists {
			abortWithStatus(c, http.StatusUnauthorized, "Unauthorized")
			return
		}
		principalRoles, ok := rolesVal.([]string)
		if !ok {
			abortWithStatus(c, http.StatusUnauthorized, "Unauthorized")
			return
		}
		for _, r := range principalRoles {
			if allowed[r] {
				c.Next()
				return
			}
		}
		abortWithStatus(c, http.StatusForbidden, "Access denied")
	}
}
