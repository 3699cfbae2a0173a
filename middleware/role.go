package middleware

import "github.com/gin-gonic/gin"

func hasRole(role string, allowed []string) bool {
	for _, r := range allowed {
		if r == role {
			return true
		}
	}
	return false
}

// CurrentSubject returns the authenticated subject, or "" on public routes.
func CurrentSubject(c *gin.Context) string {
	return c.GetString(ContextSubject)
}

// CurrentRole returns the authenticated role, or "" on public routes.
func CurrentRole(c *gin.Context) string {
	return c.GetString(ContextRole)
}
