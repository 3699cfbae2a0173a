package middleware

import (
	"sparkle/utils"

	"github.com/gin-gonic/gin"
)

// AdminAuthMiddleware guards the admin portal routes.
func AdminAuthMiddleware(adminToken string) gin.HandlerFunc {
	return JWTAuthMiddleware(adminToken, utils.RoleAdmin)
}
