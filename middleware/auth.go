package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"sparkle/utils"

	"github.com/gin-gonic/gin"
)

// Context keys set by the auth middleware.
const (
	ContextSubject = "subject"
	ContextRole    = "role"
)

func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
	return token, token != ""
}

// identify resolves the caller from the static admin token or a signed JWT.
func identify(token, adminToken string) (utils.Claims, bool) {
	if adminToken != "" && subtle.ConstantTimeCompare([]byte(token), []byte(adminToken)) == 1 {
		return utils.Claims{Subject: utils.RoleAdmin, Role: utils.RoleAdmin}, true
	}
	claims, err := utils.ParseClaims(token)
	if err != nil {
		return utils.Claims{}, false
	}
	return claims, true
}

// JWTAuthMiddleware admits callers whose role is one of roles. The static
// admin token always authenticates as an admin.
func JWTAuthMiddleware(adminToken string, roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, utils.ErrorResponse{
				Error:   "unauthorized",
				Message: "Missing or invalid Authorization header",
			})
			return
		}

		claims, ok := identify(token, adminToken)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, utils.ErrorResponse{
				Error:   "unauthorized",
				Message: "Invalid or expired token",
			})
			return
		}

		if !hasRole(claims.Role, roles) {
			c.AbortWithStatusJSON(http.StatusForbidden, utils.ErrorResponse{
				Error:   "forbidden",
				Message: "Role " + claims.Role + " may not access this resource",
			})
			return
		}

		c.Set(ContextSubject, claims.Subject)
		c.Set(ContextRole, claims.Role)
		c.Next()
	}
}

// OptionalAuthMiddleware identifies the caller when a bearer token is sent
// and lets anonymous requests through. A token that does not verify is
// rejected rather than silently ignored.
func OptionalAuthMiddleware(adminToken string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			c.Next()
			return
		}

		claims, ok := identify(token, adminToken)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, utils.ErrorResponse{
				Error:   "unauthorized",
				Message: "Invalid or expired token",
			})
			return
		}

		c.Set(ContextSubject, claims.Subject)
		c.Set(ContextRole, claims.Role)
		c.Next()
	}
}
