package delivery

import (
	"errors"
	"net/http"
	"strings"

	authdomain "homehub-backend/internal/auth/domain"
	"homehub-backend/internal/auth/usecase"

	"github.com/gin-gonic/gin"
)

// Context keys populated by AuthMiddleware for downstream handlers.
const (
	CtxUserID    = "userID"
	CtxUserEmail = "userEmail"
	CtxUserRole  = "userRole"
)

// AuthMiddleware guards a route group with bearer token verification. A
// missing token is 401; a token that is present but rejected is 403, except
// for revoked tokens which come back 401 (the blacklist hit reads as "your
// session is gone", the same as having no session at all).
func AuthMiddleware(authUsecase usecase.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := extractBearerToken(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "No token provided"})
			c.Abort()
			return
		}

		claims, err := authUsecase.ValidateToken(token)
		if err != nil {
			status, message := verificationFailure(err)
			c.JSON(status, gin.H{"success": false, "message": message})
			c.Abort()
			return
		}

		c.Set(CtxUserID, claims.UserID)
		c.Set(CtxUserEmail, claims.Email)
		c.Set(CtxUserRole, string(claims.Role))
		c.Next()
	}
}

// RequireRoles allows only the listed roles past. It must run after
// AuthMiddleware; a request with no identity in context is rejected rather
// than assumed authenticated.
func RequireRoles(roles ...authdomain.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get(CtxUserRole)
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthorized"})
			c.Abort()
			return
		}

		for _, allowed := range roles {
			if role == string(allowed) {
				c.Next()
				return
			}
		}

		c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "Forbidden - Insufficient permissions"})
		c.Abort()
	}
}

func extractBearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", false
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

func verificationFailure(err error) (int, string) {
	switch {
	case errors.Is(err, usecase.ErrMissingToken):
		return http.StatusUnauthorized, "No token provided"
	case errors.Is(err, usecase.ErrTokenRevoked):
		return http.StatusUnauthorized, "Token has been invalidated"
	case errors.Is(err, usecase.ErrTokenExpired), errors.Is(err, usecase.ErrInvalidToken):
		return http.StatusForbidden, "Invalid token"
	default:
		// Storage-layer failure during the blacklist lookup
		return http.StatusInternalServerError, "Error verifying token"
	}
}
