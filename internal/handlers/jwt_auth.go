package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/SAP-F-2025/student-service/internal/auth"
	"github.com/SAP-F-2025/student-service/internal/models"
	"github.com/SAP-F-2025/student-service/internal/repositories"
	"github.com/SAP-F-2025/student-service/internal/utils"
)

// JWTAuthMiddleware authenticates requests with locally issued bearer
// tokens and resolves the token subject to a user row.
type JWTAuthMiddleware struct {
	jwtManager *auth.Manager
	userRepo   repositories.UserRepository
	logger     utils.Logger
}

func NewJWTAuthMiddleware(jwtManager *auth.Manager, userRepo repositories.UserRepository, logger utils.Logger) *JWTAuthMiddleware {
	return &JWTAuthMiddleware{
		jwtManager: jwtManager,
		userRepo:   userRepo,
		logger:     logger,
	}
}

// unauthorized aborts with the same body for every failure mode so callers
// cannot probe which emails have accounts; the reason only reaches the logs.
func (am *JWTAuthMiddleware) unauthorized(c *gin.Context, reason string) {
	utils.FromContext(c, am.logger).Warn("authentication failed", "reason", reason)
	c.JSON(http.StatusUnauthorized, ErrorResponse{Message: "invalid or expired token"})
	c.Abort()
}

// AuthMiddleware returns a Gin middleware that enforces bearer auth.
func (am *JWTAuthMiddleware) AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			am.unauthorized(c, "authorization header missing")
			return
		}

		tokenParts := strings.Split(authHeader, " ")
		if len(tokenParts) != 2 || strings.ToLower(tokenParts[0]) != "bearer" {
			am.unauthorized(c, "invalid authorization header format")
			return
		}

		claims, err := am.jwtManager.ParseToken(tokenParts[1])
		if err != nil {
			am.unauthorized(c, err.Error())
			return
		}

		user, err := am.userRepo.GetByEmail(c.Request.Context(), claims.Subject)
		if err != nil {
			if repositories.IsNotFoundError(err) {
				am.unauthorized(c, "token subject has no user record")
			} else {
				am.unauthorized(c, "failed to resolve token subject")
			}
			return
		}

		c.Set("user", user)
		c.Set("user_id", user.ID)
		c.Set("user_email", user.Email)
		c.Set("user_role", user.Role)

		c.Next()
	}
}

// RequireRoleMiddleware checks if the authenticated user has one of the
// required roles; admins pass every gate.
func (am *JWTAuthMiddleware) RequireRoleMiddleware(requiredRoles ...models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		userRole, exists := c.Get("user_role")
		if !exists {
			c.JSON(http.StatusForbidden, ErrorResponse{Message: "access denied"})
			c.Abort()
			return
		}

		role, ok := userRole.(models.UserRole)
		if !ok {
			c.JSON(http.StatusForbidden, ErrorResponse{Message: "access denied"})
			c.Abort()
			return
		}

		for _, required := range requiredRoles {
			if role == required || role == models.RoleAdmin {
				c.Next()
				return
			}
		}

		c.JSON(http.StatusForbidden, ErrorResponse{Message: "access denied"})
		c.Abort()
	}
}
