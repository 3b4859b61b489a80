package middleware

import (
	"strings"

	"crm/constants"
	"crm/response"
	"crm/services"

	"github.com/gin-gonic/gin"
)

const (
	userIDKey   = "userID"
	userRoleKey = "userRole"
	claimsKey   = "claims"
)

// AuthMiddleware requires a valid, unrevoked bearer token and stores the
// caller in the context. When roles are given it also applies RoleMiddleware.
func AuthMiddleware(tokens *services.TokenService, revoker services.Revoker, roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			response.Unauthorized(c, "No token provided")
			c.Abort()
			return
		}

		claims, err := tokens.ParseToken(strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer ")))
		if err != nil {
			response.Abort(c, err)
			return
		}

		if claims.Id != "" {
			revoked, err := revoker.IsRevoked(c.Request.Context(), claims.Id)
			if err != nil {
				response.Abort(c, err)
				return
			}
			if revoked {
				response.Unauthorized(c, "Token has been revoked")
				c.Abort()
				return
			}
		}

		c.Set(userIDKey, claims.ID)
		c.Set(userRoleKey, claims.Role)
		c.Set(claimsKey, claims)

		if len(roles) > 0 && !allowed(claims.Role, roles) {
			response.Forbidden(c, "Access denied")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RoleMiddleware lets the listed roles through. The superadmin passes every gate.
func RoleMiddleware(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := CurrentRole(c)
		if !ok {
			response.Unauthorized(c, "Not authenticated")
			c.Abort()
			return
		}
		if !allowed(role, roles) {
			response.Forbidden(c, "Access denied")
			c.Abort()
			return
		}
		c.Next()
	}
}

func allowed(role string, roles []string) bool {
	return role == constants.RoleSuperAdmin || constants.Contains(roles, role)
}

func CurrentUserID(c *gin.Context) (uint, bool) {
	v, ok := c.Get(userIDKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}

func CurrentRole(c *gin.Context) (string, bool) {
	v, ok := c.Get(userRoleKey)
	if !ok {
		return "", false
	}
	role, ok := v.(string)
	return role, ok
}

func CurrentClaims(c *gin.Context) *services.Claims {
	v, ok := c.Get(claimsKey)
	if !ok {
		return nil
	}
	claims, _ := v.(*services.Claims)
	return claims
}
