// Package jwtmw provides JWT issuing and a Gin middleware that guards admin routes.
package jwtmw

import (
	"net/http"
	"slices"
	"strings"

	"stock_chart/internal/api"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	// EnvKeyJWTSecret is the environment variable holding the HMAC secret.
	EnvKeyJWTSecret = "JWT_SECRET"

	ClaimSubject = "sub"
	ClaimRole    = "role"

	// RoleAdmin may regenerate series.
	RoleAdmin = "admin"

	ContextSubject = "subject"
	ContextRole    = "role"
)

// AuthRequired returns a Gin middleware that validates HS256 bearer tokens.
// When roles are given the token's role claim must be one of them.
func AuthRequired(secret string, roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. Get Authorization header
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, api.ErrorResponse{Error: "missing bearer token"})
			return
		}
		tokenStr := strings.TrimPrefix(auth, "Bearer ")

		// 2. Server misconfiguration (JWT_SECRET not set)
		if secret == "" {
			c.AbortWithStatusJSON(http.StatusInternalServerError, api.ErrorResponse{Error: "server misconfigured"})
			return
		}

		// 3. Parse and verify signature; only HMAC is accepted
		token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, api.ErrorResponse{Error: "invalid token"})
			return
		}

		// 4. Extract claims
		var subject, role string
		if claims, ok := token.Claims.(jwt.MapClaims); ok {
			subject, _ = claims[ClaimSubject].(string)
			role, _ = claims[ClaimRole].(string)
		}
		if len(roles) > 0 && !slices.Contains(roles, role) {
			c.AbortWithStatusJSON(http.StatusForbidden, api.ErrorResponse{Error: "insufficient role"})
			return
		}

		c.Set(ContextSubject, subject)
		c.Set(ContextRole, role)
		c.Next()
	}
}
