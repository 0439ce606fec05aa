package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"library-catalog/internal/shared/response"
	"library-catalog/pkg/jwt"
)

// Context keys set by AuthMiddleware for downstream handlers.
const (
	CtxUserID = "userID"
	CtxClaims = "claims"
)

// AuthMiddleware validates the bearer token and rejects revoked tokens.
// A nil blocklist (or a blocklist backend outage) degrades to signature-only
// validation rather than failing every request.
func AuthMiddleware(manager *jwt.Manager, blocklist *jwt.Blocklist) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthenticated(c)
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthenticated(c)
			c.Abort()
			return
		}

		claims, err := manager.Validate(parts[1])
		if err != nil {
			response.Unauthenticated(c)
			c.Abort()
			return
		}

		if blocklist != nil {
			revoked, err := blocklist.IsRevoked(c.Request.Context(), claims.ID)
			if err != nil {
				log.Warn().Err(err).Msg("blocklist check failed, accepting token")
			} else if revoked {
				response.Unauthenticated(c)
				c.Abort()
				return
			}
		}

		c.Set(CtxUserID, claims.UserID)
		c.Set(CtxClaims, claims)
		c.Next()
	}
}
