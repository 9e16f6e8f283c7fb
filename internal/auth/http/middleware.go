package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/patrolbook/patrolbook/internal/auth/domain"
	"github.com/patrolbook/patrolbook/internal/auth/service"
	"github.com/patrolbook/patrolbook/internal/httputil"
	identitydomain "github.com/patrolbook/patrolbook/internal/identity/domain"
)

// RequireAuth verifies the Authorization header and attaches the token payload
// to the request context. Every failure mode, missing header, malformed token,
// bad signature, expiry, or an unknown role inside a valid token, produces the
// same unauthorized response. The distinction is only logged.
func RequireAuth(tokenService service.TokenService, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")

		payload, err := tokenService.Verify(header)
		if err != nil {
			logger.Debug("token verification failed", "path", c.FullPath(), "error", err)
			httputil.HandleErrorGin(c, err, logger)
			c.Abort()
			return
		}

		if !payload.Role.Valid() {
			logger.Debug("token carries unknown role", "path", c.FullPath(), "role", string(payload.Role))
			httputil.HandleErrorGin(c, domain.ErrUnknownRole, logger)
			c.Abort()
			return
		}

		c.Request = c.Request.WithContext(WithClaims(c.Request.Context(), payload))
		c.Next()
	}
}

// RequireRole gates a route on the coarse role carried in the token. It must
// run after RequireAuth.
func RequireRole(role identitydomain.CoarseRole, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := GetClaims(c.Request.Context())
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			c.Abort()
			return
		}
		if claims.Role != role {
			logger.Debug("role check failed", "path", c.FullPath(), "required", string(role), "actual", string(claims.Role))
			c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
			c.Abort()
			return
		}
		c.Next()
	}
}
