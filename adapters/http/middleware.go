package http

import (
	"crypto/subtle"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/vedag812/netfolio-api/pkg/apperror"
	"github.com/vedag812/netfolio-api/pkg/logger"
)

const adminTokenHeader = "x-admin-token"

// extractAdminToken accepts the token from either an Authorization bearer
// header or the x-admin-token header; the admin dashboard uses both
// depending on endpoint.
func extractAdminToken(c *gin.Context) string {
	if header := c.GetHeader("Authorization"); header != "" {
		token := strings.TrimPrefix(header, "Bearer ")
		if token != header {
			return token
		}
	}
	return c.GetHeader(adminTokenHeader)
}

// AdminAuthMiddleware gates mutating endpoints behind the single
// operator-held secret. There are no sessions and no per-user identity;
// this is a shared-secret check and nothing more. The 401 body stays
// generic so callers learn nothing about which part of the check failed.
func AdminAuthMiddleware(adminToken string, log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if adminToken == "" {
			// Deployment error, not a caller error; must not read as 401.
			log.Error("admin token is not configured on the server", nil)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"message": "ADMIN_TOKEN is not configured on the server.",
			})
			return
		}

		provided := extractAdminToken(c)
		if provided == "" || subtle.ConstantTimeCompare([]byte(provided), []byte(adminToken)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		c.Next()
	}
}

// ErrorMiddleware translates errors attached via c.Error into the
// apperror taxonomy's HTTP shape.
func ErrorMiddleware(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		status := apperror.ToHTTPStatus(err)

		var appErr *apperror.AppError
		if !errors.As(err, &appErr) {
			appErr = apperror.NewInternal("unexpected error", err)
		}

		if status >= http.StatusInternalServerError {
			log.Error("request failed", err, zap.String("path", c.FullPath()))
		} else {
			log.Warn("request rejected", zap.String("path", c.FullPath()), zap.Error(err))
		}

		c.AbortWithStatusJSON(status, appErr.ToJSON())
	}
}
