package middleware

import (
	"errors"
	"strings"

	"agm_backend/internal/auth"
	"agm_backend/internal/logger"
	"agm_backend/pkg/apperrors"
	"agm_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware rejects requests without a valid bearer token before any
// handler runs. On success the caller's id and role are put on the context.
func AuthMiddleware(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, found := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !found || strings.TrimSpace(tokenStr) == "" {
			apperrors.HandleError(c, apperrors.ErrMissingToken)
			return
		}

		claims, err := tokens.ParseToken(strings.TrimSpace(tokenStr))
		if err != nil {
			logger.CtxWarn(c.Request.Context(), "rejected bearer token", "error", err.Error())
			if errors.Is(err, auth.ErrTokenExpired) {
				apperrors.HandleError(c, apperrors.ErrTokenExpired)
				return
			}
			apperrors.HandleError(c, apperrors.ErrInvalidToken)
			return
		}

		c.Set(contextkeys.UserIDKey, claims.UserID())
		c.Set(contextkeys.RoleKey, claims.Role)
		c.Request = c.Request.WithContext(logger.WithUserID(c.Request.Context(), claims.UserID()))
		c.Next()
	}
}

// GetUserID returns the authenticated caller's id, or "" outside the guard.
func GetUserID(c *gin.Context) string {
	return c.GetString(contextkeys.UserIDKey)
}
