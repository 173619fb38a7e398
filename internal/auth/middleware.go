package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
)

// ContextKeyUserID is the gin context key holding the authenticated user id.
const ContextKeyUserID = "auth_user_id"

// TokenVerifier resolves bearer tokens to user ids.
type TokenVerifier interface {
	VerifyToken(ctx context.Context, idToken string) (string, error)
}

// Middleware returns a gin handler that authenticates requests with a
// Firebase ID token in the Authorization header. A nil verifier means auth
// is unconfigured; protected routes then answer 503 rather than letting
// requests through.
func Middleware(verifier TokenVerifier, logger *log.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = log.Default()
	}
	return func(c *gin.Context) {
		if verifier == nil {
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{
				"detail": "Authentication is not configured. Set FIREBASE_WEB_API_KEY.",
			})
			return
		}
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "Missing Authorization header"})
			return
		}
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "Invalid Authorization header. Expected: Bearer <token>"})
			return
		}
		userID, err := verifier.VerifyToken(c.Request.Context(), strings.TrimSpace(parts[1]))
		if err != nil {
			logger.Debug("token verification failed", "error", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "Invalid or expired token"})
			return
		}
		c.Set(ContextKeyUserID, userID)
		c.Next()
	}
}

// UserID extracts the authenticated user id set by Middleware.
func UserID(c *gin.Context) (string, bool) {
	v, ok := c.Get(ContextKeyUserID)
	if !ok {
		return "", false
	}
	id, ok := v.(string)
	return id, ok && id != ""
}
