package middleware

import (
	"context"

	"github.com/SscSPs/club_manager_app/internal/core/domain"
	"github.com/gin-gonic/gin"
)

// contextKey is used for values stored in the request context.
// Using a custom type prevents collisions.
type contextKey string

const (
	loggerCtxKey  = contextKey("logger")
	sessionCtxKey = contextKey("session")
	tokenCtxKey   = contextKey("sessionToken")
)

// WithSession stores the authenticated session in ctx.
func WithSession(ctx context.Context, session *domain.Session) context.Context {
	return context.WithValue(ctx, sessionCtxKey, session)
}

// GetSessionFromCtx returns the authenticated session, if any.
func GetSessionFromCtx(ctx context.Context) (*domain.Session, bool) {
	session, ok := ctx.Value(sessionCtxKey).(*domain.Session)
	return session, ok && session != nil
}

// GetUserFromContext retrieves the authenticated user from the Gin context.
func GetUserFromContext(c *gin.Context) (domain.User, bool) {
	session, ok := GetSessionFromCtx(c.Request.Context())
	if !ok {
		return domain.User{}, false
	}
	return session.User, true
}

// GetUserIDFromContext returns the user's email (or guest id), which doubles
// as the distinct id for analytics.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	user, ok := GetUserFromContext(c)
	if !ok || user.Email == "" {
		return "", false
	}
	return user.Email, true
}

// GetSessionTokenFromContext returns the raw bearer token of the request.
func GetSessionTokenFromContext(c *gin.Context) (string, bool) {
	token, ok := c.Request.Context().Value(tokenCtxKey).(string)
	return token, ok && token != ""
}
