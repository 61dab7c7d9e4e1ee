package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/WaleedUkhan/Backend-Development/internal/core/domain"
)

const (
	ctxSessionIDKey = "session_id"
	ctxIdentityKey  = "identity"
)

// SessionID returns the session id established by the Session middleware.
// Empty when the middleware did not run.
func SessionID(c echo.Context) string {
	id, _ := c.Get(ctxSessionIDKey).(string)
	return id
}

// Identity returns the authenticated identity snapshot, or nil when the
// request is anonymous.
func Identity(c echo.Context) *domain.Identity {
	identity, _ := c.Get(ctxIdentityKey).(*domain.Identity)
	return identity
}

// SetIdentity attaches the identity snapshot to the request context. The
// Session middleware calls this after a successful store load; tests use it
// to build an authenticated context without a store.
func SetIdentity(c echo.Context, identity *domain.Identity) {
	c.Set(ctxIdentityKey, identity)
}
