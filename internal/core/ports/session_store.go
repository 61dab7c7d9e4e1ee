package ports

import (
	"context"

	"github.com/WaleedUkhan/Backend-Development/internal/core/domain"
)

// SessionStore persists session state keyed by an opaque session id. The
// store outlives the process; expiry policy belongs to the implementation.
type SessionStore interface {
	// Load returns the session data for id, or domain.ErrSessionNotFound.
	Load(ctx context.Context, id string) (*domain.SessionData, error)
	Save(ctx context.Context, id string, data *domain.SessionData) error
	// Destroy removes the session. Destroying an absent session is not an
	// error.
	Destroy(ctx context.Context, id string) error
}
