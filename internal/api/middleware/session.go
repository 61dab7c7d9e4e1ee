package middleware

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/WaleedUkhan/Backend-Development/internal/core/domain"
	"github.com/WaleedUkhan/Backend-Development/internal/core/ports"
)

const sessionIDBytes = 16

// SessionConfig controls the session cookie issued by the middleware.
type SessionConfig struct {
	CookieName string
	Secure     bool
}

// Session resolves the per-browser session on every request. Only ids the
// store has a record for are trusted: a missing, malformed, or unknown
// cookie value is replaced with a fresh server-generated id (and a
// Set-Cookie), so a client can never choose the id its identity is saved
// under. A known id has its identity snapshot loaded from the store and
// placed in the request context. Store connectivity failures propagate to
// the error handler.
func Session(store ports.SessionStore, cfg SessionConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := ""
			if cookie, err := c.Cookie(cfg.CookieName); err == nil && validSessionID(cookie.Value) {
				id = cookie.Value
			}

			var data *domain.SessionData
			if id != "" {
				loaded, err := store.Load(c.Request().Context(), id)
				switch {
				case err == nil:
					data = loaded
				case errors.Is(err, domain.ErrSessionNotFound):
					// Expired or forged id: never adopt it.
					id = ""
				default:
					return err
				}
			}

			if id == "" {
				fresh, err := newSessionID()
				if err != nil {
					return err
				}
				id = fresh
				c.SetCookie(&http.Cookie{
					Name:     cfg.CookieName,
					Value:    id,
					Path:     "/",
					HttpOnly: true,
					Secure:   cfg.Secure,
					SameSite: http.SameSiteLaxMode,
				})
			}
			c.Set(ctxSessionIDKey, id)

			if data.Authenticated() {
				SetIdentity(c, data.Identity)
			}

			return next(c)
		}
	}
}

// newSessionID produces an unguessable 32-character hex id.
func newSessionID() (string, error) {
	b := make([]byte, sessionIDBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate session id: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// validSessionID reports whether v has the shape of a server-generated id.
func validSessionID(v string) bool {
	if len(v) != 2*sessionIDBytes {
		return false
	}
	_, err := hex.DecodeString(v)
	return err == nil
}
