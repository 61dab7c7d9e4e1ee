package domain

import "time"

// SessionData is the state persisted per browser session. Identity is nil
// for anonymous sessions; a non-nil Identity implies a successful login.
type SessionData struct {
	Identity   *Identity `json:"identity,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	LastSeenAt time.Time `json:"last_seen_at"`
}

// Authenticated reports whether the session carries an identity snapshot.
func (s *SessionData) Authenticated() bool {
	return s != nil && s.Identity != nil
}

// ResolveDashboard decides what a request for /dashboard/{requested} gets
// when the caller is authenticated with the given role.
//
// The returned view is meaningful only when serve is true; otherwise the
// caller must redirect to the authenticated role's own dashboard. Exactly
// one of the two outcomes applies.
func ResolveDashboard(requested string, authenticated Role) (view Role, serve bool) {
	r, ok := ParseRole(requested)
	if !ok {
		return authenticated, false
	}
	switch r {
	case RoleAdmin:
		if authenticated == RoleAdmin {
			return RoleAdmin, true
		}
	case RoleManager:
		if authenticated.AtLeast(RoleManager) {
			return RoleManager, true
		}
	case RoleUser:
		// Every authenticated role may see the user view.
		return RoleUser, true
	}
	return authenticated, false
}
