package domain

import "time"

// SessionStatus represents the status recorded on a session.
type SessionStatus string

const (
	SessionStatusLoggedIn SessionStatus = "LOGGED_IN"
)

// Session maps an opaque token to a logged-in principal.
// There is at most one active session per principal; a second login for the
// same principal is rejected rather than replacing the first.
//
// Sessions have no expiry. If a timeout policy is ever added it belongs behind
// the SessionRepository, not in the services that resolve tokens.
type Session struct {
	Token       string
	PrincipalID string
	Role        Role
	Status      SessionStatus
	CreatedAt   time.Time
}
