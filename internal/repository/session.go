package repository

import (
	"context"

	"cab/internal/domain"
)

// SessionRepository defines the persistence operations for login sessions.
type SessionRepository interface {
	// Create persists a new session.
	Create(ctx context.Context, session *domain.Session) error

	// GetByToken retrieves a session by its token.
	GetByToken(ctx context.Context, token string) (*domain.Session, error)

	// GetByTokenAndRole retrieves a session by token, restricted to a role.
	GetByTokenAndRole(ctx context.Context, token string, role domain.Role) (*domain.Session, error)

	// GetByPrincipalID retrieves the active session for a principal.
	GetByPrincipalID(ctx context.Context, principalID string) (*domain.Session, error)

	// Delete removes a session by token.
	Delete(ctx context.Context, token string) error
}
