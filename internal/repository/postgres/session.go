package postgres

import (
	"context"
	"database/sql"
	"errors"

	"cab/internal/domain"
	"cab/internal/repository"
)

// SessionRepository is a PostgreSQL implementation of repository.SessionRepository.
type SessionRepository struct {
	q Querier
}

// NewSessionRepository creates a new PostgreSQL session repository.
func NewSessionRepository(db *sql.DB) *SessionRepository {
	return &SessionRepository{q: db}
}

// Create persists a new session.
func (r *SessionRepository) Create(ctx context.Context, session *domain.Session) error {
	query := `INSERT INTO sessions (token, principal_id, role, status, created_at) VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.ExecContext(ctx, query, session.Token, session.PrincipalID, session.Role, session.Status, session.CreatedAt)
	return err
}

// GetByToken retrieves a session by its token.
func (r *SessionRepository) GetByToken(ctx context.Context, token string) (*domain.Session, error) {
	query := `SELECT token, principal_id, role, status, created_at FROM sessions WHERE token = $1`
	return r.scanOne(r.q.QueryRowContext(ctx, query, token))
}

// GetByTokenAndRole retrieves a session by token, restricted to a role.
func (r *SessionRepository) GetByTokenAndRole(ctx context.Context, token string, role domain.Role) (*domain.Session, error) {
	query := `SELECT token, principal_id, role, status, created_at FROM sessions WHERE token = $1 AND role = $2`
	return r.scanOne(r.q.QueryRowContext(ctx, query, token, role))
}

// GetByPrincipalID retrieves the active session for a principal.
func (r *SessionRepository) GetByPrincipalID(ctx context.Context, principalID string) (*domain.Session, error) {
	query := `SELECT token, principal_id, role, status, created_at FROM sessions WHERE principal_id = $1`
	return r.scanOne(r.q.QueryRowContext(ctx, query, principalID))
}

// Delete removes a session by token.
func (r *SessionRepository) Delete(ctx context.Context, token string) error {
	result, err := r.q.ExecContext(ctx, `DELETE FROM sessions WHERE token = $1`, token)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return repository.ErrNotFound
	}

	return nil
}

func (r *SessionRepository) scanOne(row *sql.Row) (*domain.Session, error) {
	var session domain.Session
	err := row.Scan(
		&session.Token,
		&session.PrincipalID,
		&session.Role,
		&session.Status,
		&session.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return &session, nil
}
