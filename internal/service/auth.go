package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"cab/internal/domain"
	"cab/internal/repository"
)

// AuthService handles login, logout and session resolution. Every other
// service resolves tokens through the same helpers, so the authorization
// policy lives in one place.
type AuthService struct {
	adminRepo    repository.AdminRepository
	customerRepo repository.CustomerRepository
	sessionRepo  repository.SessionRepository
}

// NewAuthService creates a new AuthService.
func NewAuthService(
	adminRepo repository.AdminRepository,
	customerRepo repository.CustomerRepository,
	sessionRepo repository.SessionRepository,
) *AuthService {
	return &AuthService{
		adminRepo:    adminRepo,
		customerRepo: customerRepo,
		sessionRepo:  sessionRepo,
	}
}

// LoginRequest contains the login credentials.
type LoginRequest struct {
	Email    string
	Password string
}

// Login authenticates a principal and creates a session for it.
// The admin registry is checked before the customer registry; a second login
// for an already-logged-in principal is rejected, not silently replaced.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*domain.Session, error) {
	principalID, role, password, err := s.findPrincipal(ctx, req.Email)
	if err != nil {
		return nil, err
	}

	if password != req.Password {
		return nil, ErrInvalidCredentials
	}

	_, err = s.sessionRepo.GetByPrincipalID(ctx, principalID)
	if err == nil {
		return nil, ErrAlreadyLoggedIn
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	session := &domain.Session{
		Token:       uuid.New().String(),
		PrincipalID: principalID,
		Role:        role,
		Status:      domain.SessionStatusLoggedIn,
		CreatedAt:   time.Now(),
	}

	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, err
	}

	return session, nil
}

// Logout deletes the session for the given token.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if _, err := s.sessionRepo.GetByToken(ctx, token); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotLoggedIn
		}
		return err
	}

	return s.sessionRepo.Delete(ctx, token)
}

// Resolve returns the session for a token, or ErrNotLoggedIn.
func (s *AuthService) Resolve(ctx context.Context, token string) (*domain.Session, error) {
	return resolveSession(ctx, s.sessionRepo, token)
}

// findPrincipal looks up the email across registries, admins first.
func (s *AuthService) findPrincipal(ctx context.Context, email string) (id string, role domain.Role, password string, err error) {
	admin, err := s.adminRepo.GetByEmail(ctx, email)
	if err == nil {
		return admin.ID, domain.RoleAdmin, admin.Password, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return "", "", "", err
	}

	customer, err := s.customerRepo.GetByEmail(ctx, email)
	if err == nil {
		return customer.ID, domain.RoleCustomer, customer.Password, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return "", "", "", err
	}

	return "", "", "", ErrNotRegistered
}

// resolveSession is the authorization gate used by every service: an
// unresolvable token short-circuits the caller with ErrNotLoggedIn.
func resolveSession(ctx context.Context, sessions repository.SessionRepository, token string) (*domain.Session, error) {
	session, err := sessions.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotLoggedIn
		}
		return nil, err
	}
	return session, nil
}

// resolveAdminSession resolves a token and requires the admin role.
func resolveAdminSession(ctx context.Context, sessions repository.SessionRepository, token string) (*domain.Session, error) {
	session, err := sessions.GetByTokenAndRole(ctx, token, domain.RoleAdmin)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			// Distinguish "no session at all" from "session, wrong role".
			if _, err := sessions.GetByToken(ctx, token); err == nil {
				return nil, ErrNotAuthorized
			}
			return nil, ErrNotLoggedIn
		}
		return nil, err
	}
	return session, nil
}
