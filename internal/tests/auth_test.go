package tests

import (
	"context"
	"errors"
	"testing"
	"time"

	"cab/internal/domain"
	"cab/internal/service"
)

// ──────────────────────────────────────────────
// LOGIN / LOGOUT
// ──────────────────────────────────────────────

// addSession seeds a logged-in session so token-gated calls can be exercised
// without going through Login.
func addSession(repo *MockSessionRepository, token, principalID string, role domain.Role) {
	repo.AddSession(&domain.Session{
		Token:       token,
		PrincipalID: principalID,
		Role:        role,
		Status:      domain.SessionStatusLoggedIn,
		CreatedAt:   time.Now(),
	})
}

func TestLogin_CustomerSuccess(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	adminRepo := NewMockAdminRepository()
	customerRepo := NewMockCustomerRepository()
	sessionRepo := NewMockSessionRepository()

	customerRepo.AddCustomer(&domain.Customer{
		ID:       "cust-1",
		Email:    "rita@example.com",
		Password: "secret",
		Role:     domain.RoleCustomer,
	})

	authService := service.NewAuthService(adminRepo, customerRepo, sessionRepo)

	session, err := authService.Login(ctx, service.LoginRequest{Email: "rita@example.com", Password: "secret"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if session.Token == "" {
		t.Error("expected a non-empty token")
	}
	if session.Role != domain.RoleCustomer {
		t.Errorf("expected role %s, got %s", domain.RoleCustomer, session.Role)
	}
	if session.PrincipalID != "cust-1" {
		t.Errorf("expected principal cust-1, got %s", session.PrincipalID)
	}
	if sessionRepo.CreateCallCount != 1 {
		t.Errorf("expected 1 session create, got %d", sessionRepo.CreateCallCount)
	}
}

func TestLogin_AdminCheckedBeforeCustomer(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	adminRepo := NewMockAdminRepository()
	customerRepo := NewMockCustomerRepository()
	sessionRepo := NewMockSessionRepository()

	// Same email registered in both registries; the admin must win.
	adminRepo.AddAdmin(&domain.Admin{
		ID:       "admin-1",
		Email:    "boss@example.com",
		Password: "adminpass",
		Role:     domain.RoleAdmin,
	})
	customerRepo.AddCustomer(&domain.Customer{
		ID:       "cust-1",
		Email:    "boss@example.com",
		Password: "custpass",
		Role:     domain.RoleCustomer,
	})

	authService := service.NewAuthService(adminRepo, customerRepo, sessionRepo)

	session, err := authService.Login(ctx, service.LoginRequest{Email: "boss@example.com", Password: "adminpass"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if session.Role != domain.RoleAdmin {
		t.Errorf("expected role %s, got %s", domain.RoleAdmin, session.Role)
	}
	if session.PrincipalID != "admin-1" {
		t.Errorf("expected principal admin-1, got %s", session.PrincipalID)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	adminRepo := NewMockAdminRepository()
	customerRepo := NewMockCustomerRepository()
	sessionRepo := NewMockSessionRepository()

	customerRepo.AddCustomer(&domain.Customer{
		ID:       "cust-1",
		Email:    "rita@example.com",
		Password: "secret",
		Role:     domain.RoleCustomer,
	})

	authService := service.NewAuthService(adminRepo, customerRepo, sessionRepo)

	_, err := authService.Login(ctx, service.LoginRequest{Email: "rita@example.com", Password: "wrong"})
	if !errors.Is(err, service.ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
	if sessionRepo.CreateCallCount != 0 {
		t.Error("no session should be created for a failed login")
	}
}

func TestLogin_UnknownEmail(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	authService := service.NewAuthService(NewMockAdminRepository(), NewMockCustomerRepository(), NewMockSessionRepository())

	_, err := authService.Login(ctx, service.LoginRequest{Email: "nobody@example.com", Password: "x"})
	if !errors.Is(err, service.ErrNotRegistered) {
		t.Errorf("expected ErrNotRegistered, got %v", err)
	}
}

func TestLogin_SecondLoginRejected(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	adminRepo := NewMockAdminRepository()
	customerRepo := NewMockCustomerRepository()
	sessionRepo := NewMockSessionRepository()

	customerRepo.AddCustomer(&domain.Customer{
		ID:       "cust-1",
		Email:    "rita@example.com",
		Password: "secret",
		Role:     domain.RoleCustomer,
	})

	authService := service.NewAuthService(adminRepo, customerRepo, sessionRepo)

	first, err := authService.Login(ctx, service.LoginRequest{Email: "rita@example.com", Password: "secret"})
	if err != nil {
		t.Fatalf("unexpected error on first login: %v", err)
	}

	// The second login is rejected, it does not replace the first session.
	_, err = authService.Login(ctx, service.LoginRequest{Email: "rita@example.com", Password: "secret"})
	if !errors.Is(err, service.ErrAlreadyLoggedIn) {
		t.Errorf("expected ErrAlreadyLoggedIn, got %v", err)
	}

	if _, err := authService.Resolve(ctx, first.Token); err != nil {
		t.Errorf("first session should still resolve, got %v", err)
	}
}

func TestLogout_Success(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	sessionRepo := NewMockSessionRepository()
	addSession(sessionRepo, "tok-1", "cust-1", domain.RoleCustomer)

	authService := service.NewAuthService(NewMockAdminRepository(), NewMockCustomerRepository(), sessionRepo)

	if err := authService.Logout(ctx, "tok-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := authService.Resolve(ctx, "tok-1"); !errors.Is(err, service.ErrNotLoggedIn) {
		t.Errorf("expected ErrNotLoggedIn after logout, got %v", err)
	}
}

func TestLogout_UnknownToken(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	authService := service.NewAuthService(NewMockAdminRepository(), NewMockCustomerRepository(), NewMockSessionRepository())

	err := authService.Logout(ctx, "no-such-token")
	if !errors.Is(err, service.ErrNotLoggedIn) {
		t.Errorf("expected ErrNotLoggedIn, got %v", err)
	}
}

// ──────────────────────────────────────────────
// ADMIN GATE
// ──────────────────────────────────────────────

func TestAdminGate_CustomerTokenIsForbidden(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	customerRepo := NewMockCustomerRepository()
	sessionRepo := NewMockSessionRepository()
	addSession(sessionRepo, "cust-tok", "cust-1", domain.RoleCustomer)

	customerService := service.NewCustomerService(customerRepo, sessionRepo)

	// ViewAllCustomers is admin only; a customer session resolves but is the
	// wrong role.
	_, err := customerService.ViewAllCustomers(ctx, "cust-tok")
	if !errors.Is(err, service.ErrNotAuthorized) {
		t.Errorf("expected ErrNotAuthorized, got %v", err)
	}
}

func TestAdminGate_MissingTokenIsUnauthorized(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	customerService := service.NewCustomerService(NewMockCustomerRepository(), NewMockSessionRepository())

	_, err := customerService.ViewAllCustomers(ctx, "missing")
	if !errors.Is(err, service.ErrNotLoggedIn) {
		t.Errorf("expected ErrNotLoggedIn, got %v", err)
	}
}
