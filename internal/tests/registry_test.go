package tests

import (
	"context"
	"errors"
	"testing"

	"cab/internal/domain"
	"cab/internal/service"
)

// ──────────────────────────────────────────────
// CAB REGISTRY
// ──────────────────────────────────────────────

func TestInsertCab_DefaultsAndID(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	cabService := service.NewCabService(NewMockCabRepository(), NewMockSessionRepository())

	cab, err := cabService.InsertCab(ctx, &domain.Cab{
		CarName:      "Swift",
		CarNumber:    "MH12AB1234",
		CarType:      "hatchback",
		PerKmRate:    10,
		CurrLocation: "pune",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cab.ID == "" {
		t.Error("expected a generated ID")
	}
	if cab.Status != domain.CabStatusAvailable {
		t.Errorf("expected default status %s, got %s", domain.CabStatusAvailable, cab.Status)
	}
}

func TestInsertCab_DuplicateCarNumber(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	cabRepo := NewMockCabRepository()
	cabRepo.AddCab(&domain.Cab{ID: "cab-1", CarNumber: "MH12AB1234"})

	cabService := service.NewCabService(cabRepo, NewMockSessionRepository())

	_, err := cabService.InsertCab(ctx, &domain.Cab{CarNumber: "MH12AB1234", PerKmRate: 10})
	if !errors.Is(err, service.ErrCabAlreadyRegistered) {
		t.Errorf("expected ErrCabAlreadyRegistered, got %v", err)
	}
}

func TestViewCabsOfType_EmptyIsAnError(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	cabRepo := NewMockCabRepository()
	sessionRepo := NewMockSessionRepository()
	addSession(sessionRepo, "admin-tok", "admin-1", domain.RoleAdmin)

	cabRepo.AddCab(&domain.Cab{ID: "cab-1", CarNumber: "A1", CarType: "sedan"})

	cabService := service.NewCabService(cabRepo, sessionRepo)

	_, err := cabService.ViewCabsOfType(ctx, "suv", "admin-tok")
	if !errors.Is(err, service.ErrNoCabsOfType) {
		t.Errorf("expected ErrNoCabsOfType, got %v", err)
	}
}

func TestCountCabsOfType_ZeroIsValid(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	cabRepo := NewMockCabRepository()
	sessionRepo := NewMockSessionRepository()
	addSession(sessionRepo, "admin-tok", "admin-1", domain.RoleAdmin)

	cabRepo.AddCab(&domain.Cab{ID: "cab-1", CarNumber: "A1", CarType: "sedan"})
	cabRepo.AddCab(&domain.Cab{ID: "cab-2", CarNumber: "A2", CarType: "sedan"})

	cabService := service.NewCabService(cabRepo, sessionRepo)

	count, err := cabService.CountCabsOfType(ctx, "sedan", "admin-tok")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 2 {
		t.Errorf("expected 2 sedans, got %d", count)
	}

	// Counting, unlike listing, treats an empty answer as zero.
	count, err = cabService.CountCabsOfType(ctx, "suv", "admin-tok")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 0 {
		t.Errorf("expected 0 suvs, got %d", count)
	}
}

// ──────────────────────────────────────────────
// DRIVER REGISTRY
// ──────────────────────────────────────────────

func TestInsertDriver_WrongRoleTag(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	driverService := service.NewDriverService(NewMockDriverRepository(), NewMockSessionRepository())

	_, err := driverService.InsertDriver(ctx, &domain.Driver{
		Email:     "not-a-driver@example.com",
		LicenceNo: "L-1",
		Role:      domain.RoleCustomer,
	})
	if !errors.Is(err, service.ErrWrongRole) {
		t.Errorf("expected ErrWrongRole, got %v", err)
	}
}

func TestInsertDriver_DuplicateLicence(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	driverRepo := NewMockDriverRepository()
	driverRepo.AddDriver(&domain.Driver{ID: "drv-1", LicenceNo: "L-1"})

	driverService := service.NewDriverService(driverRepo, NewMockSessionRepository())

	_, err := driverService.InsertDriver(ctx, &domain.Driver{LicenceNo: "L-1", Role: domain.RoleDriver})
	if !errors.Is(err, service.ErrDriverAlreadyRegistered) {
		t.Errorf("expected ErrDriverAlreadyRegistered, got %v", err)
	}
}

func TestViewBestDriver_MarginBelowTop(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	driverRepo := NewMockDriverRepository()
	sessionRepo := NewMockSessionRepository()
	addSession(sessionRepo, "tok", "cust-1", domain.RoleCustomer)

	// 4.9 and 4.7 are within half a point of the top; 4.0 is not.
	driverRepo.AddDriver(&domain.Driver{ID: "drv-1", LicenceNo: "L-1", Rating: 4.9})
	driverRepo.AddDriver(&domain.Driver{ID: "drv-2", LicenceNo: "L-2", Rating: 4.0})
	driverRepo.AddDriver(&domain.Driver{ID: "drv-3", LicenceNo: "L-3", Rating: 4.7})

	driverService := service.NewDriverService(driverRepo, sessionRepo)

	best, err := driverService.ViewBestDriver(ctx, "tok")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(best) != 2 {
		t.Fatalf("expected 2 best drivers, got %d", len(best))
	}
	// Best first.
	if best[0].ID != "drv-1" || best[1].ID != "drv-3" {
		t.Errorf("expected [drv-1 drv-3], got [%s %s]", best[0].ID, best[1].ID)
	}
}

func TestViewBestDriver_EmptyRegistry(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	sessionRepo := NewMockSessionRepository()
	addSession(sessionRepo, "tok", "cust-1", domain.RoleCustomer)

	driverService := service.NewDriverService(NewMockDriverRepository(), sessionRepo)

	_, err := driverService.ViewBestDriver(ctx, "tok")
	if !errors.Is(err, service.ErrNoBestDriver) {
		t.Errorf("expected ErrNoBestDriver, got %v", err)
	}
}

// ──────────────────────────────────────────────
// CUSTOMER REGISTRY
// ──────────────────────────────────────────────

func TestInsertCustomer_DuplicateEmail(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	customerRepo := NewMockCustomerRepository()
	customerRepo.AddCustomer(&domain.Customer{ID: "cust-1", Email: "rita@example.com"})

	customerService := service.NewCustomerService(customerRepo, NewMockSessionRepository())

	_, err := customerService.InsertCustomer(ctx, &domain.Customer{
		Email: "rita@example.com",
		Role:  domain.RoleCustomer,
	})
	if !errors.Is(err, service.ErrCustomerAlreadyRegistered) {
		t.Errorf("expected ErrCustomerAlreadyRegistered, got %v", err)
	}
}

func TestViewAllCustomers_EmptyIsAnError(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	sessionRepo := NewMockSessionRepository()
	addSession(sessionRepo, "admin-tok", "admin-1", domain.RoleAdmin)

	customerService := service.NewCustomerService(NewMockCustomerRepository(), sessionRepo)

	_, err := customerService.ViewAllCustomers(ctx, "admin-tok")
	if !errors.Is(err, service.ErrNoCustomers) {
		t.Errorf("expected ErrNoCustomers, got %v", err)
	}
}

func TestViewAllCustomers_RegistrationOrder(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	customerRepo := NewMockCustomerRepository()
	sessionRepo := NewMockSessionRepository()
	addSession(sessionRepo, "admin-tok", "admin-1", domain.RoleAdmin)

	customerRepo.AddCustomer(&domain.Customer{ID: "cust-1", Email: "a@example.com"})
	customerRepo.AddCustomer(&domain.Customer{ID: "cust-2", Email: "b@example.com"})

	customerService := service.NewCustomerService(customerRepo, sessionRepo)

	customers, err := customerService.ViewAllCustomers(ctx, "admin-tok")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(customers) != 2 || customers[0].ID != "cust-1" || customers[1].ID != "cust-2" {
		t.Errorf("expected [cust-1 cust-2], got %v", customers)
	}
}

func TestDeleteCustomer_RequiresAdmin(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	customerRepo := NewMockCustomerRepository()
	sessionRepo := NewMockSessionRepository()
	addSession(sessionRepo, "cust-tok", "cust-1", domain.RoleCustomer)
	customerRepo.AddCustomer(&domain.Customer{ID: "cust-2", Email: "b@example.com"})

	customerService := service.NewCustomerService(customerRepo, sessionRepo)

	_, err := customerService.DeleteCustomer(ctx, "cust-2", "cust-tok")
	if !errors.Is(err, service.ErrNotAuthorized) {
		t.Errorf("expected ErrNotAuthorized, got %v", err)
	}
}

// ──────────────────────────────────────────────
// ADMIN REGISTRY
// ──────────────────────────────────────────────

func TestInsertAdmin_DuplicateEmail(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	adminRepo := NewMockAdminRepository()
	adminRepo.AddAdmin(&domain.Admin{ID: "admin-1", Email: "boss@example.com"})

	adminService := service.NewAdminService(adminRepo, NewMockCustomerRepository(), NewMockCabRepository(), NewMockTripRepository(), NewMockSessionRepository())

	_, err := adminService.InsertAdmin(ctx, &domain.Admin{
		Email: "boss@example.com",
		Role:  domain.RoleAdmin,
	})
	if !errors.Is(err, service.ErrAdminAlreadyRegistered) {
		t.Errorf("expected ErrAdminAlreadyRegistered, got %v", err)
	}
}
