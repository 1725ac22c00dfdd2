package tests

import (
	"context"
	"errors"
	"testing"

	"cab/internal/domain"
	"cab/internal/service"
)

// ──────────────────────────────────────────────
// ADMIN TRIP REPORTS
// ──────────────────────────────────────────────

// reportFixture seeds two customers, two cabs of different types and three
// trips spread across them.
func reportFixture() (*service.AdminService, *MockTripRepository) {
	adminRepo := NewMockAdminRepository()
	customerRepo := NewMockCustomerRepository()
	cabRepo := NewMockCabRepository()
	tripRepo := NewMockTripRepository()
	sessionRepo := NewMockSessionRepository()

	addSession(sessionRepo, "admin-tok", "admin-1", domain.RoleAdmin)
	addSession(sessionRepo, "cust-tok", "cust-1", domain.RoleCustomer)

	customerRepo.AddCustomer(&domain.Customer{ID: "cust-1", Email: "a@example.com"})
	customerRepo.AddCustomer(&domain.Customer{ID: "cust-2", Email: "b@example.com"})

	cabRepo.AddCab(&domain.Cab{ID: "cab-sedan", CarNumber: "A1", CarType: "sedan"})
	cabRepo.AddCab(&domain.Cab{ID: "cab-suv", CarNumber: "A2", CarType: "suv"})

	tripRepo.AddTrip(&domain.TripBooking{
		ID: "trip-1", CustomerID: "cust-1", CabID: "cab-sedan",
		FromDateTime: "01-03-2024 09:00", ToDateTime: "01-03-2024 11:00",
		Status: domain.TripStatusCompleted,
	})
	tripRepo.AddTrip(&domain.TripBooking{
		ID: "trip-2", CustomerID: "cust-2", CabID: "cab-suv",
		FromDateTime: "05-03-2024 09:00", ToDateTime: "05-03-2024 11:00",
		Status: domain.TripStatusCompleted,
	})
	tripRepo.AddTrip(&domain.TripBooking{
		ID: "trip-3", CustomerID: "cust-1", CabID: "cab-sedan",
		FromDateTime: "20-03-2024 09:00", ToDateTime: "20-03-2024 11:00",
		Status: domain.TripStatusPending,
	})

	return service.NewAdminService(adminRepo, customerRepo, cabRepo, tripRepo, sessionRepo), tripRepo
}

func TestGetAllTrips_BookingOrder(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	adminService, _ := reportFixture()

	trips, err := adminService.GetAllTrips(ctx, "admin-tok")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(trips) != 3 {
		t.Fatalf("expected 3 trips, got %d", len(trips))
	}
	if trips[0].ID != "trip-1" || trips[2].ID != "trip-3" {
		t.Errorf("expected booking order, got [%s %s %s]", trips[0].ID, trips[1].ID, trips[2].ID)
	}
}

func TestGetAllTrips_EmptyIsAnError(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	sessionRepo := NewMockSessionRepository()
	addSession(sessionRepo, "admin-tok", "admin-1", domain.RoleAdmin)

	adminService := service.NewAdminService(NewMockAdminRepository(), NewMockCustomerRepository(), NewMockCabRepository(), NewMockTripRepository(), sessionRepo)

	_, err := adminService.GetAllTrips(ctx, "admin-tok")
	if !errors.Is(err, service.ErrNoTrips) {
		t.Errorf("expected ErrNoTrips, got %v", err)
	}
}

func TestGetAllTrips_RequiresAdmin(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	adminService, _ := reportFixture()

	_, err := adminService.GetAllTrips(ctx, "cust-tok")
	if !errors.Is(err, service.ErrNotAuthorized) {
		t.Errorf("expected ErrNotAuthorized, got %v", err)
	}
}

func TestGetTripsCabwise_FiltersByCarType(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	adminService, _ := reportFixture()

	trips, err := adminService.GetTripsCabwise(ctx, "sedan", "admin-tok")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(trips) != 2 {
		t.Fatalf("expected 2 sedan trips, got %d", len(trips))
	}
	for _, trip := range trips {
		if trip.CabID != "cab-sedan" {
			t.Errorf("unexpected trip %s with cab %s", trip.ID, trip.CabID)
		}
	}
}

func TestGetTripsCabwise_NoneOfType(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	adminService, _ := reportFixture()

	_, err := adminService.GetTripsCabwise(ctx, "limousine", "admin-tok")
	if !errors.Is(err, service.ErrNoTripsOfCabType) {
		t.Errorf("expected ErrNoTripsOfCabType, got %v", err)
	}
}

func TestGetTripsCustomerwise_Success(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	adminService, _ := reportFixture()

	trips, err := adminService.GetTripsCustomerwise(ctx, "cust-1", "admin-tok")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(trips) != 2 {
		t.Fatalf("expected 2 trips for cust-1, got %d", len(trips))
	}
}

func TestGetTripsCustomerwise_UnknownCustomer(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	adminService, _ := reportFixture()

	_, err := adminService.GetTripsCustomerwise(ctx, "no-such-customer", "admin-tok")
	if !errors.Is(err, service.ErrCustomerNotFound) {
		t.Errorf("expected ErrCustomerNotFound, got %v", err)
	}
}

func TestGetTripsForDays_InclusiveWindow(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	adminService, _ := reportFixture()

	// Window bounds land exactly on trip-1's start; trip-3 is outside.
	trips, err := adminService.GetTripsForDays(ctx, "cust-1", "01-03-2024 09:00", "10-03-2024 00:00", "admin-tok")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(trips) != 1 {
		t.Fatalf("expected 1 trip in window, got %d", len(trips))
	}
	if trips[0].ID != "trip-1" {
		t.Errorf("expected trip-1, got %s", trips[0].ID)
	}
}

func TestGetTripsForDays_EmptyWindowIsAnError(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	adminService, _ := reportFixture()

	_, err := adminService.GetTripsForDays(ctx, "cust-1", "01-01-2023 00:00", "31-01-2023 00:00", "admin-tok")
	if !errors.Is(err, service.ErrNoTripsInWindow) {
		t.Errorf("expected ErrNoTripsInWindow, got %v", err)
	}
}

func TestGetTripsForDays_MalformedBound(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	adminService, _ := reportFixture()

	_, err := adminService.GetTripsForDays(ctx, "cust-1", "2024-03-01", "10-03-2024 00:00", "admin-tok")
	if !errors.Is(err, service.ErrInvalidDateTime) {
		t.Errorf("expected ErrInvalidDateTime, got %v", err)
	}
}

func TestGetTripsForDays_FromAfterTo(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	adminService, _ := reportFixture()

	_, err := adminService.GetTripsForDays(ctx, "cust-1", "10-03-2024 00:00", "01-03-2024 00:00", "admin-tok")
	if !errors.Is(err, service.ErrInvalidDateRange) {
		t.Errorf("expected ErrInvalidDateRange, got %v", err)
	}
}
