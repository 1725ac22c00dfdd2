package tests

import (
	"context"
	"errors"
	"testing"

	"cab/internal/domain"
	"cab/internal/service"
)

// newBookingService wires a BookingService against mocks. No *sql.DB, so the
// multi-entity transitions run straight against the mock repositories.
func newBookingService(
	sessionRepo *MockSessionRepository,
	cabRepo *MockCabRepository,
	driverRepo *MockDriverRepository,
	customerRepo *MockCustomerRepository,
	tripRepo *MockTripRepository,
	lockStore *MockLockStore,
) *service.BookingService {
	if lockStore == nil {
		// A typed nil would dodge the service's nil check.
		return service.NewBookingService(nil, sessionRepo, cabRepo, driverRepo, customerRepo, tripRepo, nil)
	}
	return service.NewBookingService(nil, sessionRepo, cabRepo, driverRepo, customerRepo, tripRepo, lockStore)
}

// ──────────────────────────────────────────────
// CAB SEARCH
// ──────────────────────────────────────────────

func TestSearch_FiltersByStatusAndLocation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	sessionRepo := NewMockSessionRepository()
	cabRepo := NewMockCabRepository()
	addSession(sessionRepo, "tok", "cust-1", domain.RoleCustomer)

	cabRepo.AddCab(&domain.Cab{ID: "cab-1", CurrLocation: "pune", Status: domain.CabStatusAvailable})
	cabRepo.AddCab(&domain.Cab{ID: "cab-2", CurrLocation: "pune", Status: domain.CabStatusBooked})
	cabRepo.AddCab(&domain.Cab{ID: "cab-3", CurrLocation: "mumbai", Status: domain.CabStatusAvailable})
	cabRepo.AddCab(&domain.Cab{ID: "cab-4", CurrLocation: "pune", Status: domain.CabStatusAvailable})

	svc := newBookingService(sessionRepo, cabRepo, NewMockDriverRepository(), NewMockCustomerRepository(), NewMockTripRepository(), nil)

	cabs, err := svc.SearchByLocation(ctx, "pune", "tok")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cabs) != 2 {
		t.Fatalf("expected 2 cabs, got %d", len(cabs))
	}
	// Registration order is preserved.
	if cabs[0].ID != "cab-1" || cabs[1].ID != "cab-4" {
		t.Errorf("expected [cab-1 cab-4], got [%s %s]", cabs[0].ID, cabs[1].ID)
	}
}

func TestSearch_NoCabIsAnError(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	sessionRepo := NewMockSessionRepository()
	cabRepo := NewMockCabRepository()
	addSession(sessionRepo, "tok", "cust-1", domain.RoleCustomer)

	cabRepo.AddCab(&domain.Cab{ID: "cab-1", CurrLocation: "pune", Status: domain.CabStatusBooked})

	svc := newBookingService(sessionRepo, cabRepo, NewMockDriverRepository(), NewMockCustomerRepository(), NewMockTripRepository(), nil)

	_, err := svc.SearchByLocation(ctx, "pune", "tok")
	if !errors.Is(err, service.ErrNoCabAvailable) {
		t.Errorf("expected ErrNoCabAvailable, got %v", err)
	}
}

func TestSearch_RequiresLogin(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc := newBookingService(NewMockSessionRepository(), NewMockCabRepository(), NewMockDriverRepository(), NewMockCustomerRepository(), NewMockTripRepository(), nil)

	_, err := svc.SearchByLocation(ctx, "pune", "no-token")
	if !errors.Is(err, service.ErrNotLoggedIn) {
		t.Errorf("expected ErrNotLoggedIn, got %v", err)
	}
}

// ──────────────────────────────────────────────
// BOOKING
// ──────────────────────────────────────────────

func bookingFixture() (*MockSessionRepository, *MockCabRepository, *MockCustomerRepository, *MockTripRepository, *MockLockStore) {
	sessionRepo := NewMockSessionRepository()
	cabRepo := NewMockCabRepository()
	customerRepo := NewMockCustomerRepository()
	tripRepo := NewMockTripRepository()
	lockStore := NewMockLockStore()

	addSession(sessionRepo, "tok", "cust-1", domain.RoleCustomer)
	customerRepo.AddCustomer(&domain.Customer{ID: "cust-1", Email: "rita@example.com", Role: domain.RoleCustomer})
	cabRepo.AddCab(&domain.Cab{
		ID:           "cab-1",
		CarNumber:    "MH12AB1234",
		PerKmRate:    12,
		CurrLocation: "pune",
		Status:       domain.CabStatusAvailable,
	})

	return sessionRepo, cabRepo, customerRepo, tripRepo, lockStore
}

func validBookRequest() service.BookTripRequest {
	return service.BookTripRequest{
		CabID:          "cab-1",
		PickupLocation: "pune",
		FromDateTime:   "25-12-2024 10:00",
		ToDateTime:     "25-12-2024 12:00",
		DistanceKm:     40,
	}
}

func TestBook_Success(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	sessionRepo, cabRepo, customerRepo, tripRepo, lockStore := bookingFixture()
	svc := newBookingService(sessionRepo, cabRepo, NewMockDriverRepository(), customerRepo, tripRepo, lockStore)

	trip, err := svc.BookRequest(ctx, validBookRequest(), "tok")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if trip.Status != domain.TripStatusPending {
		t.Errorf("expected trip status %s, got %s", domain.TripStatusPending, trip.Status)
	}
	if trip.CustomerID != "cust-1" {
		t.Errorf("expected customer cust-1, got %s", trip.CustomerID)
	}
	if trip.DriverID != "" {
		t.Errorf("no driver should be assigned yet, got %s", trip.DriverID)
	}

	// The cab is claimed for the booking.
	if got := cabRepo.GetCab("cab-1").Status; got != domain.CabStatusPending {
		t.Errorf("expected cab status %s, got %s", domain.CabStatusPending, got)
	}

	// The lock was taken and released again.
	if lockStore.AcquireCallCount != 1 {
		t.Errorf("expected 1 lock acquire, got %d", lockStore.AcquireCallCount)
	}
	if lockStore.ReleaseCallCount != 1 {
		t.Errorf("expected 1 lock release, got %d", lockStore.ReleaseCallCount)
	}
}

func TestBook_WrongLocation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	sessionRepo, cabRepo, customerRepo, tripRepo, lockStore := bookingFixture()
	svc := newBookingService(sessionRepo, cabRepo, NewMockDriverRepository(), customerRepo, tripRepo, lockStore)

	req := validBookRequest()
	req.PickupLocation = "mumbai"

	_, err := svc.BookRequest(ctx, req, "tok")
	if !errors.Is(err, service.ErrCabNotAvailable) {
		t.Errorf("expected ErrCabNotAvailable, got %v", err)
	}
	if got := cabRepo.GetCab("cab-1").Status; got != domain.CabStatusAvailable {
		t.Errorf("cab status should be untouched, got %s", got)
	}
}

func TestBook_CabAlreadyClaimed(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	sessionRepo, cabRepo, customerRepo, tripRepo, lockStore := bookingFixture()
	cabRepo.GetCab("cab-1").Status = domain.CabStatusPending

	svc := newBookingService(sessionRepo, cabRepo, NewMockDriverRepository(), customerRepo, tripRepo, lockStore)

	_, err := svc.BookRequest(ctx, validBookRequest(), "tok")
	if !errors.Is(err, service.ErrCabNotAvailable) {
		t.Errorf("expected ErrCabNotAvailable, got %v", err)
	}
}

func TestBook_SecondBookingLoses(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	sessionRepo, cabRepo, customerRepo, tripRepo, lockStore := bookingFixture()
	svc := newBookingService(sessionRepo, cabRepo, NewMockDriverRepository(), customerRepo, tripRepo, lockStore)

	if _, err := svc.BookRequest(ctx, validBookRequest(), "tok"); err != nil {
		t.Fatalf("unexpected error on first booking: %v", err)
	}

	_, err := svc.BookRequest(ctx, validBookRequest(), "tok")
	if !errors.Is(err, service.ErrCabNotAvailable) {
		t.Errorf("expected ErrCabNotAvailable for second booking, got %v", err)
	}
	if tripRepo.CreateCallCount != 1 {
		t.Errorf("expected exactly 1 trip create, got %d", tripRepo.CreateCallCount)
	}
}

func TestBook_LockContention(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	sessionRepo, cabRepo, customerRepo, tripRepo, lockStore := bookingFixture()
	lockStore.AcquireResult = false

	svc := newBookingService(sessionRepo, cabRepo, NewMockDriverRepository(), customerRepo, tripRepo, lockStore)

	_, err := svc.BookRequest(ctx, validBookRequest(), "tok")
	if !errors.Is(err, service.ErrCabNotAvailable) {
		t.Errorf("expected ErrCabNotAvailable when lock is held, got %v", err)
	}
	// The claim must not even be attempted.
	if cabRepo.ClaimStatusCallCount != 0 {
		t.Errorf("expected no claim attempt, got %d", cabRepo.ClaimStatusCallCount)
	}
}

func TestBook_TripCreateFailureReleasesCab(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	sessionRepo, cabRepo, customerRepo, tripRepo, lockStore := bookingFixture()
	tripRepo.CreateError = errors.New("insert failed")

	svc := newBookingService(sessionRepo, cabRepo, NewMockDriverRepository(), customerRepo, tripRepo, lockStore)

	_, err := svc.BookRequest(ctx, validBookRequest(), "tok")
	if err == nil {
		t.Fatal("expected an error")
	}

	// The claim must be rolled back so the cab is bookable again.
	if got := cabRepo.GetCab("cab-1").Status; got != domain.CabStatusAvailable {
		t.Errorf("expected cab released to %s, got %s", domain.CabStatusAvailable, got)
	}
}

func TestBook_InvalidDateTime(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	sessionRepo, cabRepo, customerRepo, tripRepo, lockStore := bookingFixture()
	svc := newBookingService(sessionRepo, cabRepo, NewMockDriverRepository(), customerRepo, tripRepo, lockStore)

	req := validBookRequest()
	req.FromDateTime = "2024-12-25T10:00:00Z"

	_, err := svc.BookRequest(ctx, req, "tok")
	if !errors.Is(err, service.ErrInvalidDateTime) {
		t.Errorf("expected ErrInvalidDateTime, got %v", err)
	}
}

func TestBook_FromAfterTo(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	sessionRepo, cabRepo, customerRepo, tripRepo, lockStore := bookingFixture()
	svc := newBookingService(sessionRepo, cabRepo, NewMockDriverRepository(), customerRepo, tripRepo, lockStore)

	req := validBookRequest()
	req.FromDateTime = "25-12-2024 14:00"
	req.ToDateTime = "25-12-2024 12:00"

	_, err := svc.BookRequest(ctx, req, "tok")
	if !errors.Is(err, service.ErrInvalidDateRange) {
		t.Errorf("expected ErrInvalidDateRange, got %v", err)
	}
}

func TestBook_UnknownCab(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	sessionRepo, cabRepo, customerRepo, tripRepo, lockStore := bookingFixture()
	svc := newBookingService(sessionRepo, cabRepo, NewMockDriverRepository(), customerRepo, tripRepo, lockStore)

	req := validBookRequest()
	req.CabID = "no-such-cab"

	_, err := svc.BookRequest(ctx, req, "tok")
	if !errors.Is(err, service.ErrCabNotFound) {
		t.Errorf("expected ErrCabNotFound, got %v", err)
	}
}
