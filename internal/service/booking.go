package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"cab/internal/domain"
	"cab/internal/redis"
	"cab/internal/repository"
	"cab/internal/repository/postgres"
)

// cabLockTTL bounds how long a booking may hold the redis cab lock.
const cabLockTTL = 10 * time.Second

// BookingService orchestrates the trip booking workflow: cab search, the
// booking step that claims a cab, driver assignment, and the terminal
// complete/cancel transitions.
type BookingService struct {
	db           *sql.DB
	sessionRepo  repository.SessionRepository
	cabRepo      repository.CabRepository
	driverRepo   repository.DriverRepository
	customerRepo repository.CustomerRepository
	tripRepo     repository.TripRepository
	lockStore    redis.LockStoreInterface
}

// NewBookingService creates a new BookingService. db and lockStore may be nil;
// without a db handle the multi-entity transitions run against the injected
// repositories instead of a transaction.
func NewBookingService(
	db *sql.DB,
	sessionRepo repository.SessionRepository,
	cabRepo repository.CabRepository,
	driverRepo repository.DriverRepository,
	customerRepo repository.CustomerRepository,
	tripRepo repository.TripRepository,
	lockStore redis.LockStoreInterface,
) *BookingService {
	return &BookingService{
		db:           db,
		sessionRepo:  sessionRepo,
		cabRepo:      cabRepo,
		driverRepo:   driverRepo,
		customerRepo: customerRepo,
		tripRepo:     tripRepo,
		lockStore:    lockStore,
	}
}

// SearchByLocation returns the cabs available at the pickup location, in
// registry order. Requires a resolved session of any role.
func (s *BookingService) SearchByLocation(ctx context.Context, pickupLocation, token string) ([]*domain.Cab, error) {
	if _, err := resolveSession(ctx, s.sessionRepo, token); err != nil {
		return nil, err
	}

	cabs, err := s.cabRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	var available []*domain.Cab
	for _, cab := range cabs {
		if cab.Status == domain.CabStatusAvailable && cab.CurrLocation == pickupLocation {
			available = append(available, cab)
		}
	}

	if len(available) == 0 {
		return nil, ErrNoCabAvailable
	}

	return available, nil
}

// BookTripRequest contains the parameters for booking a cab.
type BookTripRequest struct {
	CabID          string
	PickupLocation string
	FromDateTime   string
	ToDateTime     string
	DistanceKm     float64
}

// BookRequest books a cab for the customer behind the session. The cab is
// claimed with a conditional AVAILABLE→PENDING status update, so of two
// concurrent bookings for the same cab exactly one succeeds; the loser gets
// ErrCabNotAvailable. The redis lock shortens the window further but the
// conditional update is what guarantees the invariant.
func (s *BookingService) BookRequest(ctx context.Context, req BookTripRequest, token string) (*domain.TripBooking, error) {
	session, err := resolveSession(ctx, s.sessionRepo, token)
	if err != nil {
		return nil, err
	}

	customer, err := s.customerRepo.GetByID(ctx, session.PrincipalID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}

	from, err := parseDateTime(req.FromDateTime)
	if err != nil {
		return nil, err
	}
	to, err := parseDateTime(req.ToDateTime)
	if err != nil {
		return nil, err
	}
	if from.After(to) {
		return nil, ErrInvalidDateRange
	}

	cab, err := s.cabRepo.GetByID(ctx, req.CabID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrCabNotFound
		}
		return nil, err
	}

	if cab.Status != domain.CabStatusAvailable || cab.CurrLocation != req.PickupLocation {
		return nil, ErrCabNotAvailable
	}

	if s.lockStore != nil {
		locked, err := s.lockStore.AcquireCabLock(ctx, cab.ID, cabLockTTL)
		if err != nil {
			return nil, err
		}
		if !locked {
			// Another booking is claiming this cab.
			return nil, ErrCabNotAvailable
		}
		defer func() { _ = s.lockStore.ReleaseCabLock(ctx, cab.ID) }()
	}

	claimed, err := s.cabRepo.ClaimStatus(ctx, cab.ID, domain.CabStatusAvailable, domain.CabStatusPending)
	if err != nil {
		return nil, err
	}
	if !claimed {
		return nil, ErrCabNotAvailable
	}

	trip := &domain.TripBooking{
		ID:             uuid.New().String(),
		CustomerID:     customer.ID,
		CabID:          cab.ID,
		PickupLocation: req.PickupLocation,
		FromDateTime:   req.FromDateTime,
		ToDateTime:     req.ToDateTime,
		DistanceKm:     req.DistanceKm,
		Status:         domain.TripStatusPending,
	}

	if err := s.tripRepo.Create(ctx, trip); err != nil {
		// Release the claim so the cab does not stay PENDING with no trip.
		_ = s.cabRepo.UpdateStatus(ctx, cab.ID, domain.CabStatusAvailable)
		return nil, err
	}

	return trip, nil
}

// AssignDriver confirms a pending trip booking by attaching the first
// available driver at the trip's pickup location. Admin only.
func (s *BookingService) AssignDriver(ctx context.Context, tripID, token string) (*domain.TripBooking, error) {
	if _, err := resolveAdminSession(ctx, s.sessionRepo, token); err != nil {
		return nil, err
	}

	trip, err := s.tripRepo.GetByID(ctx, tripID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTripNotFound
		}
		return nil, err
	}

	if trip.Status != domain.TripStatusPending {
		return nil, ErrTripNotPending
	}

	drivers, err := s.driverRepo.GetByLocationAndStatus(ctx, trip.PickupLocation, domain.DriverStatusAvailable)
	if err != nil {
		return nil, err
	}

	if len(drivers) == 0 {
		return nil, ErrNoDriverAvailable
	}

	// First candidate in registry order; no further tie-break.
	driver := drivers[0]

	trip.DriverID = driver.ID
	trip.Status = domain.TripStatusConfirmed

	err = s.inTx(ctx, func(trips repository.TripRepository, cabs repository.CabRepository, drvs repository.DriverRepository) error {
		if err := drvs.UpdateStatus(ctx, driver.ID, domain.DriverStatusAssigned); err != nil {
			return err
		}
		if err := trips.Update(ctx, trip); err != nil {
			return err
		}
		return cabs.UpdateStatus(ctx, trip.CabID, domain.CabStatusBooked)
	})
	if err != nil {
		return nil, err
	}

	return trip, nil
}

// CompleteTrip moves a confirmed trip to COMPLETED, bills it at the cab's
// per-km rate, and releases the cab and driver.
func (s *BookingService) CompleteTrip(ctx context.Context, tripID, token string) (*domain.TripBooking, error) {
	if _, err := resolveSession(ctx, s.sessionRepo, token); err != nil {
		return nil, err
	}

	trip, err := s.tripRepo.GetByID(ctx, tripID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTripNotFound
		}
		return nil, err
	}

	if trip.Status != domain.TripStatusConfirmed {
		return nil, ErrTripNotConfirmed
	}

	cab, err := s.cabRepo.GetByID(ctx, trip.CabID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrCabNotFound
		}
		return nil, err
	}

	trip.Status = domain.TripStatusCompleted
	trip.Bill = trip.DistanceKm * cab.PerKmRate

	err = s.inTx(ctx, func(trips repository.TripRepository, cabs repository.CabRepository, drvs repository.DriverRepository) error {
		if err := trips.Update(ctx, trip); err != nil {
			return err
		}
		if err := cabs.UpdateStatus(ctx, trip.CabID, domain.CabStatusAvailable); err != nil {
			return err
		}
		return drvs.UpdateStatus(ctx, trip.DriverID, domain.DriverStatusAvailable)
	})
	if err != nil {
		return nil, err
	}

	return trip, nil
}

// CancelTrip aborts a pending or confirmed trip and releases the cab and, if
// one was assigned, the driver.
func (s *BookingService) CancelTrip(ctx context.Context, tripID, token string) (*domain.TripBooking, error) {
	if _, err := resolveSession(ctx, s.sessionRepo, token); err != nil {
		return nil, err
	}

	trip, err := s.tripRepo.GetByID(ctx, tripID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTripNotFound
		}
		return nil, err
	}

	if trip.Status != domain.TripStatusPending && trip.Status != domain.TripStatusConfirmed {
		return nil, ErrTripCannotBeCancelled
	}

	trip.Status = domain.TripStatusCancelled

	err = s.inTx(ctx, func(trips repository.TripRepository, cabs repository.CabRepository, drvs repository.DriverRepository) error {
		if err := trips.Update(ctx, trip); err != nil {
			return err
		}
		if err := cabs.UpdateStatus(ctx, trip.CabID, domain.CabStatusAvailable); err != nil {
			return err
		}
		if trip.DriverID != "" {
			return drvs.UpdateStatus(ctx, trip.DriverID, domain.DriverStatusAvailable)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return trip, nil
}

// inTx runs fn against transaction-scoped repositories when a database handle
// is present, otherwise against the service's own repositories.
func (s *BookingService) inTx(ctx context.Context, fn func(repository.TripRepository, repository.CabRepository, repository.DriverRepository) error) error {
	if s.db == nil {
		return fn(s.tripRepo, s.cabRepo, s.driverRepo)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	err = fn(
		postgres.NewTripRepositoryWithTx(tx),
		postgres.NewCabRepositoryWithTx(tx),
		postgres.NewDriverRepositoryWithTx(tx),
	)
	if err != nil {
		return err
	}

	err = tx.Commit()
	return err
}

// parseDateTime parses the textual timestamp format used on trip bookings.
func parseDateTime(value string) (time.Time, error) {
	t, err := time.Parse(domain.DateTimeLayout, value)
	if err != nil {
		return time.Time{}, ErrInvalidDateTime
	}
	return t, nil
}
