package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"cab/internal/domain"
	"cab/internal/repository"
)

// AdminService handles the admin registry and the admin-facing trip reports.
type AdminService struct {
	adminRepo    repository.AdminRepository
	customerRepo repository.CustomerRepository
	cabRepo      repository.CabRepository
	tripRepo     repository.TripRepository
	sessionRepo  repository.SessionRepository
}

// NewAdminService creates a new AdminService.
func NewAdminService(
	adminRepo repository.AdminRepository,
	customerRepo repository.CustomerRepository,
	cabRepo repository.CabRepository,
	tripRepo repository.TripRepository,
	sessionRepo repository.SessionRepository,
) *AdminService {
	return &AdminService{
		adminRepo:    adminRepo,
		customerRepo: customerRepo,
		cabRepo:      cabRepo,
		tripRepo:     tripRepo,
		sessionRepo:  sessionRepo,
	}
}

// InsertAdmin registers a new admin. The email must be unique and the record
// must carry the admin role tag.
func (s *AdminService) InsertAdmin(ctx context.Context, admin *domain.Admin) (*domain.Admin, error) {
	if admin.Role != domain.RoleAdmin {
		return nil, ErrWrongRole
	}

	_, err := s.adminRepo.GetByEmail(ctx, admin.Email)
	if err == nil {
		return nil, ErrAdminAlreadyRegistered
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	if admin.ID == "" {
		admin.ID = uuid.New().String()
	}

	if err := s.adminRepo.Create(ctx, admin); err != nil {
		return nil, err
	}

	return admin, nil
}

// UpdateAdmin updates an admin matched by email. Admin only.
func (s *AdminService) UpdateAdmin(ctx context.Context, admin *domain.Admin, token string) (*domain.Admin, error) {
	if _, err := resolveAdminSession(ctx, s.sessionRepo, token); err != nil {
		return nil, err
	}

	if _, err := s.adminRepo.GetByEmail(ctx, admin.Email); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrAdminNotFound
		}
		return nil, err
	}

	if err := s.adminRepo.Update(ctx, admin); err != nil {
		return nil, err
	}

	return admin, nil
}

// DeleteAdmin removes an admin by ID. Admin only.
func (s *AdminService) DeleteAdmin(ctx context.Context, adminID, token string) (*domain.Admin, error) {
	if _, err := resolveAdminSession(ctx, s.sessionRepo, token); err != nil {
		return nil, err
	}

	admin, err := s.adminRepo.GetByID(ctx, adminID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrAdminNotFound
		}
		return nil, err
	}

	if err := s.adminRepo.Delete(ctx, adminID); err != nil {
		return nil, err
	}

	return admin, nil
}

// GetAllTrips returns every trip booking. Admin only. An empty collection is
// an error, per product policy.
func (s *AdminService) GetAllTrips(ctx context.Context, token string) ([]*domain.TripBooking, error) {
	if _, err := resolveAdminSession(ctx, s.sessionRepo, token); err != nil {
		return nil, err
	}

	trips, err := s.tripRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	if len(trips) == 0 {
		return nil, ErrNoTrips
	}

	return trips, nil
}

// GetTripsCabwise returns the trips whose cab is of the given type. Admin only.
func (s *AdminService) GetTripsCabwise(ctx context.Context, carType, token string) ([]*domain.TripBooking, error) {
	if _, err := resolveAdminSession(ctx, s.sessionRepo, token); err != nil {
		return nil, err
	}

	trips, err := s.tripRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	if len(trips) == 0 {
		return nil, ErrNoTrips
	}

	cabs, err := s.cabRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	typeByCabID := make(map[string]string, len(cabs))
	for _, cab := range cabs {
		typeByCabID[cab.ID] = cab.CarType
	}

	var ofType []*domain.TripBooking
	for _, trip := range trips {
		if typeByCabID[trip.CabID] == carType {
			ofType = append(ofType, trip)
		}
	}

	if len(ofType) == 0 {
		return nil, ErrNoTripsOfCabType
	}

	return ofType, nil
}

// GetTripsCustomerwise returns the trips booked by one customer. Admin only.
func (s *AdminService) GetTripsCustomerwise(ctx context.Context, customerID, token string) ([]*domain.TripBooking, error) {
	if _, err := resolveAdminSession(ctx, s.sessionRepo, token); err != nil {
		return nil, err
	}

	if _, err := s.customerRepo.GetByID(ctx, customerID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}

	trips, err := s.tripRepo.GetByCustomerID(ctx, customerID)
	if err != nil {
		return nil, err
	}

	if len(trips) == 0 {
		return nil, ErrNoTripsForCustomer
	}

	return trips, nil
}

// GetTripsForDays returns a customer's trips whose start falls inside the
// inclusive [from, to] window. Admin only. Malformed window bounds are
// rejected with ErrInvalidDateTime.
func (s *AdminService) GetTripsForDays(ctx context.Context, customerID, fromDateTime, toDateTime, token string) ([]*domain.TripBooking, error) {
	if _, err := resolveAdminSession(ctx, s.sessionRepo, token); err != nil {
		return nil, err
	}

	from, err := parseDateTime(fromDateTime)
	if err != nil {
		return nil, err
	}
	to, err := parseDateTime(toDateTime)
	if err != nil {
		return nil, err
	}
	if from.After(to) {
		return nil, ErrInvalidDateRange
	}

	if _, err := s.customerRepo.GetByID(ctx, customerID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}

	trips, err := s.tripRepo.GetByCustomerID(ctx, customerID)
	if err != nil {
		return nil, err
	}

	var inWindow []*domain.TripBooking
	for _, trip := range trips {
		start, err := parseDateTime(trip.FromDateTime)
		if err != nil {
			return nil, err
		}
		if !start.Before(from) && !start.After(to) {
			inWindow = append(inWindow, trip)
		}
	}

	if len(inWindow) == 0 {
		return nil, ErrNoTripsInWindow
	}

	return inWindow, nil
}
