package service

import (
	"context"
	"errors"
	"sort"

	"github.com/google/uuid"

	"cab/internal/domain"
	"cab/internal/repository"
)

// bestDriverMargin is how far below the top rating a driver may sit and still
// count as "best".
const bestDriverMargin = 0.5

// DriverService handles the driver registry.
type DriverService struct {
	driverRepo  repository.DriverRepository
	sessionRepo repository.SessionRepository
}

// NewDriverService creates a new DriverService.
func NewDriverService(driverRepo repository.DriverRepository, sessionRepo repository.SessionRepository) *DriverService {
	return &DriverService{driverRepo: driverRepo, sessionRepo: sessionRepo}
}

// InsertDriver registers a new driver. The licence number must be unique and
// the record must carry the driver role tag.
func (s *DriverService) InsertDriver(ctx context.Context, driver *domain.Driver) (*domain.Driver, error) {
	if driver.Role != domain.RoleDriver {
		return nil, ErrWrongRole
	}

	_, err := s.driverRepo.GetByLicenceNo(ctx, driver.LicenceNo)
	if err == nil {
		return nil, ErrDriverAlreadyRegistered
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	if driver.ID == "" {
		driver.ID = uuid.New().String()
	}
	if driver.Status == "" {
		driver.Status = domain.DriverStatusAvailable
	}

	if err := s.driverRepo.Create(ctx, driver); err != nil {
		return nil, err
	}

	return driver, nil
}

// UpdateDriver updates a driver matched by email. Requires a resolved session.
func (s *DriverService) UpdateDriver(ctx context.Context, driver *domain.Driver, token string) (*domain.Driver, error) {
	if _, err := resolveSession(ctx, s.sessionRepo, token); err != nil {
		return nil, err
	}

	if _, err := s.driverRepo.GetByEmail(ctx, driver.Email); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrDriverNotFound
		}
		return nil, err
	}

	if err := s.driverRepo.Update(ctx, driver); err != nil {
		return nil, err
	}

	return driver, nil
}

// DeleteDriver removes a driver by ID. Requires a resolved session.
func (s *DriverService) DeleteDriver(ctx context.Context, driverID, token string) (*domain.Driver, error) {
	if _, err := resolveSession(ctx, s.sessionRepo, token); err != nil {
		return nil, err
	}

	driver, err := s.driverRepo.GetByID(ctx, driverID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrDriverNotFound
		}
		return nil, err
	}

	if err := s.driverRepo.Delete(ctx, driverID); err != nil {
		return nil, err
	}

	return driver, nil
}

// ViewDriver retrieves a driver by ID. Requires a resolved session.
func (s *DriverService) ViewDriver(ctx context.Context, driverID, token string) (*domain.Driver, error) {
	if _, err := resolveSession(ctx, s.sessionRepo, token); err != nil {
		return nil, err
	}

	driver, err := s.driverRepo.GetByID(ctx, driverID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrDriverNotFound
		}
		return nil, err
	}

	return driver, nil
}

// ViewBestDriver returns all drivers rated within bestDriverMargin of the top
// rating, best first. An empty registry is an error.
func (s *DriverService) ViewBestDriver(ctx context.Context, token string) ([]*domain.Driver, error) {
	if _, err := resolveSession(ctx, s.sessionRepo, token); err != nil {
		return nil, err
	}

	drivers, err := s.driverRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	if len(drivers) == 0 {
		return nil, ErrNoBestDriver
	}

	maxRating := drivers[0].Rating
	for _, driver := range drivers[1:] {
		if driver.Rating > maxRating {
			maxRating = driver.Rating
		}
	}

	var best []*domain.Driver
	for _, driver := range drivers {
		if driver.Rating >= maxRating-bestDriverMargin {
			best = append(best, driver)
		}
	}

	sort.SliceStable(best, func(i, j int) bool {
		return best[i].Rating > best[j].Rating
	})

	return best, nil
}
