package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"cab/internal/domain"
	"cab/internal/repository"
)

// CabService handles the cab registry.
type CabService struct {
	cabRepo     repository.CabRepository
	sessionRepo repository.SessionRepository
}

// NewCabService creates a new CabService.
func NewCabService(cabRepo repository.CabRepository, sessionRepo repository.SessionRepository) *CabService {
	return &CabService{cabRepo: cabRepo, sessionRepo: sessionRepo}
}

// InsertCab registers a new cab. The car number must be unique.
func (s *CabService) InsertCab(ctx context.Context, cab *domain.Cab) (*domain.Cab, error) {
	_, err := s.cabRepo.GetByCarNumber(ctx, cab.CarNumber)
	if err == nil {
		return nil, ErrCabAlreadyRegistered
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	if cab.ID == "" {
		cab.ID = uuid.New().String()
	}
	if cab.Status == "" {
		cab.Status = domain.CabStatusAvailable
	}

	if err := s.cabRepo.Create(ctx, cab); err != nil {
		return nil, err
	}

	return cab, nil
}

// UpdateCab updates a cab matched by car number. Admin only.
func (s *CabService) UpdateCab(ctx context.Context, cab *domain.Cab, token string) (*domain.Cab, error) {
	if _, err := resolveAdminSession(ctx, s.sessionRepo, token); err != nil {
		return nil, err
	}

	if _, err := s.cabRepo.GetByCarNumber(ctx, cab.CarNumber); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrCabNotFound
		}
		return nil, err
	}

	if err := s.cabRepo.Update(ctx, cab); err != nil {
		return nil, err
	}

	return cab, nil
}

// DeleteCab removes a cab by ID. Admin only.
func (s *CabService) DeleteCab(ctx context.Context, cabID, token string) (*domain.Cab, error) {
	if _, err := resolveAdminSession(ctx, s.sessionRepo, token); err != nil {
		return nil, err
	}

	cab, err := s.cabRepo.GetByID(ctx, cabID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrCabNotFound
		}
		return nil, err
	}

	if err := s.cabRepo.Delete(ctx, cabID); err != nil {
		return nil, err
	}

	return cab, nil
}

// ViewCabsOfType returns all cabs of the given type. Admin only.
// An empty result is an error, per product policy.
func (s *CabService) ViewCabsOfType(ctx context.Context, carType, token string) ([]*domain.Cab, error) {
	if _, err := resolveAdminSession(ctx, s.sessionRepo, token); err != nil {
		return nil, err
	}

	cabs, err := s.cabRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	var ofType []*domain.Cab
	for _, cab := range cabs {
		if cab.CarType == carType {
			ofType = append(ofType, cab)
		}
	}

	if len(ofType) == 0 {
		return nil, ErrNoCabsOfType
	}

	return ofType, nil
}

// CountCabsOfType returns the number of cabs of the given type. Admin only.
// Unlike the list views, zero is a valid answer here.
func (s *CabService) CountCabsOfType(ctx context.Context, carType, token string) (int, error) {
	if _, err := resolveAdminSession(ctx, s.sessionRepo, token); err != nil {
		return 0, err
	}

	cabs, err := s.cabRepo.GetAll(ctx)
	if err != nil {
		return 0, err
	}

	count := 0
	for _, cab := range cabs {
		if cab.CarType == carType {
			count++
		}
	}

	return count, nil
}
