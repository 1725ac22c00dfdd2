package repository

import (
	"context"

	"cab/internal/domain"
)

// CabRepository defines the persistence operations for cabs.
type CabRepository interface {
	// Create adds a new cab.
	Create(ctx context.Context, cab *domain.Cab) error

	// GetByID retrieves a cab by ID.
	GetByID(ctx context.Context, id string) (*domain.Cab, error)

	// GetByCarNumber retrieves a cab by its registration number.
	GetByCarNumber(ctx context.Context, carNumber string) (*domain.Cab, error)

	// GetAll retrieves all cabs in registration order.
	GetAll(ctx context.Context) ([]*domain.Cab, error)

	// Update updates an existing cab.
	Update(ctx context.Context, cab *domain.Cab) error

	// Delete removes a cab by ID.
	Delete(ctx context.Context, id string) error

	// ClaimStatus atomically moves a cab from one status to another.
	// Returns false if the cab was not in the expected status, so two
	// concurrent bookings cannot both claim the same cab.
	ClaimStatus(ctx context.Context, id string, from, to domain.CabStatus) (bool, error)

	// UpdateStatus unconditionally sets the status of a cab.
	UpdateStatus(ctx context.Context, id string, status domain.CabStatus) error
}
