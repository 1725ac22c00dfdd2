package repository

import (
	"context"

	"cab/internal/domain"
)

// DriverRepository defines the persistence operations for drivers.
type DriverRepository interface {
	// Create adds a new driver.
	Create(ctx context.Context, driver *domain.Driver) error

	// GetByID retrieves a driver by ID.
	GetByID(ctx context.Context, id string) (*domain.Driver, error)

	// GetByEmail retrieves a driver by email.
	GetByEmail(ctx context.Context, email string) (*domain.Driver, error)

	// GetByLicenceNo retrieves a driver by licence number.
	GetByLicenceNo(ctx context.Context, licenceNo string) (*domain.Driver, error)

	// GetAll retrieves all drivers in registration order.
	GetAll(ctx context.Context) ([]*domain.Driver, error)

	// GetByLocationAndStatus retrieves drivers at a location with the given
	// status, in registration order.
	GetByLocationAndStatus(ctx context.Context, location string, status domain.DriverStatus) ([]*domain.Driver, error)

	// Update updates an existing driver.
	Update(ctx context.Context, driver *domain.Driver) error

	// Delete removes a driver by ID.
	Delete(ctx context.Context, id string) error

	// UpdateStatus updates the status of a driver.
	UpdateStatus(ctx context.Context, id string, status domain.DriverStatus) error
}
