package repository

import (
	"context"

	"cab/internal/domain"
)

// TripRepository defines the persistence operations for trip bookings.
type TripRepository interface {
	// Create persists a new trip booking.
	Create(ctx context.Context, trip *domain.TripBooking) error

	// GetByID retrieves a trip booking by ID.
	GetByID(ctx context.Context, id string) (*domain.TripBooking, error)

	// GetAll retrieves all trip bookings in booking order.
	GetAll(ctx context.Context) ([]*domain.TripBooking, error)

	// GetByCustomerID retrieves all trip bookings owned by a customer,
	// in booking order.
	GetByCustomerID(ctx context.Context, customerID string) ([]*domain.TripBooking, error)

	// Update updates an existing trip booking.
	Update(ctx context.Context, trip *domain.TripBooking) error
}
