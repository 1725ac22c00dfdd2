package repository

import (
	"context"

	"cab/internal/domain"
)

// CustomerRepository defines the persistence operations for customers.
type CustomerRepository interface {
	// Create adds a new customer.
	Create(ctx context.Context, customer *domain.Customer) error

	// GetByID retrieves a customer by ID.
	GetByID(ctx context.Context, id string) (*domain.Customer, error)

	// GetByEmail retrieves a customer by email.
	GetByEmail(ctx context.Context, email string) (*domain.Customer, error)

	// GetAll retrieves all customers in registration order.
	GetAll(ctx context.Context) ([]*domain.Customer, error)

	// Update updates an existing customer.
	Update(ctx context.Context, customer *domain.Customer) error

	// Delete removes a customer by ID.
	Delete(ctx context.Context, id string) error
}
