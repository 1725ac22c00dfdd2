package repository

import (
	"context"

	"cab/internal/domain"
)

// AdminRepository defines the persistence operations for admins.
type AdminRepository interface {
	// Create adds a new admin.
	Create(ctx context.Context, admin *domain.Admin) error

	// GetByID retrieves an admin by ID.
	GetByID(ctx context.Context, id string) (*domain.Admin, error)

	// GetByEmail retrieves an admin by email.
	GetByEmail(ctx context.Context, email string) (*domain.Admin, error)

	// Update updates an existing admin.
	Update(ctx context.Context, admin *domain.Admin) error

	// Delete removes an admin by ID.
	Delete(ctx context.Context, id string) error
}
