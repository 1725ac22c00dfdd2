package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"cab/internal/domain"
	"cab/internal/repository"
)

// CustomerService handles the customer registry.
type CustomerService struct {
	customerRepo repository.CustomerRepository
	sessionRepo  repository.SessionRepository
}

// NewCustomerService creates a new CustomerService.
func NewCustomerService(customerRepo repository.CustomerRepository, sessionRepo repository.SessionRepository) *CustomerService {
	return &CustomerService{customerRepo: customerRepo, sessionRepo: sessionRepo}
}

// InsertCustomer registers a new customer. The email must be unique and the
// record must carry the customer role tag.
func (s *CustomerService) InsertCustomer(ctx context.Context, customer *domain.Customer) (*domain.Customer, error) {
	if customer.Role != domain.RoleCustomer {
		return nil, ErrWrongRole
	}

	_, err := s.customerRepo.GetByEmail(ctx, customer.Email)
	if err == nil {
		return nil, ErrCustomerAlreadyRegistered
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	if customer.ID == "" {
		customer.ID = uuid.New().String()
	}

	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, err
	}

	return customer, nil
}

// UpdateCustomer updates a customer matched by email. Requires a resolved session.
func (s *CustomerService) UpdateCustomer(ctx context.Context, customer *domain.Customer, token string) (*domain.Customer, error) {
	if _, err := resolveSession(ctx, s.sessionRepo, token); err != nil {
		return nil, err
	}

	if _, err := s.customerRepo.GetByEmail(ctx, customer.Email); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}

	if err := s.customerRepo.Update(ctx, customer); err != nil {
		return nil, err
	}

	return customer, nil
}

// DeleteCustomer removes a customer by ID. Admin only.
func (s *CustomerService) DeleteCustomer(ctx context.Context, customerID, token string) (*domain.Customer, error) {
	if _, err := resolveAdminSession(ctx, s.sessionRepo, token); err != nil {
		return nil, err
	}

	customer, err := s.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}

	if err := s.customerRepo.Delete(ctx, customerID); err != nil {
		return nil, err
	}

	return customer, nil
}

// ViewAllCustomers returns every registered customer. Admin only.
// An empty registry is an error, per product policy.
func (s *CustomerService) ViewAllCustomers(ctx context.Context, token string) ([]*domain.Customer, error) {
	if _, err := resolveAdminSession(ctx, s.sessionRepo, token); err != nil {
		return nil, err
	}

	customers, err := s.customerRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	if len(customers) == 0 {
		return nil, ErrNoCustomers
	}

	return customers, nil
}

// ViewCustomer retrieves a customer by ID. Requires a resolved session.
func (s *CustomerService) ViewCustomer(ctx context.Context, customerID, token string) (*domain.Customer, error) {
	if _, err := resolveSession(ctx, s.sessionRepo, token); err != nil {
		return nil, err
	}

	customer, err := s.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}

	return customer, nil
}
