package tests

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"cab/internal/domain"
	"cab/internal/redis"
	"cab/internal/repository"
)

// The mocks keep their entities in slices so results come back in
// registration order, the same order the SQL repositories produce.

// ──────────────────────────────────────────────
// MOCK SESSION REPOSITORY
// ──────────────────────────────────────────────

// MockSessionRepository is a mock implementation of SessionRepository.
type MockSessionRepository struct {
	mu       sync.RWMutex
	sessions []*domain.Session

	// Counters for verification
	CreateCallCount int32
	DeleteCallCount int32

	// Error injection
	CreateError error
	DeleteError error
}

// NewMockSessionRepository creates a new mock session repository.
func NewMockSessionRepository() *MockSessionRepository {
	return &MockSessionRepository{}
}

// AddSession adds a session to the mock repository.
func (m *MockSessionRepository) AddSession(session *domain.Session) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions = append(m.sessions, session)
}

func (m *MockSessionRepository) Create(ctx context.Context, session *domain.Session) error {
	atomic.AddInt32(&m.CreateCallCount, 1)
	if m.CreateError != nil {
		return m.CreateError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions = append(m.sessions, session)
	return nil
}

func (m *MockSessionRepository) GetByToken(ctx context.Context, token string) (*domain.Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, s := range m.sessions {
		if s.Token == token {
			copy := *s
			return &copy, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *MockSessionRepository) GetByTokenAndRole(ctx context.Context, token string, role domain.Role) (*domain.Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, s := range m.sessions {
		if s.Token == token && s.Role == role {
			copy := *s
			return &copy, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *MockSessionRepository) GetByPrincipalID(ctx context.Context, principalID string) (*domain.Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, s := range m.sessions {
		if s.PrincipalID == principalID {
			copy := *s
			return &copy, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *MockSessionRepository) Delete(ctx context.Context, token string) error {
	atomic.AddInt32(&m.DeleteCallCount, 1)
	if m.DeleteError != nil {
		return m.DeleteError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, s := range m.sessions {
		if s.Token == token {
			m.sessions = append(m.sessions[:i], m.sessions[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

// ──────────────────────────────────────────────
// MOCK ADMIN REPOSITORY
// ──────────────────────────────────────────────

// MockAdminRepository is a mock implementation of AdminRepository.
type MockAdminRepository struct {
	mu     sync.RWMutex
	admins []*domain.Admin

	CreateCallCount int32
	CreateError     error
}

// NewMockAdminRepository creates a new mock admin repository.
func NewMockAdminRepository() *MockAdminRepository {
	return &MockAdminRepository{}
}

// AddAdmin adds an admin to the mock repository.
func (m *MockAdminRepository) AddAdmin(admin *domain.Admin) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.admins = append(m.admins, admin)
}

func (m *MockAdminRepository) Create(ctx context.Context, admin *domain.Admin) error {
	atomic.AddInt32(&m.CreateCallCount, 1)
	if m.CreateError != nil {
		return m.CreateError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.admins = append(m.admins, admin)
	return nil
}

func (m *MockAdminRepository) GetByID(ctx context.Context, id string) (*domain.Admin, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, a := range m.admins {
		if a.ID == id {
			copy := *a
			return &copy, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *MockAdminRepository) GetByEmail(ctx context.Context, email string) (*domain.Admin, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, a := range m.admins {
		if a.Email == email {
			copy := *a
			return &copy, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *MockAdminRepository) Update(ctx context.Context, admin *domain.Admin) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, a := range m.admins {
		if a.Email == admin.Email {
			admin.ID = a.ID
			m.admins[i] = admin
			return nil
		}
	}
	return repository.ErrNotFound
}

func (m *MockAdminRepository) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, a := range m.admins {
		if a.ID == id {
			m.admins = append(m.admins[:i], m.admins[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

// ──────────────────────────────────────────────
// MOCK CUSTOMER REPOSITORY
// ──────────────────────────────────────────────

// MockCustomerRepository is a mock implementation of CustomerRepository.
type MockCustomerRepository struct {
	mu        sync.RWMutex
	customers []*domain.Customer

	CreateCallCount int32
	CreateError     error
}

// NewMockCustomerRepository creates a new mock customer repository.
func NewMockCustomerRepository() *MockCustomerRepository {
	return &MockCustomerRepository{}
}

// AddCustomer adds a customer to the mock repository.
func (m *MockCustomerRepository) AddCustomer(customer *domain.Customer) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.customers = append(m.customers, customer)
}

func (m *MockCustomerRepository) Create(ctx context.Context, customer *domain.Customer) error {
	atomic.AddInt32(&m.CreateCallCount, 1)
	if m.CreateError != nil {
		return m.CreateError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.customers = append(m.customers, customer)
	return nil
}

func (m *MockCustomerRepository) GetByID(ctx context.Context, id string) (*domain.Customer, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, c := range m.customers {
		if c.ID == id {
			copy := *c
			return &copy, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *MockCustomerRepository) GetByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, c := range m.customers {
		if c.Email == email {
			copy := *c
			return &copy, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *MockCustomerRepository) GetAll(ctx context.Context) ([]*domain.Customer, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]*domain.Customer, 0, len(m.customers))
	for _, c := range m.customers {
		copy := *c
		result = append(result, &copy)
	}
	return result, nil
}

func (m *MockCustomerRepository) Update(ctx context.Context, customer *domain.Customer) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, c := range m.customers {
		if c.Email == customer.Email {
			customer.ID = c.ID
			m.customers[i] = customer
			return nil
		}
	}
	return repository.ErrNotFound
}

func (m *MockCustomerRepository) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, c := range m.customers {
		if c.ID == id {
			m.customers = append(m.customers[:i], m.customers[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

// ──────────────────────────────────────────────
// MOCK DRIVER REPOSITORY
// ──────────────────────────────────────────────

// MockDriverRepository is a mock implementation of DriverRepository.
type MockDriverRepository struct {
	mu      sync.RWMutex
	drivers []*domain.Driver

	CreateCallCount       int32
	UpdateStatusCallCount int32

	CreateError       error
	UpdateStatusError error
}

// NewMockDriverRepository creates a new mock driver repository.
func NewMockDriverRepository() *MockDriverRepository {
	return &MockDriverRepository{}
}

// AddDriver adds a driver to the mock repository.
func (m *MockDriverRepository) AddDriver(driver *domain.Driver) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.drivers = append(m.drivers, driver)
}

func (m *MockDriverRepository) Create(ctx context.Context, driver *domain.Driver) error {
	atomic.AddInt32(&m.CreateCallCount, 1)
	if m.CreateError != nil {
		return m.CreateError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.drivers = append(m.drivers, driver)
	return nil
}

func (m *MockDriverRepository) GetByID(ctx context.Context, id string) (*domain.Driver, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, d := range m.drivers {
		if d.ID == id {
			copy := *d
			return &copy, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *MockDriverRepository) GetByEmail(ctx context.Context, email string) (*domain.Driver, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, d := range m.drivers {
		if d.Email == email {
			copy := *d
			return &copy, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *MockDriverRepository) GetByLicenceNo(ctx context.Context, licenceNo string) (*domain.Driver, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, d := range m.drivers {
		if d.LicenceNo == licenceNo {
			copy := *d
			return &copy, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *MockDriverRepository) GetAll(ctx context.Context) ([]*domain.Driver, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]*domain.Driver, 0, len(m.drivers))
	for _, d := range m.drivers {
		copy := *d
		result = append(result, &copy)
	}
	return result, nil
}

func (m *MockDriverRepository) GetByLocationAndStatus(ctx context.Context, location string, status domain.DriverStatus) ([]*domain.Driver, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var result []*domain.Driver
	for _, d := range m.drivers {
		if d.CurrLocation == location && d.Status == status {
			copy := *d
			result = append(result, &copy)
		}
	}
	return result, nil
}

func (m *MockDriverRepository) Update(ctx context.Context, driver *domain.Driver) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, d := range m.drivers {
		if d.Email == driver.Email {
			driver.ID = d.ID
			m.drivers[i] = driver
			return nil
		}
	}
	return repository.ErrNotFound
}

func (m *MockDriverRepository) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, d := range m.drivers {
		if d.ID == id {
			m.drivers = append(m.drivers[:i], m.drivers[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (m *MockDriverRepository) UpdateStatus(ctx context.Context, id string, status domain.DriverStatus) error {
	atomic.AddInt32(&m.UpdateStatusCallCount, 1)
	if m.UpdateStatusError != nil {
		return m.UpdateStatusError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, d := range m.drivers {
		if d.ID == id {
			d.Status = status
			return nil
		}
	}
	return repository.ErrNotFound
}

// GetDriver returns the stored driver for test assertions.
func (m *MockDriverRepository) GetDriver(id string) *domain.Driver {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, d := range m.drivers {
		if d.ID == id {
			return d
		}
	}
	return nil
}

// ──────────────────────────────────────────────
// MOCK CAB REPOSITORY
// ──────────────────────────────────────────────

// MockCabRepository is a mock implementation of CabRepository.
type MockCabRepository struct {
	mu   sync.RWMutex
	cabs []*domain.Cab

	CreateCallCount       int32
	ClaimStatusCallCount  int32
	UpdateStatusCallCount int32

	CreateError       error
	ClaimStatusError  error
	UpdateStatusError error
}

// NewMockCabRepository creates a new mock cab repository.
func NewMockCabRepository() *MockCabRepository {
	return &MockCabRepository{}
}

// AddCab adds a cab to the mock repository.
func (m *MockCabRepository) AddCab(cab *domain.Cab) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cabs = append(m.cabs, cab)
}

func (m *MockCabRepository) Create(ctx context.Context, cab *domain.Cab) error {
	atomic.AddInt32(&m.CreateCallCount, 1)
	if m.CreateError != nil {
		return m.CreateError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cabs = append(m.cabs, cab)
	return nil
}

func (m *MockCabRepository) GetByID(ctx context.Context, id string) (*domain.Cab, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, c := range m.cabs {
		if c.ID == id {
			copy := *c
			return &copy, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *MockCabRepository) GetByCarNumber(ctx context.Context, carNumber string) (*domain.Cab, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, c := range m.cabs {
		if c.CarNumber == carNumber {
			copy := *c
			return &copy, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *MockCabRepository) GetAll(ctx context.Context) ([]*domain.Cab, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]*domain.Cab, 0, len(m.cabs))
	for _, c := range m.cabs {
		copy := *c
		result = append(result, &copy)
	}
	return result, nil
}

func (m *MockCabRepository) Update(ctx context.Context, cab *domain.Cab) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, c := range m.cabs {
		if c.CarNumber == cab.CarNumber {
			cab.ID = c.ID
			m.cabs[i] = cab
			return nil
		}
	}
	return repository.ErrNotFound
}

func (m *MockCabRepository) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, c := range m.cabs {
		if c.ID == id {
			m.cabs = append(m.cabs[:i], m.cabs[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (m *MockCabRepository) ClaimStatus(ctx context.Context, id string, from, to domain.CabStatus) (bool, error) {
	atomic.AddInt32(&m.ClaimStatusCallCount, 1)
	if m.ClaimStatusError != nil {
		return false, m.ClaimStatusError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, c := range m.cabs {
		if c.ID == id {
			if c.Status != from {
				return false, nil
			}
			c.Status = to
			return true, nil
		}
	}
	return false, repository.ErrNotFound
}

func (m *MockCabRepository) UpdateStatus(ctx context.Context, id string, status domain.CabStatus) error {
	atomic.AddInt32(&m.UpdateStatusCallCount, 1)
	if m.UpdateStatusError != nil {
		return m.UpdateStatusError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, c := range m.cabs {
		if c.ID == id {
			c.Status = status
			return nil
		}
	}
	return repository.ErrNotFound
}

// GetCab returns the stored cab for test assertions.
func (m *MockCabRepository) GetCab(id string) *domain.Cab {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, c := range m.cabs {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// ──────────────────────────────────────────────
// MOCK TRIP REPOSITORY
// ──────────────────────────────────────────────

// MockTripRepository is a mock implementation of TripRepository.
type MockTripRepository struct {
	mu    sync.RWMutex
	trips []*domain.TripBooking

	CreateCallCount int32
	UpdateCallCount int32

	CreateError error
	UpdateError error
}

// NewMockTripRepository creates a new mock trip repository.
func NewMockTripRepository() *MockTripRepository {
	return &MockTripRepository{}
}

// AddTrip adds a trip to the mock repository.
func (m *MockTripRepository) AddTrip(trip *domain.TripBooking) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.trips = append(m.trips, trip)
}

func (m *MockTripRepository) Create(ctx context.Context, trip *domain.TripBooking) error {
	atomic.AddInt32(&m.CreateCallCount, 1)
	if m.CreateError != nil {
		return m.CreateError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.trips = append(m.trips, trip)
	return nil
}

func (m *MockTripRepository) GetByID(ctx context.Context, id string) (*domain.TripBooking, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, t := range m.trips {
		if t.ID == id {
			copy := *t
			return &copy, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *MockTripRepository) GetAll(ctx context.Context) ([]*domain.TripBooking, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]*domain.TripBooking, 0, len(m.trips))
	for _, t := range m.trips {
		copy := *t
		result = append(result, &copy)
	}
	return result, nil
}

func (m *MockTripRepository) GetByCustomerID(ctx context.Context, customerID string) ([]*domain.TripBooking, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var result []*domain.TripBooking
	for _, t := range m.trips {
		if t.CustomerID == customerID {
			copy := *t
			result = append(result, &copy)
		}
	}
	return result, nil
}

func (m *MockTripRepository) Update(ctx context.Context, trip *domain.TripBooking) error {
	atomic.AddInt32(&m.UpdateCallCount, 1)
	if m.UpdateError != nil {
		return m.UpdateError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, t := range m.trips {
		if t.ID == trip.ID {
			m.trips[i] = trip
			return nil
		}
	}
	return repository.ErrNotFound
}

// GetTrip returns the stored trip for test assertions.
func (m *MockTripRepository) GetTrip(id string) *domain.TripBooking {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, t := range m.trips {
		if t.ID == id {
			return t
		}
	}
	return nil
}

// ──────────────────────────────────────────────
// MOCK LOCK STORE
// ──────────────────────────────────────────────

// MockLockStore is a mock implementation of the Redis lock store.
type MockLockStore struct {
	mu    sync.Mutex
	locks map[string]bool

	AcquireCallCount int32
	ReleaseCallCount int32

	AcquireError error
	// AcquireResult forces the next acquire to fail when set to false.
	AcquireResult bool
}

// NewMockLockStore creates a new mock lock store.
func NewMockLockStore() *MockLockStore {
	return &MockLockStore{
		locks:         make(map[string]bool),
		AcquireResult: true,
	}
}

func (m *MockLockStore) AcquireCabLock(ctx context.Context, cabID string, ttl time.Duration) (bool, error) {
	atomic.AddInt32(&m.AcquireCallCount, 1)
	if m.AcquireError != nil {
		return false, m.AcquireError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.AcquireResult {
		return false, nil
	}
	if m.locks[cabID] {
		return false, nil
	}
	m.locks[cabID] = true
	return true, nil
}

func (m *MockLockStore) ReleaseCabLock(ctx context.Context, cabID string) error {
	atomic.AddInt32(&m.ReleaseCallCount, 1)
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.locks, cabID)
	return nil
}

// Ensure the mocks satisfy the interfaces they stand in for.
var (
	_ repository.SessionRepository  = (*MockSessionRepository)(nil)
	_ repository.AdminRepository    = (*MockAdminRepository)(nil)
	_ repository.CustomerRepository = (*MockCustomerRepository)(nil)
	_ repository.DriverRepository   = (*MockDriverRepository)(nil)
	_ repository.CabRepository      = (*MockCabRepository)(nil)
	_ repository.TripRepository     = (*MockTripRepository)(nil)
	_ redis.LockStoreInterface      = (*MockLockStore)(nil)
)
