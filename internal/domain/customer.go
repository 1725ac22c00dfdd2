package domain

// Customer represents a registered customer. Trip bookings reference the
// customer by ID; the customer record does not embed its trips.
type Customer struct {
	ID       string
	Name     string
	Email    string // unique
	Password string
	Role     Role
	Address  string
	Mobile   string
}
