package domain

// Admin represents an administrator account.
type Admin struct {
	ID       string
	Name     string
	Email    string // unique
	Password string
	Role     Role
	Address  string
}
