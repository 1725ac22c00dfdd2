package domain

// DriverStatus represents the current status of a driver.
type DriverStatus string

const (
	DriverStatusAvailable DriverStatus = "AVAILABLE"
	DriverStatusAssigned  DriverStatus = "ASSIGNED"
)

// Driver represents a driver in the system.
type Driver struct {
	ID           string
	Name         string
	Email        string
	Password     string
	Role         Role
	LicenceNo    string // unique
	CurrLocation string
	Status       DriverStatus
	Rating       float64
}
