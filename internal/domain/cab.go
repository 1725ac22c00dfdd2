package domain

// CabStatus represents the current availability of a cab.
type CabStatus string

const (
	// CabStatusAvailable means the cab can be searched and booked.
	CabStatusAvailable CabStatus = "AVAILABLE"
	// CabStatusPending means a booking has claimed the cab but no driver is
	// assigned yet.
	CabStatusPending CabStatus = "PENDING"
	// CabStatusBooked means the cab is on a confirmed trip.
	CabStatusBooked CabStatus = "BOOKED"
)

// Cab represents a registered cab.
type Cab struct {
	ID           string
	CarName      string
	CarNumber    string // unique registration number
	CarType      string
	PerKmRate    float64
	CurrLocation string
	Status       CabStatus
}
