package domain

// TripStatus represents the current status of a trip booking.
type TripStatus string

const (
	TripStatusPending   TripStatus = "PENDING"
	TripStatusConfirmed TripStatus = "CONFIRMED"
	TripStatusCompleted TripStatus = "COMPLETED"
	TripStatusCancelled TripStatus = "CANCELLED"
)

// DateTimeLayout is the textual timestamp format used on trip bookings,
// e.g. "25-12-2024 18:30".
const DateTimeLayout = "02-01-2006 15:04"

// TripBooking represents a single ride request from creation through
// completion or cancellation. DriverID is empty until an admin confirms the
// booking.
type TripBooking struct {
	ID             string
	CustomerID     string
	CabID          string
	DriverID       string
	PickupLocation string
	FromDateTime   string // DateTimeLayout
	ToDateTime     string // DateTimeLayout
	DistanceKm     float64
	Bill           float64
	Status         TripStatus
}
