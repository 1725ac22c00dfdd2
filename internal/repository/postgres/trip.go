package postgres

import (
	"context"
	"database/sql"
	"errors"

	"cab/internal/domain"
	"cab/internal/repository"
)

// TripRepository is a PostgreSQL implementation of repository.TripRepository.
type TripRepository struct {
	q Querier
}

// NewTripRepository creates a new PostgreSQL trip booking repository.
func NewTripRepository(db *sql.DB) *TripRepository {
	return &TripRepository{q: db}
}

// NewTripRepositoryWithTx creates a trip booking repository using a transaction.
func NewTripRepositoryWithTx(tx *sql.Tx) *TripRepository {
	return &TripRepository{q: tx}
}

const tripColumns = `id, customer_id, cab_id, COALESCE(driver_id, ''), pickup_location, from_datetime, to_datetime, distance_km, bill, status`

// Create persists a new trip booking.
func (r *TripRepository) Create(ctx context.Context, trip *domain.TripBooking) error {
	query := `
		INSERT INTO trip_bookings (id, customer_id, cab_id, driver_id, pickup_location, from_datetime, to_datetime, distance_km, bill, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	var driverID sql.NullString
	if trip.DriverID != "" {
		driverID = sql.NullString{String: trip.DriverID, Valid: true}
	}

	_, err := r.q.ExecContext(ctx, query,
		trip.ID,
		trip.CustomerID,
		trip.CabID,
		driverID,
		trip.PickupLocation,
		trip.FromDateTime,
		trip.ToDateTime,
		trip.DistanceKm,
		trip.Bill,
		trip.Status,
	)

	return err
}

// GetByID retrieves a trip booking by ID.
func (r *TripRepository) GetByID(ctx context.Context, id string) (*domain.TripBooking, error) {
	query := `SELECT ` + tripColumns + ` FROM trip_bookings WHERE id = $1`

	var trip domain.TripBooking
	err := r.q.QueryRowContext(ctx, query, id).Scan(
		&trip.ID,
		&trip.CustomerID,
		&trip.CabID,
		&trip.DriverID,
		&trip.PickupLocation,
		&trip.FromDateTime,
		&trip.ToDateTime,
		&trip.DistanceKm,
		&trip.Bill,
		&trip.Status,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return &trip, nil
}

// GetAll retrieves all trip bookings in booking order.
func (r *TripRepository) GetAll(ctx context.Context) ([]*domain.TripBooking, error) {
	query := `SELECT ` + tripColumns + ` FROM trip_bookings ORDER BY created_at`
	rows, err := r.q.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanTrips(rows)
}

// GetByCustomerID retrieves all trip bookings owned by a customer.
func (r *TripRepository) GetByCustomerID(ctx context.Context, customerID string) ([]*domain.TripBooking, error) {
	query := `SELECT ` + tripColumns + ` FROM trip_bookings WHERE customer_id = $1 ORDER BY created_at`
	rows, err := r.q.QueryContext(ctx, query, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanTrips(rows)
}

// Update updates an existing trip booking.
func (r *TripRepository) Update(ctx context.Context, trip *domain.TripBooking) error {
	query := `
		UPDATE trip_bookings
		SET driver_id = $1, pickup_location = $2, from_datetime = $3, to_datetime = $4, distance_km = $5, bill = $6, status = $7
		WHERE id = $8
	`

	var driverID sql.NullString
	if trip.DriverID != "" {
		driverID = sql.NullString{String: trip.DriverID, Valid: true}
	}

	result, err := r.q.ExecContext(ctx, query,
		driverID,
		trip.PickupLocation,
		trip.FromDateTime,
		trip.ToDateTime,
		trip.DistanceKm,
		trip.Bill,
		trip.Status,
		trip.ID,
	)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return repository.ErrNotFound
	}

	return nil
}

func scanTrips(rows *sql.Rows) ([]*domain.TripBooking, error) {
	var trips []*domain.TripBooking
	for rows.Next() {
		var trip domain.TripBooking
		if err := rows.Scan(
			&trip.ID,
			&trip.CustomerID,
			&trip.CabID,
			&trip.DriverID,
			&trip.PickupLocation,
			&trip.FromDateTime,
			&trip.ToDateTime,
			&trip.DistanceKm,
			&trip.Bill,
			&trip.Status,
		); err != nil {
			return nil, err
		}
		trips = append(trips, &trip)
	}
	return trips, rows.Err()
}
