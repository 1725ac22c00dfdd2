package postgres

import (
	"context"
	"database/sql"
	"errors"

	"cab/internal/domain"
	"cab/internal/repository"
)

// CabRepository is a PostgreSQL implementation of repository.CabRepository.
type CabRepository struct {
	q Querier
}

// NewCabRepository creates a new PostgreSQL cab repository.
func NewCabRepository(db *sql.DB) *CabRepository {
	return &CabRepository{q: db}
}

// NewCabRepositoryWithTx creates a cab repository using a transaction.
func NewCabRepositoryWithTx(tx *sql.Tx) *CabRepository {
	return &CabRepository{q: tx}
}

// Create adds a new cab.
func (r *CabRepository) Create(ctx context.Context, cab *domain.Cab) error {
	query := `
		INSERT INTO cabs (id, car_name, car_number, car_type, per_km_rate, curr_location, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.q.ExecContext(ctx, query,
		cab.ID, cab.CarName, cab.CarNumber, cab.CarType, cab.PerKmRate, cab.CurrLocation, cab.Status)
	return err
}

// GetByID retrieves a cab by ID.
func (r *CabRepository) GetByID(ctx context.Context, id string) (*domain.Cab, error) {
	query := `
		SELECT id, COALESCE(car_name, ''), car_number, COALESCE(car_type, ''), per_km_rate, curr_location, status
		FROM cabs WHERE id = $1
	`
	return r.scanOne(r.q.QueryRowContext(ctx, query, id))
}

// GetByCarNumber retrieves a cab by its registration number.
func (r *CabRepository) GetByCarNumber(ctx context.Context, carNumber string) (*domain.Cab, error) {
	query := `
		SELECT id, COALESCE(car_name, ''), car_number, COALESCE(car_type, ''), per_km_rate, curr_location, status
		FROM cabs WHERE car_number = $1
	`
	return r.scanOne(r.q.QueryRowContext(ctx, query, carNumber))
}

// GetAll retrieves all cabs in registration order.
func (r *CabRepository) GetAll(ctx context.Context) ([]*domain.Cab, error) {
	query := `
		SELECT id, COALESCE(car_name, ''), car_number, COALESCE(car_type, ''), per_km_rate, curr_location, status
		FROM cabs ORDER BY created_at
	`
	rows, err := r.q.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cabs []*domain.Cab
	for rows.Next() {
		var cab domain.Cab
		if err := rows.Scan(&cab.ID, &cab.CarName, &cab.CarNumber, &cab.CarType, &cab.PerKmRate, &cab.CurrLocation, &cab.Status); err != nil {
			return nil, err
		}
		cabs = append(cabs, &cab)
	}
	return cabs, rows.Err()
}

// Update updates an existing cab.
func (r *CabRepository) Update(ctx context.Context, cab *domain.Cab) error {
	query := `
		UPDATE cabs
		SET car_name = $1, car_type = $2, per_km_rate = $3, curr_location = $4, status = $5
		WHERE car_number = $6
	`
	result, err := r.q.ExecContext(ctx, query,
		cab.CarName, cab.CarType, cab.PerKmRate, cab.CurrLocation, cab.Status, cab.CarNumber)
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

// Delete removes a cab by ID.
func (r *CabRepository) Delete(ctx context.Context, id string) error {
	result, err := r.q.ExecContext(ctx, `DELETE FROM cabs WHERE id = $1`, id)
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

// ClaimStatus atomically moves a cab from one status to another.
// The WHERE clause on the expected prior status makes the transition a
// compare-and-set: of two concurrent bookings only one sees rowsAffected == 1.
func (r *CabRepository) ClaimStatus(ctx context.Context, id string, from, to domain.CabStatus) (bool, error) {
	query := `UPDATE cabs SET status = $1 WHERE id = $2 AND status = $3`

	result, err := r.q.ExecContext(ctx, query, to, id, from)
	if err != nil {
		return false, err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return rowsAffected == 1, nil
}

// UpdateStatus unconditionally sets the status of a cab.
func (r *CabRepository) UpdateStatus(ctx context.Context, id string, status domain.CabStatus) error {
	result, err := r.q.ExecContext(ctx, `UPDATE cabs SET status = $1 WHERE id = $2`, status, id)
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

func (r *CabRepository) scanOne(row *sql.Row) (*domain.Cab, error) {
	var cab domain.Cab
	err := row.Scan(
		&cab.ID,
		&cab.CarName,
		&cab.CarNumber,
		&cab.CarType,
		&cab.PerKmRate,
		&cab.CurrLocation,
		&cab.Status,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return &cab, nil
}
