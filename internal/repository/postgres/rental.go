package postgres

import (
	"context"
	"database/sql"
	"errors"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository"
)

type rentalRepository struct {
	db *sql.DB
}

func NewRentalRepository(db *sql.DB) repository.RentalRepository {
	return &rentalRepository{db: db}
}

func (r *rentalRepository) Create(ctx context.Context, rt *domain.Rental) error {
	query := `INSERT INTO rentals (owner_id, car_id, start_date, end_date, total_cost_cents, status, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	return r.db.QueryRowContext(ctx, query, rt.OwnerID, rt.CarID, rt.StartDate, rt.EndDate, rt.TotalCostCents, rt.Status, rt.CreatedOn, rt.UpdatedOn).Scan(&rt.ID)
}

func (r *rentalRepository) GetByID(ctx context.Context, id int32) (*domain.Rental, error) {
	rt := &domain.Rental{}
	query := `SELECT id, owner_id, car_id, start_date, end_date, total_cost_cents, status, created_on, updated_on FROM rentals WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&rt.ID, &rt.OwnerID, &rt.CarID, &rt.StartDate, &rt.EndDate, &rt.TotalCostCents, &rt.Status, &rt.CreatedOn, &rt.UpdatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return rt, nil
}

func (r *rentalRepository) ListByOwner(ctx context.Context, ownerID int32) ([]domain.Rental, error) {
	query := `SELECT id, owner_id, car_id, start_date, end_date, total_cost_cents, status, created_on, updated_on
	          FROM rentals WHERE owner_id = $1 ORDER BY created_on DESC`
	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rentals []domain.Rental
	for rows.Next() {
		var rt domain.Rental
		if err := rows.Scan(&rt.ID, &rt.OwnerID, &rt.CarID, &rt.StartDate, &rt.EndDate, &rt.TotalCostCents, &rt.Status, &rt.CreatedOn, &rt.UpdatedOn); err != nil {
			return nil, err
		}
		rentals = append(rentals, rt)
	}
	return rentals, rows.Err()
}

// Replace writes the mutable fields back, guarded on the row still being
// ACTIVE. The guard and the write are one statement, so a concurrent
// update/cancel that committed first makes this one report ErrInvalidState
// instead of silently clobbering the terminal status.
func (r *rentalRepository) Replace(ctx context.Context, rt *domain.Rental) error {
	query := `UPDATE rentals SET start_date=$1, end_date=$2, total_cost_cents=$3, status=$4, updated_on=$5
	          WHERE id=$6 AND status=$7`
	res, err := r.db.ExecContext(ctx, query, rt.StartDate, rt.EndDate, rt.TotalCostCents, rt.Status, rt.UpdatedOn, rt.ID, domain.RentalStatusActive)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		// Either the rental vanished or it already reached a terminal status.
		var exists bool
		if err := r.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM rentals WHERE id=$1)`, rt.ID).Scan(&exists); err != nil {
			return err
		}
		if !exists {
			return domain.ErrNotFound
		}
		return domain.ErrInvalidState
	}
	return nil
}
