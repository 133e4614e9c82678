package postgres

import (
	"context"
	"database/sql"
	"errors"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository"
)

type complaintRepository struct {
	db *sql.DB
}

func NewComplaintRepository(db *sql.DB) repository.ComplaintRepository {
	return &complaintRepository{db: db}
}

func (r *complaintRepository) Create(ctx context.Context, c *domain.Complaint) error {
	query := `INSERT INTO complaints (owner_id, subject, message, status, priority, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	return r.db.QueryRowContext(ctx, query, c.OwnerID, c.Subject, c.Message, c.Status, c.Priority, c.CreatedOn, c.UpdatedOn).Scan(&c.ID)
}

func (r *complaintRepository) GetByID(ctx context.Context, id int32) (*domain.Complaint, error) {
	c := &domain.Complaint{}
	query := `SELECT id, owner_id, subject, message, status, priority, created_on, updated_on FROM complaints WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&c.ID, &c.OwnerID, &c.Subject, &c.Message, &c.Status, &c.Priority, &c.CreatedOn, &c.UpdatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *complaintRepository) ListByOwner(ctx context.Context, ownerID int32) ([]domain.Complaint, error) {
	query := `SELECT id, owner_id, subject, message, status, priority, created_on, updated_on
	          FROM complaints WHERE owner_id = $1 ORDER BY created_on DESC`
	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var complaints []domain.Complaint
	for rows.Next() {
		var c domain.Complaint
		if err := rows.Scan(&c.ID, &c.OwnerID, &c.Subject, &c.Message, &c.Status, &c.Priority, &c.CreatedOn, &c.UpdatedOn); err != nil {
			return nil, err
		}
		complaints = append(complaints, c)
	}
	return complaints, rows.Err()
}

// Update rewrites a complaint but only while the stored row is still
// PENDING, mirroring the guarded rental replace.
func (r *complaintRepository) Update(ctx context.Context, c *domain.Complaint) error {
	query := `UPDATE complaints SET subject=$1, message=$2, status=$3, priority=$4, updated_on=$5
	          WHERE id=$6 AND status=$7`
	res, err := r.db.ExecContext(ctx, query, c.Subject, c.Message, c.Status, c.Priority, c.UpdatedOn, c.ID, domain.ComplaintStatusPending)
	if err != nil {
		return err
	}
	return r.resolveGuard(ctx, res, c.ID)
}

func (r *complaintRepository) Delete(ctx context.Context, id int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM complaints WHERE id=$1 AND status=$2`, id, domain.ComplaintStatusPending)
	if err != nil {
		return err
	}
	return r.resolveGuard(ctx, res, id)
}

func (r *complaintRepository) resolveGuard(ctx context.Context, res sql.Result, id int32) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		var exists bool
		if err := r.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM complaints WHERE id=$1)`, id).Scan(&exists); err != nil {
			return err
		}
		if !exists {
			return domain.ErrNotFound
		}
		return domain.ErrInvalidState
	}
	return nil
}
