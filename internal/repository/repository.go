package repository

import (
	"context"

	"carrental-backend/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int32) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	// GetByLogin resolves a user by username or email, whichever matches.
	GetByLogin(ctx context.Context, login string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id int32) error
}

type RentalRepository interface {
	// Create assigns the rental its id. All other fields, including
	// CreatedOn, are stored exactly as supplied.
	Create(ctx context.Context, rental *domain.Rental) error
	GetByID(ctx context.Context, id int32) (*domain.Rental, error)
	ListByOwner(ctx context.Context, ownerID int32) ([]domain.Rental, error)
	// Replace overwrites the mutable fields of a rental, but only if the
	// stored row is still ACTIVE. The guard runs inside the UPDATE itself so
	// two concurrent writers cannot both get past the status check; the
	// second one receives domain.ErrInvalidState.
	Replace(ctx context.Context, rental *domain.Rental) error
}

type ComplaintRepository interface {
	Create(ctx context.Context, complaint *domain.Complaint) error
	GetByID(ctx context.Context, id int32) (*domain.Complaint, error)
	// ListByOwner returns the owner's complaints, newest first.
	ListByOwner(ctx context.Context, ownerID int32) ([]domain.Complaint, error)
	// Update and Delete are guarded on status = PENDING the same way
	// RentalRepository.Replace is guarded on ACTIVE.
	Update(ctx context.Context, complaint *domain.Complaint) error
	Delete(ctx context.Context, id int32) error
}
