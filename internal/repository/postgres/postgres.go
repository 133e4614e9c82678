package postgres

import (
	"database/sql"

	"carrental-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.UserRepository
	repository.RentalRepository
	repository.ComplaintRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                  db,
		UserRepository:      NewUserRepository(db),
		RentalRepository:    NewRentalRepository(db),
		ComplaintRepository: NewComplaintRepository(db),
	}
}
