package service

import (
	"context"
	"time"

	"carrental-backend/internal/domain"
)

// Clock supplies the server's notion of now. Every window and status check
// runs against it, never against anything the client sent; it is an
// interface so tests can pin time.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now().UTC() }

// SystemClock returns the wall-clock implementation used in production.
func SystemClock() Clock { return systemClock{} }

// RegisterInput carries the fields of a signup request. The password arrives
// in the clear and is hashed inside the service.
type RegisterInput struct {
	Username    string
	FirstName   string
	LastName    string
	Email       string
	Password    string
	PhoneNumber string
	Address     string
	Gender      string
	DateOfBirth string
}

// ProfileUpdate carries profile fields to change; empty strings leave the
// stored value untouched.
type ProfileUpdate struct {
	FirstName   string
	LastName    string
	PhoneNumber string
	Address     string
	Gender      string
	DateOfBirth string
	Password    string
}

// ComplaintUpdate carries complaint fields to change; empty strings leave
// the stored value untouched.
type ComplaintUpdate struct {
	Subject  string
	Message  string
	Priority domain.ComplaintPriority
}

type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, string, string, error) // user, access, refresh
	Login(ctx context.Context, login, password string) (*domain.User, string, string, error)
	RefreshToken(ctx context.Context, refresh string) (string, string, error)
}

type UserService interface {
	GetProfile(ctx context.Context, userID int32) (*domain.User, error)
	UpdateProfile(ctx context.Context, requesterID, userID int32, upd ProfileUpdate) (*domain.User, error)
	DeleteAccount(ctx context.Context, requesterID, userID int32) error
}

type RentalService interface {
	CreateRental(ctx context.Context, ownerID, carID int32, startDate, endDate string) (*domain.Rental, error)
	UpdateRental(ctx context.Context, requesterID, rentalID int32, startDate, endDate string) (*domain.Rental, error)
	CancelRental(ctx context.Context, requesterID, rentalID int32) (*domain.Rental, error)
	GetRental(ctx context.Context, requesterID, rentalID int32) (*domain.Rental, error)
	ListRentals(ctx context.Context, requesterID int32) ([]domain.Rental, error)
}

type ComplaintService interface {
	CreateComplaint(ctx context.Context, ownerID int32, subject, message string, priority domain.ComplaintPriority) (*domain.Complaint, error)
	ListComplaints(ctx context.Context, ownerID int32) ([]domain.Complaint, error)
	UpdateComplaint(ctx context.Context, requesterID, complaintID int32, upd ComplaintUpdate) (*domain.Complaint, error)
	DeleteComplaint(ctx context.Context, requesterID, complaintID int32) error
}

type EmailService interface {
	SendComplaintReceived(ctx context.Context, email, firstName, subject string) error
	SendPickupReminder(ctx context.Context, email, firstName, carName, startDate string) error
}
