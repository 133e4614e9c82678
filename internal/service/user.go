package service

import (
	"context"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) GetProfile(ctx context.Context, userID int32) (*domain.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

func (s *userService) UpdateProfile(ctx context.Context, requesterID, userID int32, upd ProfileUpdate) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	// Only the owner can touch their profile.
	if requesterID != userID {
		return nil, domain.ErrForbidden
	}

	if upd.FirstName != "" {
		user.FirstName = upd.FirstName
	}
	if upd.LastName != "" {
		user.LastName = upd.LastName
	}
	if upd.PhoneNumber != "" {
		user.PhoneNumber = upd.PhoneNumber
	}
	if upd.Address != "" {
		user.Address = upd.Address
	}
	if upd.Gender != "" {
		user.Gender = upd.Gender
	}
	if upd.DateOfBirth != "" {
		user.DateOfBirth = upd.DateOfBirth
	}
	if upd.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(upd.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) DeleteAccount(ctx context.Context, requesterID, userID int32) error {
	if requesterID != userID {
		return domain.ErrForbidden
	}
	return s.userRepo.Delete(ctx, userID)
}
