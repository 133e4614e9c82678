package service

import (
	"context"

	"carrental-backend/internal/catalog"
	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository"
	"carrental-backend/internal/utils"
)

type rentalService struct {
	rentalRepo repository.RentalRepository
	cat        catalog.Catalog
	clock      Clock
}

func NewRentalService(rentalRepo repository.RentalRepository, cat catalog.Catalog, clock Clock) RentalService {
	return &rentalService{
		rentalRepo: rentalRepo,
		cat:        cat,
		clock:      clock,
	}
}

func (s *rentalService) CreateRental(ctx context.Context, ownerID, carID int32, startDateStr, endDateStr string) (*domain.Rental, error) {
	start, err := utils.ParseDate(startDateStr)
	if err != nil {
		return nil, domain.ErrInvalidRange
	}
	end, err := utils.ParseDate(endDateStr)
	if err != nil {
		return nil, domain.ErrInvalidRange
	}

	car, err := s.cat.GetCar(ctx, carID)
	if err != nil {
		return nil, err
	}

	totalCost, err := utils.CalculateRentalCost(start, end, car)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	rental := &domain.Rental{
		OwnerID:        ownerID,
		CarID:          carID,
		StartDate:      start,
		EndDate:        end,
		TotalCostCents: totalCost,
		Status:         domain.RentalStatusActive,
		CreatedOn:      now,
		UpdatedOn:      now,
	}

	if err := s.rentalRepo.Create(ctx, rental); err != nil {
		return nil, err
	}
	return rental, nil
}

// authorizeMutation runs the shared gate for update and cancel. The order is
// deliberate: existence, then ownership, then window, then status. A
// non-owner always sees ErrForbidden and learns nothing about the rental's
// lifecycle, and an expired window is reported even for terminal rentals.
func (s *rentalService) authorizeMutation(rt *domain.Rental, requesterID int32) error {
	if rt.OwnerID != requesterID {
		return domain.ErrForbidden
	}
	if !domain.WithinEditWindow(rt.CreatedOn, s.clock.Now()) {
		return domain.ErrWindowExpired
	}
	if rt.Status != domain.RentalStatusActive {
		return domain.ErrInvalidState
	}
	return nil
}

func (s *rentalService) UpdateRental(ctx context.Context, requesterID, rentalID int32, startDateStr, endDateStr string) (*domain.Rental, error) {
	rt, err := s.rentalRepo.GetByID(ctx, rentalID)
	if err != nil {
		return nil, err
	}
	if err := s.authorizeMutation(rt, requesterID); err != nil {
		return nil, err
	}

	start, err := utils.ParseDate(startDateStr)
	if err != nil {
		return nil, domain.ErrInvalidRange
	}
	end, err := utils.ParseDate(endDateStr)
	if err != nil {
		return nil, domain.ErrInvalidRange
	}

	// Reprice against the rate in effect right now, not the one captured at
	// creation.
	car, err := s.cat.GetCar(ctx, rt.CarID)
	if err != nil {
		return nil, err
	}
	totalCost, err := utils.CalculateRentalCost(start, end, car)
	if err != nil {
		return nil, err
	}

	rt.StartDate = start
	rt.EndDate = end
	rt.TotalCostCents = totalCost
	rt.UpdatedOn = s.clock.Now()

	if err := s.rentalRepo.Replace(ctx, rt); err != nil {
		return nil, err
	}
	return rt, nil
}

func (s *rentalService) CancelRental(ctx context.Context, requesterID, rentalID int32) (*domain.Rental, error) {
	rt, err := s.rentalRepo.GetByID(ctx, rentalID)
	if err != nil {
		return nil, err
	}
	if err := s.authorizeMutation(rt, requesterID); err != nil {
		return nil, err
	}

	rt.Status = domain.RentalStatusCancelled
	rt.UpdatedOn = s.clock.Now()

	// Replace re-checks ACTIVE inside the write, so a cancel racing another
	// cancel/update loses with ErrInvalidState rather than double-writing.
	if err := s.rentalRepo.Replace(ctx, rt); err != nil {
		return nil, err
	}
	return rt, nil
}

func (s *rentalService) GetRental(ctx context.Context, requesterID, rentalID int32) (*domain.Rental, error) {
	rt, err := s.rentalRepo.GetByID(ctx, rentalID)
	if err != nil {
		return nil, err
	}
	if rt.OwnerID != requesterID {
		return nil, domain.ErrForbidden
	}
	return rt, nil
}

func (s *rentalService) ListRentals(ctx context.Context, requesterID int32) ([]domain.Rental, error) {
	return s.rentalRepo.ListByOwner(ctx, requesterID)
}
