package catalog

import (
	"context"

	"carrental-backend/internal/domain"
)

// Catalog is the read-only source of car descriptors and daily rates. The
// rental service resolves every car reference through it and prices rentals
// from the rate it returns at the moment of the call.
type Catalog interface {
	GetCar(ctx context.Context, id int32) (*domain.Car, error)
	ListCars(ctx context.Context, kind domain.CarKind) ([]domain.Car, error)
}

// Static serves a fixed fleet from memory. The marketplace's fleet is
// curated, small, and changes only with a deploy, so it ships in code.
type Static struct {
	byID  map[int32]*domain.Car
	order []int32
}

// NewStatic builds a catalog over the given fleet.
func NewStatic(fleet []domain.Car) *Static {
	s := &Static{byID: make(map[int32]*domain.Car, len(fleet))}
	for i := range fleet {
		car := fleet[i]
		s.byID[car.ID] = &car
		s.order = append(s.order, car.ID)
	}
	return s
}

// NewDefault builds a catalog over the standard fleet.
func NewDefault() *Static {
	return NewStatic(DefaultFleet())
}

func (s *Static) GetCar(ctx context.Context, id int32) (*domain.Car, error) {
	car, ok := s.byID[id]
	if !ok {
		return nil, domain.ErrUnknownCar
	}
	c := *car
	return &c, nil
}

// ListCars returns the fleet in catalog order, optionally filtered by kind.
// An empty kind returns every car.
func (s *Static) ListCars(ctx context.Context, kind domain.CarKind) ([]domain.Car, error) {
	var cars []domain.Car
	for _, id := range s.order {
		car := s.byID[id]
		if kind != "" && car.Kind != kind {
			continue
		}
		cars = append(cars, *car)
	}
	return cars, nil
}
