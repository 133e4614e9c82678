package domain

import (
	"encoding/json"
	"time"
)

type RentalStatus string

const (
	RentalStatusActive    RentalStatus = "ACTIVE"
	RentalStatusCancelled RentalStatus = "CANCELLED"
	RentalStatusCompleted RentalStatus = "COMPLETED"
)

// Terminal reports whether the status admits no further transitions.
func (s RentalStatus) Terminal() bool {
	return s == RentalStatusCancelled || s == RentalStatusCompleted
}

type Rental struct {
	ID      int32 `json:"id"`
	OwnerID int32 `json:"owner_id"`
	CarID   int32 `json:"car_id"`
	// Calendar dates; time-of-day is always midnight UTC.
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	// Server-derived on every create/update, never accepted from the client.
	TotalCostCents int32        `json:"total_cost_cents"`
	Status         RentalStatus `json:"status"`
	CreatedOn      time.Time    `json:"created_on"`
	UpdatedOn      time.Time    `json:"updated_on"`
}

// EditableUntil is the instant the amend/cancel window closes. Clients render
// their countdown from this value; the service re-checks it on every request.
func (r *Rental) EditableUntil() time.Time {
	return r.CreatedOn.Add(EditWindow)
}

// MarshalJSON includes the derived editable_until so clients never compute
// the window themselves.
func (r Rental) MarshalJSON() ([]byte, error) {
	type alias Rental
	return json.Marshal(struct {
		alias
		EditableUntil time.Time `json:"editable_until"`
	}{
		alias:         alias(r),
		EditableUntil: r.EditableUntil(),
	})
}
