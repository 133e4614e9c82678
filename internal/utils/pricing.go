package utils

import (
	"fmt"
	"math"
	"time"

	"carrental-backend/internal/domain"
)

const dateLayout = "2006-01-02"

// ParseDate converts a yyyy-mm-dd formatted string into a midnight-UTC time.
func ParseDate(dateStr string) (time.Time, error) {
	t, err := time.ParseInLocation(dateLayout, dateStr, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected yyyy-mm-dd: %w", dateStr, err)
	}
	return t, nil
}

// FormatDate renders a time as yyyy-mm-dd.
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// RentalDays returns the number of chargeable days between two dates: the
// whole-day difference end-start, with any fractional remainder rounded up.
// A rental from Jan 1 to Jan 4 is 3 days. Zero and negative ranges are
// rejected with domain.ErrInvalidRange.
func RentalDays(start, end time.Time) (int32, error) {
	if !end.After(start) {
		return 0, domain.ErrInvalidRange
	}
	days := int32(math.Ceil(end.Sub(start).Hours() / 24))
	return days, nil
}

// CalculateRentalCost derives the total cost in cents from the car's current
// daily rate and the rental date span. The client never supplies this value.
func CalculateRentalCost(start, end time.Time, car *domain.Car) (int32, error) {
	days, err := RentalDays(start, end)
	if err != nil {
		return 0, err
	}
	return days * car.DailyRateCents, nil
}
