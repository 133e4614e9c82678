package domain

type CarKind string

const (
	CarKindElectric   CarKind = "ELECTRIC"
	CarKindMechanical CarKind = "MECHANICAL"
)

// Car is a read-only catalog descriptor. The kind-specific fields form a
// tagged variant: electric cars carry range/battery data, mechanical cars
// carry engine data. Only DailyRateCents participates in business rules.
type Car struct {
	ID              int32    `json:"id"`
	Kind            CarKind  `json:"kind"`
	Make            string   `json:"make"`
	Model           string   `json:"model"`
	Year            int32    `json:"year"`
	Description     string   `json:"description"`
	Features        []string `json:"features"`
	SeatingCapacity int32    `json:"seating_capacity"`
	DailyRateCents  int32    `json:"daily_rate_cents"`

	// Electric only
	Range           string `json:"range,omitempty"`
	BatteryCapacity string `json:"battery_capacity,omitempty"`

	// Mechanical only
	EngineType string `json:"engine_type,omitempty"`
	Horsepower int32  `json:"horsepower,omitempty"`
}
