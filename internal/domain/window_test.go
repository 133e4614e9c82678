package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWithinEditWindow(t *testing.T) {
	created := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		elapsed time.Duration
		want    bool
	}{
		{"Immediately after creation", 0, true},
		{"One hour in", time.Hour, true},
		{"Just inside the window", 12*time.Hour - time.Second, true},
		{"Exactly at the boundary", 12 * time.Hour, true},
		{"One millisecond past", 12*time.Hour + time.Millisecond, false},
		{"Thirteen hours later", 13 * time.Hour, false},
		{"Days later", 72 * time.Hour, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WithinEditWindow(created, created.Add(tt.elapsed))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWithinEditWindow_TimezoneAgnostic(t *testing.T) {
	// The comparison is instant-based, so mixed zones must not matter.
	created := time.Date(2024, 6, 1, 23, 0, 0, 0, time.UTC)
	loc := time.FixedZone("UTC+5", 5*3600)
	now := created.Add(11 * time.Hour).In(loc)
	assert.True(t, WithinEditWindow(created, now))
}

func TestRentalEditableUntil(t *testing.T) {
	created := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	r := &Rental{CreatedOn: created}
	assert.Equal(t, created.Add(12*time.Hour), r.EditableUntil())
}

func TestRentalMarshalIncludesEditableUntil(t *testing.T) {
	created := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	r := Rental{ID: 1, CreatedOn: created}

	data, err := json.Marshal(r)
	assert.NoError(t, err)
	assert.Contains(t, string(data), `"editable_until":"2024-01-01T22:00:00Z"`)
}

func TestRentalStatusTerminal(t *testing.T) {
	assert.False(t, RentalStatusActive.Terminal())
	assert.True(t, RentalStatusCancelled.Terminal())
	assert.True(t, RentalStatusCompleted.Terminal())
}
