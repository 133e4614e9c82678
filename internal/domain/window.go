package domain

import "time"

// EditWindow is how long after creation a rental may be amended or cancelled
// by its owner.
const EditWindow = 12 * time.Hour

// WithinEditWindow reports whether a rental created at createdAt may still be
// mutated at now. The boundary is inclusive: a request arriving exactly
// EditWindow after creation is admitted. Update and cancel must both consult
// this function rather than reimplementing the arithmetic.
func WithinEditWindow(createdAt, now time.Time) bool {
	return now.Sub(createdAt) <= EditWindow
}
