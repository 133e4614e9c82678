package domain

import "errors"

// Business-rule errors. All of these are expected, recoverable conditions
// that the HTTP layer maps to 4xx responses; anything else bubbling out of a
// repository or service is an internal fault and maps to 5xx.
var (
	// ErrNotFound means the requested record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrForbidden means the requester is not the record's owner. Ownership
	// is checked before window/state so a non-owner cannot probe a rental's
	// lifecycle through differing error codes.
	ErrForbidden = errors.New("not the owner of this record")
	// ErrInvalidState means the record's status does not admit the operation.
	ErrInvalidState = errors.New("record status does not allow this operation")
	// ErrWindowExpired means more than EditWindow has elapsed since creation.
	ErrWindowExpired = errors.New("edit window has expired")
	// ErrInvalidRange means the start date is not strictly before the end date.
	ErrInvalidRange = errors.New("end date must be after start date")
	// ErrUnknownCar means the car reference does not resolve in the catalog.
	ErrUnknownCar = errors.New("unknown car")

	ErrInvalidCredentials = errors.New("invalid username/email or password")
	ErrEmailTaken         = errors.New("a user with this email already exists")
)
