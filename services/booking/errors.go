package booking

import "errors"

var (
	// ErrInvalidTime is returned when a start or end time is not a valid time of day.
	ErrInvalidTime = errors.New("invalid booking time")
	// ErrConflict is returned when overlap rejection is on and the slot is taken.
	ErrConflict = errors.New("booking overlaps an existing booking")
)
