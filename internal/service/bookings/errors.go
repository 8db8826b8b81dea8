package bookings

import "errors"

var (
	// ErrBookingNotFound is returned when the booking does not exist.
	ErrBookingNotFound = errors.New("bookings.service: booking not found")

	// ErrInvalidInput is returned for malformed filter or status values.
	ErrInvalidInput = errors.New("bookings.service: invalid input")

	// ErrInternal is returned for unexpected repository failures.
	ErrInternal = errors.New("bookings.service: internal error")
)
