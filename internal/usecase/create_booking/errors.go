package create_booking

import "errors"

var (
	// ErrInvalidInput is returned for malformed request data.
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidDate is returned for dates in the past.
	ErrInvalidDate = errors.New("invalid booking date")

	// ErrDateTooFarInFuture is returned for dates beyond the advance
	// booking window.
	ErrDateTooFarInFuture = errors.New("date is too far in the future")

	// ErrInvalidTimeSlot is returned when the slot label does not belong
	// to the service's catalog.
	ErrInvalidTimeSlot = errors.New("invalid time slot")

	// ErrInternal is returned for unexpected failures.
	ErrInternal = errors.New("usecase: internal error")
)
