package get_available_slots

import (
	"fmt"
	"time"

	"github.com/outpost-paintball/booking-service/internal/domain"
)

// validateRequest checks the request shape.
func validateRequest(req *Request) error {
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	switch req.Schedule {
	case "", domain.ScheduleMorning, domain.ScheduleAfternoon:
	default:
		return fmt.Errorf("%w: schedule must be morning or afternoon", ErrInvalidInput)
	}

	return nil
}

// validateDate rejects past dates and dates beyond the advance booking
// window.
func validateDate(requestDate, now time.Time) error {
	if isDateInPast(requestDate, now) {
		return ErrInvalidDate
	}

	maxDate := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).
		AddDate(0, 0, domain.MaxAdvanceBookingDays)

	requestDateOnly := time.Date(requestDate.Year(), requestDate.Month(), requestDate.Day(), 0, 0, 0, 0, requestDate.Location())

	if requestDateOnly.After(maxDate) {
		return fmt.Errorf("%w: can only book %d days in advance", ErrDateTooFarInFuture, domain.MaxAdvanceBookingDays)
	}

	return nil
}
