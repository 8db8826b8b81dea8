package create_booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/outpost-paintball/booking-service/internal/domain"
)

// validateRequest checks the request shape before any pricing or
// persistence happens.
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.CustomerName) == "" {
		return fmt.Errorf("%w: customerName is required", ErrInvalidInput)
	}
	if len(req.CustomerName) > domain.MaxCustomerNameLength {
		return fmt.Errorf("%w: customerName too long", ErrInvalidInput)
	}

	if strings.TrimSpace(req.Email) == "" || !strings.Contains(req.Email, "@") {
		return fmt.Errorf("%w: valid email is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Phone) == "" {
		return fmt.Errorf("%w: phone is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.Service) == "" {
		return fmt.Errorf("%w: service is required", ErrInvalidInput)
	}

	switch req.Schedule {
	case "", domain.ScheduleMorning, domain.ScheduleAfternoon:
	default:
		return fmt.Errorf("%w: schedule must be morning or afternoon", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.GroupSize < domain.MinGroupSize || req.GroupSize > domain.MaxGroupSize {
		return fmt.Errorf("%w: groupSize must be between %d and %d",
			ErrInvalidInput, domain.MinGroupSize, domain.MaxGroupSize)
	}

	if req.SpecialRequests != nil && len(*req.SpecialRequests) > domain.MaxSpecialRequestsLength {
		return fmt.Errorf("%w: specialRequests too long", ErrInvalidInput)
	}

	if req.PaidAmount != nil && *req.PaidAmount < 0 {
		return fmt.Errorf("%w: paidAmount must not be negative", ErrInvalidInput)
	}

	return nil
}

// validateDate rejects past dates and dates beyond the advance booking
// window.
func validateDate(bookingDate, now time.Time) error {
	dateOnly := time.Date(bookingDate.Year(), bookingDate.Month(), bookingDate.Day(), 0, 0, 0, 0, bookingDate.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	if dateOnly.Before(nowOnly) {
		return ErrInvalidDate
	}

	maxDate := nowOnly.AddDate(0, 0, domain.MaxAdvanceBookingDays)
	if dateOnly.After(maxDate) {
		return fmt.Errorf("%w: can only book %d days in advance", ErrDateTooFarInFuture, domain.MaxAdvanceBookingDays)
	}

	return nil
}

// validateTimeSlot checks that the label belongs to the catalog of the
// booked service (legacy labels validate against the regular catalog).
func validateTimeSlot(service string, schedule domain.Schedule, timeSlot string) error {
	serviceType := domain.NormalizeServiceType(service)

	for _, slot := range domain.SlotCatalog(serviceType, schedule) {
		if slot.Label == timeSlot {
			return nil
		}
	}

	return fmt.Errorf("%w: %q is not a %s slot", ErrInvalidTimeSlot, timeSlot, serviceType)
}
