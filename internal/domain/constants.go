package domain

// Booking window and validation constants.
const (
	// MaxAdvanceBookingDays is how far ahead a session may be booked.
	MaxAdvanceBookingDays = 60

	MinGroupSize = 1
	MaxGroupSize = 100

	MaxSpecialRequestsLength = 500
	MaxCustomerNameLength    = 120
)

// Time format constants.
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses are the statuses excluded from occupancy. Everything
// else holds its time slot.
var InactiveStatuses = []BookingStatus{
	StatusCancelled,
	StatusNoShow,
}
