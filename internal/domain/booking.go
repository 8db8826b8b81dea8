package domain

import "time"

// BookingStatus represents the status of a booking.
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
	StatusNoShow    BookingStatus = "no_show"
)

// Booking represents a field session reservation.
type Booking struct {
	ID           int64
	CustomerName string
	Email        string
	Phone        string

	// Service is the raw stored label: one of the known service types or
	// a legacy free-text package name. NormalizeServiceType maps it to a
	// catalog.
	Service     string
	BookingDate time.Time // date only, venue-local
	TimeSlot    string    // catalog label, the occupancy key
	GroupSize   int

	SpecialRequests  *string
	EmergencyContact *string
	Experience       string

	TotalAmount       float64
	PaidAmount        float64
	RemainingBalance  float64
	PaymentMethod     string
	PaymentReceiptURL *string

	Status    BookingStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive reports whether the booking counts toward slot occupancy.
func (b *Booking) IsActive() bool {
	return b.Status.IsActive()
}

// IsActive reports whether a booking in this status still holds its time
// slot. Everything that is not cancelled or a no-show does.
func (s BookingStatus) IsActive() bool {
	return s != StatusCancelled && s != StatusNoShow
}

// BookingsFilter narrows admin booking listings.
type BookingsFilter struct {
	StartDate       *time.Time
	EndDate         *time.Time
	Status          *BookingStatus
	IncludeInactive bool
}

// ValidBookingStatus reports whether s is an accepted status value.
func ValidBookingStatus(s string) bool {
	switch BookingStatus(s) {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled, StatusNoShow:
		return true
	default:
		return false
	}
}

// OccupancyRecord is the projection of a booking consulted by the
// occupancy index: which slot label is claimed on which date, and whether
// the claim still stands.
type OccupancyRecord struct {
	Date     string // YYYY-MM-DD
	TimeSlot string
	Status   BookingStatus
}
