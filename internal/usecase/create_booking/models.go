package create_booking

import (
	"time"

	"github.com/outpost-paintball/booking-service/internal/domain"
)

// Request carries a finalized booking from the wizard.
type Request struct {
	CustomerName string
	Email        string
	Phone        string

	Service  string // known service type or legacy package label
	Schedule domain.Schedule
	Date     time.Time
	TimeSlot string
	GroupSize int

	SpecialRequests  *string
	EmergencyContact *string
	Experience       string

	// PaidAmount overrides the computed 30% downpayment when the
	// customer paid a different amount up front.
	PaidAmount        *float64
	PaymentMethod     string
	PaymentReceiptURL *string
}

// Response is the stored booking.
type Response struct {
	ID           int64
	CustomerName string
	Email        string
	Phone        string

	Service     string
	BookingDate time.Time
	TimeSlot    string
	GroupSize   int

	SpecialRequests  *string
	EmergencyContact *string
	Experience       string

	TotalAmount       float64
	PaidAmount        float64
	RemainingBalance  float64
	PaymentMethod     string
	PaymentReceiptURL *string

	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}
