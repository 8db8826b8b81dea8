package create_booking

import (
	"time"

	"github.com/outpost-paintball/booking-service/internal/domain"
	createBooking "github.com/outpost-paintball/booking-service/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	CustomerName string `json:"customerName"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`

	Service     string `json:"service"`
	Schedule    string `json:"schedule,omitempty"` // half-day only
	BookingDate string `json:"bookingDate"`        // "2025-06-01"
	TimeSlot    string `json:"timeSlot"`
	GroupSize   int    `json:"groupSize"`

	SpecialRequests  *string `json:"specialRequests,omitempty"`
	EmergencyContact *string `json:"emergencyContact,omitempty"`
	Experience       string  `json:"experience,omitempty"`

	PaidAmount        *float64 `json:"paidAmount,omitempty"`
	PaymentMethod     string   `json:"paymentMethod,omitempty"`
	PaymentReceiptURL *string  `json:"paymentReceiptUrl,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID           int64  `json:"id"`
	CustomerName string `json:"customerName"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`

	Service     string `json:"service"`
	BookingDate string `json:"bookingDate"`
	TimeSlot    string `json:"timeSlot"`
	GroupSize   int    `json:"groupSize"`

	SpecialRequests  *string `json:"specialRequests,omitempty"`
	EmergencyContact *string `json:"emergencyContact,omitempty"`
	Experience       string  `json:"experience"`

	TotalAmount       float64 `json:"totalAmount"`
	PaidAmount        float64 `json:"paidAmount"`
	RemainingBalance  float64 `json:"remainingBalance"`
	PaymentMethod     string  `json:"paymentMethod"`
	PaymentReceiptURL *string `json:"paymentReceiptUrl,omitempty"`

	Status    string `json:"status"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// ToUseCaseRequest converts the HTTP request into the use case model.
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	bookingDate, err := time.Parse(domain.DateFormat, r.BookingDate)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		CustomerName:      r.CustomerName,
		Email:             r.Email,
		Phone:             r.Phone,
		Service:           r.Service,
		Schedule:          domain.Schedule(r.Schedule),
		Date:              bookingDate,
		TimeSlot:          r.TimeSlot,
		GroupSize:         r.GroupSize,
		SpecialRequests:   r.SpecialRequests,
		EmergencyContact:  r.EmergencyContact,
		Experience:        r.Experience,
		PaidAmount:        r.PaidAmount,
		PaymentMethod:     r.PaymentMethod,
		PaymentReceiptURL: r.PaymentReceiptURL,
	}, nil
}

// FromUseCaseResponse converts the use case response into the HTTP model.
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:                resp.ID,
		CustomerName:      resp.CustomerName,
		Email:             resp.Email,
		Phone:             resp.Phone,
		Service:           resp.Service,
		BookingDate:       resp.BookingDate.Format(domain.DateFormat),
		TimeSlot:          resp.TimeSlot,
		GroupSize:         resp.GroupSize,
		SpecialRequests:   resp.SpecialRequests,
		EmergencyContact:  resp.EmergencyContact,
		Experience:        resp.Experience,
		TotalAmount:       resp.TotalAmount,
		PaidAmount:        resp.PaidAmount,
		RemainingBalance:  resp.RemainingBalance,
		PaymentMethod:     resp.PaymentMethod,
		PaymentReceiptURL: resp.PaymentReceiptURL,
		Status:            resp.Status,
		CreatedAt:         resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:         resp.UpdatedAt.Format(time.RFC3339),
	}
}
