package get_booking

import (
	"time"

	"github.com/outpost-paintball/booking-service/internal/domain"
	"github.com/outpost-paintball/booking-service/internal/service/bookings/models"
)

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

// FromServiceResponse converts the service response into the HTTP model.
func FromServiceResponse(resp *models.BookingResponse) *BookingResponse {
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
