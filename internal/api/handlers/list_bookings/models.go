package list_bookings

import (
	"time"

	"github.com/outpost-paintball/booking-service/internal/domain"
	"github.com/outpost-paintball/booking-service/internal/service/bookings/models"
)

// BookingListResponse HTTP response model
type BookingListResponse struct {
	Bookings []Booking `json:"bookings"`
	Total    int       `json:"total"`
}

// Booking is one entry in the admin listing.
type Booking struct {
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

// ToServiceRequest builds the service request from query parameters.
// Empty parameters are skipped.
func ToServiceRequest(startDate, endDate, status string, includeInactive bool) *models.ListBookingsRequest {
	req := &models.ListBookingsRequest{IncludeInactive: includeInactive}
	if startDate != "" {
		req.StartDate = &startDate
	}
	if endDate != "" {
		req.EndDate = &endDate
	}
	if status != "" {
		req.Status = &status
	}
	return req
}

// FromServiceResponse converts the service response into the HTTP model.
func FromServiceResponse(resp *models.BookingListResponse) *BookingListResponse {
	bookings := make([]Booking, len(resp.Bookings))
	for i, b := range resp.Bookings {
		bookings[i] = Booking{
			ID:                b.ID,
			CustomerName:      b.CustomerName,
			Email:             b.Email,
			Phone:             b.Phone,
			Service:           b.Service,
			BookingDate:       b.BookingDate.Format(domain.DateFormat),
			TimeSlot:          b.TimeSlot,
			GroupSize:         b.GroupSize,
			SpecialRequests:   b.SpecialRequests,
			EmergencyContact:  b.EmergencyContact,
			Experience:        b.Experience,
			TotalAmount:       b.TotalAmount,
			PaidAmount:        b.PaidAmount,
			RemainingBalance:  b.RemainingBalance,
			PaymentMethod:     b.PaymentMethod,
			PaymentReceiptURL: b.PaymentReceiptURL,
			Status:            b.Status,
			CreatedAt:         b.CreatedAt.Format(time.RFC3339),
			UpdatedAt:         b.UpdatedAt.Format(time.RFC3339),
		}
	}
	return &BookingListResponse{Bookings: bookings, Total: resp.Total}
}
