package models

import (
	"fmt"
	"time"

	"github.com/outpost-paintball/booking-service/internal/domain"
)

// ListBookingsRequest filters the admin booking listing. Dates are
// YYYY-MM-DD strings as they arrive from the query string.
type ListBookingsRequest struct {
	StartDate       *string
	EndDate         *string
	Status          *string
	IncludeInactive bool
}

// ToDomainFilter converts the request into a repository filter.
func (r *ListBookingsRequest) ToDomainFilter() (domain.BookingsFilter, error) {
	var filter domain.BookingsFilter
	filter.IncludeInactive = r.IncludeInactive

	if r.StartDate != nil {
		t, err := time.Parse(domain.DateFormat, *r.StartDate)
		if err != nil {
			return filter, fmt.Errorf("invalid startDate: %v", err)
		}
		filter.StartDate = &t
	}

	if r.EndDate != nil {
		t, err := time.Parse(domain.DateFormat, *r.EndDate)
		if err != nil {
			return filter, fmt.Errorf("invalid endDate: %v", err)
		}
		filter.EndDate = &t
	}

	if r.Status != nil {
		if !domain.ValidBookingStatus(*r.Status) {
			return filter, fmt.Errorf("invalid status: %s", *r.Status)
		}
		status := domain.BookingStatus(*r.Status)
		filter.Status = &status
	}

	return filter, nil
}

// UpdateStatusRequest changes a booking's status.
type UpdateStatusRequest struct {
	Status string
}

// BookingResponse is the service-level booking view.
type BookingResponse struct {
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

// BookingListResponse wraps a list of bookings.
type BookingListResponse struct {
	Bookings []*BookingResponse
	Total    int
}

// StatsResponse is the admin dashboard summary.
type StatsResponse struct {
	TotalBookings     int
	TodayBookings     int
	PendingBookings   int
	ConfirmedBookings int
	ConfirmedRevenue  float64
}

// FromDomainBooking converts a domain booking.
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
		ID:                b.ID,
		CustomerName:      b.CustomerName,
		Email:             b.Email,
		Phone:             b.Phone,
		Service:           b.Service,
		BookingDate:       b.BookingDate,
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
		Status:            string(b.Status),
		CreatedAt:         b.CreatedAt,
		UpdatedAt:         b.UpdatedAt,
	}
}

// FromDomainBookingList converts a list of domain bookings.
func FromDomainBookingList(bs []*domain.Booking) *BookingListResponse {
	out := make([]*BookingResponse, len(bs))
	for i, b := range bs {
		out[i] = FromDomainBooking(b)
	}
	return &BookingListResponse{Bookings: out, Total: len(out)}
}
