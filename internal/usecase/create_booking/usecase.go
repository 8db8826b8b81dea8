package create_booking

import (
	"context"
	"fmt"

	"github.com/outpost-paintball/booking-service/internal/domain"
)

// UseCase persists a finalized booking. Availability is advisory only:
// there is no re-check, no transaction and no uniqueness constraint on
// (date, slot). Two racing clients can both succeed; staff resolve the
// collision operationally. The insert fires the postgres trigger that
// notifies every occupancy index, so open calendars converge shortly
// after commit.
type UseCase struct {
	bookingRepo  BookingRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase creates the booking submission use case.
func NewUseCase(bookingRepo BookingRepository, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute validates, prices and stores the booking with status
// confirmed.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: customer=%s, service=%s, date=%s, slot=%s, groupSize=%d",
		req.CustomerName, req.Service, req.Date.Format(domain.DateFormat), req.TimeSlot, req.GroupSize)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("CreateBooking: date validation failed: %v", err)
		return nil, err
	}

	if err := validateTimeSlot(req.Service, req.Schedule, req.TimeSlot); err != nil {
		uc.logger.Warn("CreateBooking: time slot validation failed: %v", err)
		return nil, err
	}

	// The price breakdown is always computed server-side; the paid
	// amount defaults to the 30% downpayment.
	quote := domain.QuoteBooking(req.Service, req.Schedule, req.GroupSize)

	paid := quote.Downpayment
	if req.PaidAmount != nil {
		paid = *req.PaidAmount
	}

	paymentMethod := req.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = "GCash"
	}

	experience := req.Experience
	if experience == "" {
		experience = "beginner"
	}

	booking := &domain.Booking{
		CustomerName:      req.CustomerName,
		Email:             req.Email,
		Phone:             req.Phone,
		Service:           req.Service,
		BookingDate:       req.Date,
		TimeSlot:          req.TimeSlot,
		GroupSize:         req.GroupSize,
		SpecialRequests:   req.SpecialRequests,
		EmergencyContact:  req.EmergencyContact,
		Experience:        experience,
		TotalAmount:       quote.Total,
		PaidAmount:        paid,
		RemainingBalance:  quote.Total - paid,
		PaymentMethod:     paymentMethod,
		PaymentReceiptURL: req.PaymentReceiptURL,
		Status:            domain.StatusConfirmed,
	}

	created, err := uc.bookingRepo.Create(ctx, booking)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to create booking: %v", err)
		return nil, fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d, total=%.2f, paid=%.2f",
		created.ID, created.TotalAmount, created.PaidAmount)

	return &Response{
		ID:                created.ID,
		CustomerName:      created.CustomerName,
		Email:             created.Email,
		Phone:             created.Phone,
		Service:           created.Service,
		BookingDate:       created.BookingDate,
		TimeSlot:          created.TimeSlot,
		GroupSize:         created.GroupSize,
		SpecialRequests:   created.SpecialRequests,
		EmergencyContact:  created.EmergencyContact,
		Experience:        created.Experience,
		TotalAmount:       created.TotalAmount,
		PaidAmount:        created.PaidAmount,
		RemainingBalance:  created.RemainingBalance,
		PaymentMethod:     created.PaymentMethod,
		PaymentReceiptURL: created.PaymentReceiptURL,
		Status:            string(created.Status),
		CreatedAt:         created.CreatedAt,
		UpdatedAt:         created.UpdatedAt,
	}, nil
}
