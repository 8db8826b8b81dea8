package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/outpost-paintball/booking-service/internal/domain"
	bookingRepo "github.com/outpost-paintball/booking-service/internal/infra/storage/booking"
	"github.com/outpost-paintball/booking-service/internal/service/bookings/models"
)

// Service handles the staff dashboard's booking operations: listing,
// status changes, deletion and the stats summary. Status changes and
// deletes fire the same postgres trigger as inserts, so every open
// calendar re-fetches occupancy.
type Service struct {
	bookingRepo  BookingRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService creates the bookings service.
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// GetByID fetches one booking.
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// List fetches bookings with optional date-range and status filters.
func (s *Service) List(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	bookings, err := s.bookingRepo.ListWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// UpdateStatus changes a booking's status. Moving to cancelled or
// no_show frees the slot for new bookings.
func (s *Service) UpdateStatus(ctx context.Context, id int64, req *models.UpdateStatusRequest) error {
	if !domain.ValidBookingStatus(req.Status) {
		s.logger.Warn("UpdateStatus: invalid status=%s for booking id=%d", req.Status, id)
		return fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	if err := s.bookingRepo.UpdateStatus(ctx, id, domain.BookingStatus(req.Status)); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("UpdateStatus: booking id=%d not found", id)
			return ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%d: %v", id, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: booking id=%d set to status=%s", id, req.Status)
	return nil
}

// Delete removes a booking permanently.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.bookingRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Delete: booking id=%d not found", id)
			return ErrBookingNotFound
		}
		s.logger.Error("Delete: repository error for booking id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: booking id=%d removed", id)
	return nil
}

// Stats folds all bookings into the dashboard summary: totals, today's
// count, pending/confirmed counts and confirmed revenue.
func (s *Service) Stats(ctx context.Context) (*models.StatsResponse, error) {
	bookings, err := s.bookingRepo.ListWithFilter(ctx, domain.BookingsFilter{IncludeInactive: true})
	if err != nil {
		s.logger.Error("Stats: repository error: %v", err)
		return nil, fmt.Errorf("%w: Stats - repository error: %v", ErrInternal, err)
	}

	today := s.timeProvider.Now().Format(domain.DateFormat)

	stats := &models.StatsResponse{TotalBookings: len(bookings)}
	for _, b := range bookings {
		if b.BookingDate.Format(domain.DateFormat) == today {
			stats.TodayBookings++
		}
		switch b.Status {
		case domain.StatusPending:
			stats.PendingBookings++
		case domain.StatusConfirmed:
			stats.ConfirmedBookings++
			stats.ConfirmedRevenue += b.TotalAmount
		}
	}

	return stats, nil
}
