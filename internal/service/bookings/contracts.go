package bookings

import (
	"context"
	"time"

	"github.com/outpost-paintball/booking-service/internal/domain"
)

// BookingRepository is the storage interface this service needs.
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	ListWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
	Delete(ctx context.Context, id int64) error
}

// TimeProvider supplies the current time (for today's stats).
type TimeProvider interface {
	Now() time.Time
}

// Logger is the logging interface for this service.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider is the production time provider.
type RealTimeProvider struct{}

// Now returns the current wall-clock time.
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
