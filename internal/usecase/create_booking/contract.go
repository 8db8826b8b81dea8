package create_booking

import (
	"context"
	"time"

	"github.com/outpost-paintball/booking-service/internal/domain"
)

// BookingRepository is the write side this use case needs.
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error)
}

// TimeProvider supplies the current time (injectable for tests).
type TimeProvider interface {
	Now() time.Time
}

// Logger is the logging interface for this use case.
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
