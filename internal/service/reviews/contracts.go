package reviews

import (
	"context"

	"github.com/outpost-paintball/booking-service/internal/domain"
)

// ReviewRepository is the storage interface this service needs.
type ReviewRepository interface {
	Create(ctx context.Context, rev *domain.Review) (*domain.Review, error)
	List(ctx context.Context, approvedOnly bool) ([]*domain.Review, error)
	ApprovedRatings(ctx context.Context) ([]int, error)
	SetApproved(ctx context.Context, id int64, approved bool) error
	Delete(ctx context.Context, id int64) error
}

// Logger is the logging interface for this service.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
