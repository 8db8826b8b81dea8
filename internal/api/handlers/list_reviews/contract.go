package list_reviews

import (
	"context"

	"github.com/outpost-paintball/booking-service/internal/service/reviews/models"
)

type ReviewService interface {
	ListApproved(ctx context.Context) (*models.ReviewListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
