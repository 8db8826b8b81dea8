package get_rating_stats

import (
	"context"

	"github.com/outpost-paintball/booking-service/internal/service/reviews/models"
)

type ReviewService interface {
	RatingStats(ctx context.Context) (*models.RatingStatsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
