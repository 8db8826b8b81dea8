package get_rating_stats

import (
	"net/http"

	"github.com/outpost-paintball/booking-service/internal/api/handlers"
	"github.com/outpost-paintball/booking-service/internal/service/reviews/models"
)

// RatingStatsResponse HTTP response model
type RatingStatsResponse struct {
	AverageRating float64     `json:"averageRating"`
	TotalReviews  int         `json:"totalReviews"`
	Distribution  map[int]int `json:"distribution"`
}

type Handler struct {
	service ReviewService
	logger  Logger
}

func NewHandler(service ReviewService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/reviews/stats
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.RatingStats(r.Context())
	if err != nil {
		h.logger.Error("GET /reviews/stats - Failed to compute rating stats: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, fromServiceResponse(result))
}

func fromServiceResponse(resp *models.RatingStatsResponse) *RatingStatsResponse {
	return &RatingStatsResponse{
		AverageRating: resp.AverageRating,
		TotalReviews:  resp.TotalReviews,
		Distribution:  resp.Distribution,
	}
}
