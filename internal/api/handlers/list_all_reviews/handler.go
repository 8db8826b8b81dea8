package list_all_reviews

import (
	"net/http"
	"time"

	"github.com/outpost-paintball/booking-service/internal/api/handlers"
	"github.com/outpost-paintball/booking-service/internal/service/reviews/models"
)

// ReviewListResponse HTTP response model
type ReviewListResponse struct {
	Reviews []Review `json:"reviews"`
	Total   int      `json:"total"`
}

// Review is one entry in the moderation queue, email included.
type Review struct {
	ID            int64  `json:"id"`
	CustomerName  string `json:"customerName"`
	CustomerEmail string `json:"customerEmail,omitempty"`
	ReviewText    string `json:"reviewText"`
	Rating        int    `json:"rating"`
	IsApproved    bool   `json:"isApproved"`
	CreatedAt     string `json:"createdAt"`
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

// Handle GET /api/v1/admin/reviews
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListAll(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/reviews - Failed to list reviews: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, fromServiceResponse(result))
}

func fromServiceResponse(resp *models.ReviewListResponse) *ReviewListResponse {
	reviews := make([]Review, len(resp.Reviews))
	for i, rev := range resp.Reviews {
		reviews[i] = Review{
			ID:            rev.ID,
			CustomerName:  rev.CustomerName,
			CustomerEmail: rev.CustomerEmail,
			ReviewText:    rev.ReviewText,
			Rating:        rev.Rating,
			IsApproved:    rev.IsApproved,
			CreatedAt:     rev.CreatedAt.Format(time.RFC3339),
		}
	}
	return &ReviewListResponse{Reviews: reviews, Total: resp.Total}
}
