package submit_review

import (
	"errors"
	"net/http"

	"github.com/outpost-paintball/booking-service/internal/api/handlers"
	"github.com/outpost-paintball/booking-service/internal/service/reviews"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidReview      = "invalid review data"
)

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

// Handle POST /api/v1/reviews
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req SubmitReviewRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reviews - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Submit(r.Context(), req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, reviews.ErrInvalidInput):
			h.logger.Warn("POST /reviews - Invalid review: %v", err)
			handlers.RespondBadRequest(w, msgInvalidReview)

		default:
			h.logger.Error("POST /reviews - Failed to submit review: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reviews - Review submitted: review_id=%d, rating=%d", result.ID, result.Rating)
	handlers.RespondJSON(w, http.StatusCreated, FromServiceResponse(result))
}
