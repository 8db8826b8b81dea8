package delete_review

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/outpost-paintball/booking-service/internal/api/handlers"
	"github.com/outpost-paintball/booking-service/internal/service/reviews"
)

const (
	msgInvalidReviewID = "invalid review ID"
	msgNotFound        = "review not found"
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

// Handle DELETE /api/v1/admin/reviews/{reviewId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	reviewID, err := strconv.ParseInt(vars["reviewId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /admin/reviews/{id} - Invalid review ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReviewID)
		return
	}

	if err := h.service.Delete(r.Context(), reviewID); err != nil {
		switch {
		case errors.Is(err, reviews.ErrReviewNotFound):
			h.logger.Warn("DELETE /admin/reviews/{id} - Review not found: review_id=%d", reviewID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /admin/reviews/{id} - Failed to delete review: review_id=%d, error=%v", reviewID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/reviews/{id} - Review deleted: review_id=%d", reviewID)
	w.WriteHeader(http.StatusNoContent)
}
