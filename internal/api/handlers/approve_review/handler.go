package approve_review

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/outpost-paintball/booking-service/internal/api/handlers"
	"github.com/outpost-paintball/booking-service/internal/service/reviews"
)

const (
	msgInvalidReviewID    = "invalid review ID"
	msgInvalidRequestBody = "invalid request body"
	msgNotFound           = "review not found"
)

// ApprovalRequest HTTP request model
type ApprovalRequest struct {
	Approved bool `json:"approved"`
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

// Handle PATCH /api/v1/admin/reviews/{reviewId}/approval
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	reviewID, err := strconv.ParseInt(vars["reviewId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /admin/reviews/{id}/approval - Invalid review ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReviewID)
		return
	}

	var req ApprovalRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /admin/reviews/{id}/approval - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.SetApproved(r.Context(), reviewID, req.Approved); err != nil {
		switch {
		case errors.Is(err, reviews.ErrReviewNotFound):
			h.logger.Warn("PATCH /admin/reviews/{id}/approval - Review not found: review_id=%d", reviewID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("PATCH /admin/reviews/{id}/approval - Failed to update approval: review_id=%d, error=%v", reviewID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /admin/reviews/{id}/approval - Approval updated: review_id=%d, approved=%t", reviewID, req.Approved)
	w.WriteHeader(http.StatusNoContent)
}
