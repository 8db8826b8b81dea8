package list_reviews

import (
	"net/http"

	"github.com/outpost-paintball/booking-service/internal/api/handlers"
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

// Handle GET /api/v1/reviews
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListApproved(r.Context())
	if err != nil {
		h.logger.Error("GET /reviews - Failed to list reviews: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
