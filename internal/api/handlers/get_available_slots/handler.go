package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/outpost-paintball/booking-service/internal/api/handlers"
	getAvailableSlots "github.com/outpost-paintball/booking-service/internal/usecase/get_available_slots"
)

const (
	msgMissingService = "service is required"
	msgMissingDate    = "date is required"
	msgInvalidDate    = "invalid date format, expected YYYY-MM-DD"
	msgInvalidInput   = "invalid request parameters"
	msgDateInPast     = "date must not be in the past"
	msgDateTooFar     = "date is too far in the future"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/available-slots
// Query params: service (required), date (required, YYYY-MM-DD),
// schedule (half-day only: morning or afternoon)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	serviceType := query.Get("service")
	if serviceType == "" {
		h.logger.Warn("GET /available-slots - Missing service")
		handlers.RespondBadRequest(w, msgMissingService)
		return
	}

	dateStr := query.Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /available-slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	req, err := ToUseCaseRequest(serviceType, query.Get("schedule"), dateStr)
	if err != nil {
		h.logger.Warn("GET /available-slots - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /available-slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, getAvailableSlots.ErrInvalidDate):
			h.logger.Warn("GET /available-slots - Date in the past: date=%s", dateStr)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, getAvailableSlots.ErrDateTooFarInFuture):
			h.logger.Warn("GET /available-slots - Date too far in future: date=%s", dateStr)
			handlers.RespondBadRequest(w, msgDateTooFar)

		default:
			h.logger.Error("GET /available-slots - Failed to evaluate slots: date=%s, error=%v", dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
