package get_stats

import (
	"net/http"

	"github.com/outpost-paintball/booking-service/internal/api/handlers"
	"github.com/outpost-paintball/booking-service/internal/service/bookings/models"
)

// StatsResponse HTTP response model
type StatsResponse struct {
	TotalBookings     int     `json:"totalBookings"`
	TodayBookings     int     `json:"todayBookings"`
	PendingBookings   int     `json:"pendingBookings"`
	ConfirmedBookings int     `json:"confirmedBookings"`
	ConfirmedRevenue  float64 `json:"confirmedRevenue"`
}

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/stats
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Stats(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/stats - Failed to compute stats: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, fromServiceResponse(result))
}

func fromServiceResponse(resp *models.StatsResponse) *StatsResponse {
	return &StatsResponse{
		TotalBookings:     resp.TotalBookings,
		TodayBookings:     resp.TodayBookings,
		PendingBookings:   resp.PendingBookings,
		ConfirmedBookings: resp.ConfirmedBookings,
		ConfirmedRevenue:  resp.ConfirmedRevenue,
	}
}
