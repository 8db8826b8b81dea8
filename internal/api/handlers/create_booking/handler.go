package create_booking

import (
	"errors"
	"net/http"

	"github.com/outpost-paintball/booking-service/internal/api/handlers"
	createBooking "github.com/outpost-paintball/booking-service/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDate        = "invalid booking date format, expected YYYY-MM-DD"
	msgInvalidInput       = "invalid booking data"
	msgDateInPast         = "booking date must not be in the past"
	msgDateTooFar         = "booking date is too far in the future"
	msgInvalidTimeSlot    = "time slot does not belong to the selected service"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse booking date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createBooking.ErrInvalidDate):
			h.logger.Warn("POST /bookings - Date in the past: date=%s", req.BookingDate)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, createBooking.ErrDateTooFarInFuture):
			h.logger.Warn("POST /bookings - Date too far in future: date=%s", req.BookingDate)
			handlers.RespondBadRequest(w, msgDateTooFar)

		case errors.Is(err, createBooking.ErrInvalidTimeSlot):
			h.logger.Warn("POST /bookings - Invalid time slot: service=%s, slot=%s", req.Service, req.TimeSlot)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: customer=%s, error=%v", req.CustomerName, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, date=%s, slot=%s",
		result.ID, req.BookingDate, req.TimeSlot)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
