package get_available_slots

import (
	"time"

	"github.com/outpost-paintball/booking-service/internal/domain"
	getAvailableSlots "github.com/outpost-paintball/booking-service/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date        string          `json:"date"`
	ServiceType string          `json:"serviceType"`
	Schedule    string          `json:"schedule,omitempty"`
	Slots       []AvailableSlot `json:"slots"`
}

// AvailableSlot is one catalog slot with its availability verdict.
type AvailableSlot struct {
	Label     string `json:"label"`
	Start     int    `json:"start"`
	End       int    `json:"end"`
	Available bool   `json:"available"`
}

// ToUseCaseRequest builds the use case request from query parameters.
func ToUseCaseRequest(serviceType, scheduleStr, dateStr string) (*getAvailableSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		ServiceType: serviceType,
		Schedule:    domain.Schedule(scheduleStr),
		Date:        date,
	}, nil
}

// FromUseCaseResponse converts the use case response to the HTTP model.
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]AvailableSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = AvailableSlot{
			Label:     slot.Label,
			Start:     slot.Start,
			End:       slot.End,
			Available: slot.Available,
		}
	}

	return &AvailableSlotsResponse{
		Date:        resp.Date.Format(domain.DateFormat),
		ServiceType: string(resp.ServiceType),
		Schedule:    string(resp.Schedule),
		Slots:       slots,
	}
}
