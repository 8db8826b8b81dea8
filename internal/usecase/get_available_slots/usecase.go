package get_available_slots

import (
	"context"

	"github.com/outpost-paintball/booking-service/internal/domain"
)

// UseCase evaluates the availability of every catalog slot for a date.
// It is a pure pass over pre-fetched data: the occupancy index snapshot
// and the current wall-clock time, read once per call.
type UseCase struct {
	index        OccupancyIndex
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase creates the availability use case.
func NewUseCase(index OccupancyIndex, logger Logger) *UseCase {
	return &UseCase{
		index:        index,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute returns every slot of the service's catalog with an
// availability verdict.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("GetAvailableSlots: date validation failed: %v", err)
		return nil, err
	}

	serviceType := domain.NormalizeServiceType(req.ServiceType)
	catalog := domain.SlotCatalog(serviceType, req.Schedule)

	dateStr := req.Date.Format(domain.DateFormat)
	occupied := uc.index.OccupiedSlots(dateStr)

	today := isSameDay(req.Date, now)
	nowMinute := minuteOfDay(now)

	slots := make([]Slot, len(catalog))
	available := 0
	for i, slot := range catalog {
		ok := isSlotAvailable(slot, serviceType, occupied, today, nowMinute)
		if ok {
			available++
		}
		slots[i] = Slot{
			Label:     slot.Label,
			Start:     slot.Start,
			End:       slot.End,
			Available: ok,
		}
	}

	uc.logger.Info("GetAvailableSlots: service=%s, date=%s, occupied=%d, available=%d/%d",
		serviceType, dateStr, len(occupied), available, len(slots))

	return &Response{
		Date:        req.Date,
		ServiceType: serviceType,
		Schedule:    req.Schedule,
		Slots:       slots,
	}, nil
}
