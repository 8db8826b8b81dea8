package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/outpost-paintball/booking-service/internal/domain"
	"github.com/outpost-paintball/booking-service/internal/occupancy"
)

type fakeIndex struct {
	byDate map[string][]string
	calls  int
}

func (f *fakeIndex) OccupiedSlots(date string) []string {
	f.calls++
	return f.byDate[date]
}

type fakeTime struct {
	now time.Time
}

func (f *fakeTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newTestUseCase(index OccupancyIndex, now time.Time) *UseCase {
	uc := NewUseCase(index, nopLogger{})
	uc.timeProvider = &fakeTime{now: now}
	return uc
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestExecute_FullCatalogWithVerdicts(t *testing.T) {
	index := &fakeIndex{byDate: map[string][]string{
		"2026-09-05": {"8:00 AM-10:00 AM"},
	}}
	uc := newTestUseCase(index, time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC))

	resp, err := uc.Execute(context.Background(), &Request{
		ServiceType: "regular",
		Date:        date(2026, 9, 5),
	})

	require.NoError(t, err)
	require.Len(t, resp.Slots, 4)
	assert.Equal(t, domain.ServiceRegular, resp.ServiceType)

	assert.False(t, resp.Slots[0].Available, "booked slot")
	assert.True(t, resp.Slots[1].Available)
	assert.True(t, resp.Slots[2].Available)
	assert.True(t, resp.Slots[3].Available)

	// Every catalog entry is present whether available or not.
	assert.Equal(t, "8:00 AM-10:00 AM", resp.Slots[0].Label)
	assert.Equal(t, 480, resp.Slots[0].Start)
	assert.Equal(t, 600, resp.Slots[0].End)
}

func TestExecute_UnknownDateFullyAvailable(t *testing.T) {
	index := &fakeIndex{byDate: map[string][]string{}}
	uc := newTestUseCase(index, time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC))

	resp, err := uc.Execute(context.Background(), &Request{
		ServiceType: "target-range",
		Date:        date(2026, 9, 10),
	})

	require.NoError(t, err)
	require.Len(t, resp.Slots, 18)
	for _, s := range resp.Slots {
		assert.True(t, s.Available, "slot %q", s.Label)
	}
}

func TestExecute_TodayElapsedSlots(t *testing.T) {
	index := &fakeIndex{byDate: map[string][]string{}}
	// 10:00 AM sharp on the requested day.
	now := time.Date(2026, 9, 5, 10, 0, 0, 0, time.UTC)
	uc := newTestUseCase(index, now)

	resp, err := uc.Execute(context.Background(), &Request{
		ServiceType: "regular",
		Date:        date(2026, 9, 5),
	})

	require.NoError(t, err)
	assert.False(t, resp.Slots[0].Available, "8:00 AM-10:00 AM elapsed at exactly 10:00")
	assert.True(t, resp.Slots[1].Available, "10:00 AM-12:00 PM still open")
	assert.True(t, resp.Slots[2].Available)
	assert.True(t, resp.Slots[3].Available)
}

func TestExecute_PastDateRejected(t *testing.T) {
	uc := newTestUseCase(&fakeIndex{}, time.Date(2026, 9, 5, 10, 0, 0, 0, time.UTC))

	_, err := uc.Execute(context.Background(), &Request{
		ServiceType: "regular",
		Date:        date(2026, 9, 4),
	})

	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecute_DateTooFarRejected(t *testing.T) {
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	uc := newTestUseCase(&fakeIndex{}, now)

	// Exactly 60 days out is fine.
	_, err := uc.Execute(context.Background(), &Request{
		ServiceType: "regular",
		Date:        date(2026, 10, 31),
	})
	require.NoError(t, err)

	// 61 days out is not.
	_, err = uc.Execute(context.Background(), &Request{
		ServiceType: "regular",
		Date:        date(2026, 11, 1),
	})
	assert.ErrorIs(t, err, ErrDateTooFarInFuture)
}

func TestExecute_InvalidSchedule(t *testing.T) {
	uc := newTestUseCase(&fakeIndex{}, time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC))

	_, err := uc.Execute(context.Background(), &Request{
		ServiceType: "half-day",
		Schedule:    "evening",
		Date:        date(2026, 9, 5),
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_HalfDaySchedule(t *testing.T) {
	index := &fakeIndex{byDate: map[string][]string{
		"2026-09-05": {"10:00 AM-12:00 PM"},
	}}
	uc := newTestUseCase(index, time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC))

	resp, err := uc.Execute(context.Background(), &Request{
		ServiceType: "half-day",
		Schedule:    domain.ScheduleMorning,
		Date:        date(2026, 9, 5),
	})

	require.NoError(t, err)
	require.Len(t, resp.Slots, 1)
	assert.Equal(t, "8:00 AM-12:00 PM", resp.Slots[0].Label)
	assert.False(t, resp.Slots[0].Available, "overlapping 2-hour booking blocks the half-day span")
}

type growingStore struct {
	records []domain.OccupancyRecord
}

func (s *growingStore) GetOccupancy(ctx context.Context) ([]domain.OccupancyRecord, error) {
	return s.records, nil
}

func TestExecute_RoundTripThroughIndex(t *testing.T) {
	store := &growingStore{}
	idx := occupancy.NewIndex(store, nopLogger{}, nil)
	require.NoError(t, idx.Refresh(context.Background()))

	uc := newTestUseCase(idx, time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC))
	req := &Request{ServiceType: "regular", Date: date(2026, 9, 5)}

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.True(t, resp.Slots[1].Available)

	// A booking lands in the store; the change feed triggers a refresh.
	store.records = append(store.records, domain.OccupancyRecord{
		Date:     "2026-09-05",
		TimeSlot: "10:00 AM-12:00 PM",
		Status:   domain.StatusConfirmed,
	})
	require.NoError(t, idx.Refresh(context.Background()))

	resp, err = uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.False(t, resp.Slots[1].Available, "booked slot unavailable after refresh")
}

func TestExecute_ReadsIndexOncePerCall(t *testing.T) {
	index := &fakeIndex{byDate: map[string][]string{}}
	uc := newTestUseCase(index, time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC))

	_, err := uc.Execute(context.Background(), &Request{
		ServiceType: "regular",
		Date:        date(2026, 9, 5),
	})

	require.NoError(t, err)
	assert.Equal(t, 1, index.calls)
}
