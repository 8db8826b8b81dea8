package occupancy

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/outpost-paintball/booking-service/internal/domain"
)

type fakeFetcher struct {
	records []domain.OccupancyRecord
	err     error
	calls   int
}

func (f *fakeFetcher) GetOccupancy(ctx context.Context) ([]domain.OccupancyRecord, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.records, nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func rec(date, slot string, status domain.BookingStatus) domain.OccupancyRecord {
	return domain.OccupancyRecord{Date: date, TimeSlot: slot, Status: status}
}

func TestRefresh_FoldsActiveBookings(t *testing.T) {
	fetcher := &fakeFetcher{records: []domain.OccupancyRecord{
		rec("2026-09-05", "10:00 AM-12:00 PM", domain.StatusConfirmed),
		rec("2026-09-05", "8:00 AM-10:00 AM", domain.StatusPending),
		rec("2026-09-05", "1:00 PM-3:00 PM", domain.StatusCancelled),
		rec("2026-09-06", "8:30 AM", domain.StatusCompleted),
		rec("2026-09-06", "3:00 PM-5:00 PM", domain.StatusNoShow),
	}}
	idx := NewIndex(fetcher, nopLogger{}, nil)

	require.NoError(t, idx.Refresh(context.Background()))

	// Cancelled and no-show bookings release their slots; the rest are
	// ordered by start time.
	assert.Equal(t, []string{"8:00 AM-10:00 AM", "10:00 AM-12:00 PM"}, idx.OccupiedSlots("2026-09-05"))
	assert.Equal(t, []string{"8:30 AM"}, idx.OccupiedSlots("2026-09-06"))
}

func TestOccupiedSlots_UnknownDateIsEmpty(t *testing.T) {
	idx := NewIndex(&fakeFetcher{}, nopLogger{}, nil)

	slots := idx.OccupiedSlots("2099-01-01")
	assert.NotNil(t, slots)
	assert.Empty(t, slots)
}

func TestOccupiedSlots_ReturnsCopy(t *testing.T) {
	fetcher := &fakeFetcher{records: []domain.OccupancyRecord{
		rec("2026-09-05", "8:00 AM-10:00 AM", domain.StatusConfirmed),
	}}
	idx := NewIndex(fetcher, nopLogger{}, nil)
	require.NoError(t, idx.Refresh(context.Background()))

	slots := idx.OccupiedSlots("2026-09-05")
	slots[0] = "mutated"

	assert.Equal(t, []string{"8:00 AM-10:00 AM"}, idx.OccupiedSlots("2026-09-05"))
}

func TestRefresh_KeepsStaleSnapshotOnError(t *testing.T) {
	fetcher := &fakeFetcher{records: []domain.OccupancyRecord{
		rec("2026-09-05", "8:00 AM-10:00 AM", domain.StatusConfirmed),
	}}
	var outcomes []string
	idx := NewIndex(fetcher, nopLogger{}, func(o string) { outcomes = append(outcomes, o) })

	require.NoError(t, idx.Refresh(context.Background()))

	fetcher.err = errors.New("connection refused")
	err := idx.Refresh(context.Background())
	require.Error(t, err)

	// Reads keep serving the last good snapshot.
	assert.Equal(t, []string{"8:00 AM-10:00 AM"}, idx.OccupiedSlots("2026-09-05"))
	assert.Equal(t, []string{"ok", "error"}, outcomes)
}

func TestRefresh_UnchangedSnapshotSkipsSwap(t *testing.T) {
	fetcher := &fakeFetcher{records: []domain.OccupancyRecord{
		rec("2026-09-05", "8:00 AM-10:00 AM", domain.StatusConfirmed),
	}}
	var outcomes []string
	idx := NewIndex(fetcher, nopLogger{}, func(o string) { outcomes = append(outcomes, o) })

	require.NoError(t, idx.Refresh(context.Background()))
	require.NoError(t, idx.Refresh(context.Background()))

	assert.Equal(t, []string{"ok", "unchanged"}, outcomes)
}

func TestRun_RefreshesOnEvents(t *testing.T) {
	fetcher := &fakeFetcher{}
	idx := NewIndex(fetcher, nopLogger{}, nil)

	events := make(chan struct{})
	done := make(chan struct{})
	ctx, cancel := context.WithCancel(context.Background())

	go func() {
		idx.Run(ctx, events)
		close(done)
	}()

	events <- struct{}{}
	events <- struct{}{}
	cancel()
	<-done

	// Initial refresh plus one per event.
	assert.Equal(t, 3, fetcher.calls)
}

func TestRun_StopsWhenEventsClosed(t *testing.T) {
	idx := NewIndex(&fakeFetcher{}, nopLogger{}, nil)

	events := make(chan struct{})
	done := make(chan struct{})

	go func() {
		idx.Run(context.Background(), events)
		close(done)
	}()

	close(events)
	<-done
}
