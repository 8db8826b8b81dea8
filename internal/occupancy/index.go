// Package occupancy maintains the in-memory view of which time slots are
// already claimed on which dates. It is the only consumer of the booking
// change feed inside the service: any event triggers a full re-fetch of
// the (date, time_slot, status) projection.
package occupancy

import (
	"context"
	"sort"
	"sync"

	"github.com/outpost-paintball/booking-service/internal/domain"
)

// Fetcher loads the occupancy projection from the store.
type Fetcher interface {
	GetOccupancy(ctx context.Context) ([]domain.OccupancyRecord, error)
}

// Logger is the logging interface the index needs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Index is the booking index: date -> ordered set of occupied slot
// labels. Reads never block on the store; a failed refresh leaves the
// last known snapshot in place (stale but available).
type Index struct {
	fetcher Fetcher
	log     Logger

	mu     sync.RWMutex
	byDate map[string][]string

	onRefresh func(outcome string)
}

// NewIndex creates an index with an empty snapshot. onRefresh, if not
// nil, is called with the outcome of every refresh attempt ("ok",
// "unchanged", "error") for metrics.
func NewIndex(fetcher Fetcher, log Logger, onRefresh func(outcome string)) *Index {
	return &Index{
		fetcher:   fetcher,
		log:       log,
		byDate:    map[string][]string{},
		onRefresh: onRefresh,
	}
}

// OccupiedSlots returns a copy of the occupied slot labels for a date
// (YYYY-MM-DD). Unknown dates are fully available: the empty set.
func (i *Index) OccupiedSlots(date string) []string {
	i.mu.RLock()
	defer i.mu.RUnlock()

	slots, ok := i.byDate[date]
	if !ok {
		return []string{}
	}

	out := make([]string, len(slots))
	copy(out, slots)
	return out
}

// Refresh re-fetches the full projection and swaps the snapshot. On
// fetch failure the previous snapshot is kept and the error returned for
// logging; availability evaluation keeps working off stale data. An
// unchanged projection skips the swap.
func (i *Index) Refresh(ctx context.Context) error {
	records, err := i.fetcher.GetOccupancy(ctx)
	if err != nil {
		i.report("error")
		return err
	}

	fresh := fold(records)

	i.mu.Lock()
	defer i.mu.Unlock()

	if equalSnapshots(i.byDate, fresh) {
		i.report("unchanged")
		return nil
	}

	i.byDate = fresh
	i.report("ok")
	return nil
}

// Run performs the initial refresh and then re-fetches on every change
// signal until ctx is cancelled. The events channel closing also stops
// the loop.
func (i *Index) Run(ctx context.Context, events <-chan struct{}) {
	if err := i.Refresh(ctx); err != nil {
		i.log.Error("occupancy: initial refresh failed, starting empty: %v", err)
	}

	for {
		select {
		case <-ctx.Done():
			i.log.Info("occupancy: index stopping")
			return

		case _, ok := <-events:
			if !ok {
				return
			}
			if err := i.Refresh(ctx); err != nil {
				i.log.Warn("occupancy: refresh failed, keeping stale snapshot: %v", err)
			}
		}
	}
}

// fold builds the date -> labels mapping, excluding bookings whose claim
// no longer stands (cancelled, no-show). Labels are ordered by their
// start time, malformed labels last, for deterministic output.
func fold(records []domain.OccupancyRecord) map[string][]string {
	byDate := make(map[string][]string)

	for _, rec := range records {
		if !rec.Status.IsActive() {
			continue
		}
		byDate[rec.Date] = append(byDate[rec.Date], rec.TimeSlot)
	}

	for date, labels := range byDate {
		sort.SliceStable(labels, func(a, b int) bool {
			return labelSortKey(labels[a]) < labelSortKey(labels[b])
		})
		byDate[date] = labels
	}

	return byDate
}

func labelSortKey(label string) int {
	if start, _, ok := domain.ParseRange(label); ok {
		return start
	}
	if m, err := domain.ParseClock(label); err == nil {
		return m
	}
	return 24 * 60
}

func equalSnapshots(a, b map[string][]string) bool {
	if len(a) != len(b) {
		return false
	}
	for date, as := range a {
		bs, ok := b[date]
		if !ok || len(as) != len(bs) {
			return false
		}
		for i := range as {
			if as[i] != bs[i] {
				return false
			}
		}
	}
	return true
}

func (i *Index) report(outcome string) {
	if i.onRefresh != nil {
		i.onRefresh(outcome)
	}
}
