package get_available_slots

import (
	"time"

	"github.com/outpost-paintball/booking-service/internal/domain"
)

// isSlotAvailable is the single decision point for one candidate slot.
// Checks run in order and short-circuit on the first failure:
//
//  1. elapsed: on today's date a slot is unavailable once the current
//     time reaches its cutoff (range end, or the point time itself).
//     The cutoff is inclusive: at exactly 10:00 the 8:00 AM-10:00 AM
//     slot is already gone. A label that fails to parse is treated as
//     not yet elapsed rather than breaking the whole calendar.
//  2. direct occupancy: the exact label is already booked.
//  3. cross-granularity overlap: for whole-field services (regular,
//     group, half-day) any occupied range label whose minute range
//     intersects the candidate's blocks it. This covers both
//     directions of the half-day / 2-hour conflict. Target-range point
//     bookings are exempt from the cross-check in both directions: the
//     target lanes are a separate area from the main field.
func isSlotAvailable(
	slot domain.Slot,
	serviceType domain.ServiceType,
	occupied []string,
	isToday bool,
	nowMinute int,
) bool {
	if isToday {
		if cutoff, ok := domain.ParseCutoff(slot.Label); ok && nowMinute >= cutoff {
			return false
		}
	}

	for _, label := range occupied {
		if label == slot.Label {
			return false
		}
	}

	if serviceType.UsesRangeCatalog() && slot.IsRange() {
		for _, label := range occupied {
			start, end, ok := domain.ParseRange(label)
			if !ok {
				// Point label (target range) or malformed: no cross-check.
				continue
			}
			if start < slot.End && end > slot.Start {
				return false
			}
		}
	}

	return true
}

// isSameDay reports whether two times fall on the same calendar day.
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// isDateInPast reports whether date is before today.
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}

// minuteOfDay converts wall-clock time to minutes from midnight.
func minuteOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}
