package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidClock is returned when a clock label cannot be parsed.
var ErrInvalidClock = errors.New("domain: invalid clock label")

// Slot is a bookable time window. Label is the canonical string customers
// book against (and the occupancy key stored with each booking); Start and
// End are minutes from midnight, derived once when the catalog is built.
type Slot struct {
	Label string
	Start int
	End   int
}

// IsRange reports whether the slot label names a start-end span rather
// than a single point in time.
func (s Slot) IsRange() bool {
	return strings.Contains(s.Label, "-")
}

// Overlaps reports whether two slots' minute ranges actually intersect.
// Touching boundaries (one ends exactly where the other starts) do not
// count as an overlap.
func (s Slot) Overlaps(other Slot) bool {
	return other.Start < s.End && other.End > s.Start
}

// Schedule selects the morning or afternoon half of the day for half-day
// bookings. Empty means both.
type Schedule string

const (
	ScheduleMorning   Schedule = "morning"
	ScheduleAfternoon Schedule = "afternoon"
)

// Field day boundaries, minutes from midnight. The 12:00-13:00 lunch gap
// is never bookable.
const (
	morningOpen    = 8 * 60  // 8:00 AM
	morningClose   = 12 * 60 // 12:00 PM
	afternoonOpen  = 13 * 60 // 1:00 PM
	afternoonClose = 17 * 60 // 5:00 PM

	targetRangeSlotMinutes = 30
	regularSlotMinutes     = 120
)

// SlotCatalog returns the ordered list of slots the given service may be
// booked into. The ordering is fixed: morning slots first, then afternoon.
// Unknown service types fall back to the regular two-hour catalog.
func SlotCatalog(serviceType ServiceType, schedule Schedule) []Slot {
	switch serviceType {
	case ServiceTargetRange:
		return targetRangeCatalog()
	case ServiceHalfDay:
		return halfDayCatalog(schedule)
	default:
		return regularCatalog()
	}
}

// targetRangeCatalog: eighteen 30-minute point slots, 8:00 AM through
// 12:00 PM and 1:00 PM through 5:00 PM.
func targetRangeCatalog() []Slot {
	slots := make([]Slot, 0, 18)
	for m := morningOpen; m <= morningClose; m += targetRangeSlotMinutes {
		slots = append(slots, Slot{
			Label: FormatClock(m),
			Start: m,
			End:   m + targetRangeSlotMinutes,
		})
	}
	for m := afternoonOpen; m <= afternoonClose; m += targetRangeSlotMinutes {
		slots = append(slots, Slot{
			Label: FormatClock(m),
			Start: m,
			End:   m + targetRangeSlotMinutes,
		})
	}
	return slots
}

// regularCatalog: four 2-hour range slots, used by regular and group
// services and as the fallback for legacy service labels.
func regularCatalog() []Slot {
	return []Slot{
		rangeSlot(morningOpen, morningOpen+regularSlotMinutes),
		rangeSlot(morningOpen+regularSlotMinutes, morningClose),
		rangeSlot(afternoonOpen, afternoonOpen+regularSlotMinutes),
		rangeSlot(afternoonOpen+regularSlotMinutes, afternoonClose),
	}
}

// halfDayCatalog: one span per half of the day, filtered by schedule.
func halfDayCatalog(schedule Schedule) []Slot {
	morning := rangeSlot(morningOpen, morningClose)
	afternoon := rangeSlot(afternoonOpen, afternoonClose)

	switch schedule {
	case ScheduleMorning:
		return []Slot{morning}
	case ScheduleAfternoon:
		return []Slot{afternoon}
	default:
		return []Slot{morning, afternoon}
	}
}

func rangeSlot(start, end int) Slot {
	return Slot{
		Label: FormatClock(start) + "-" + FormatClock(end),
		Start: start,
		End:   end,
	}
}

// FormatClock renders minutes-from-midnight as the site's canonical
// 12-hour label, e.g. 480 -> "8:00 AM", 750 -> "12:30 PM".
func FormatClock(minuteOfDay int) string {
	hour := minuteOfDay / 60
	minute := minuteOfDay % 60

	period := "AM"
	if hour >= 12 {
		period = "PM"
	}

	display := hour % 12
	if display == 0 {
		display = 12
	}

	return fmt.Sprintf("%d:%02d %s", display, minute, period)
}

// ParseClock parses a single "H:MM AM/PM" label into minutes from
// midnight.
func ParseClock(label string) (int, error) {
	s := strings.TrimSpace(label)

	fields := strings.Fields(s)
	if len(fields) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, label)
	}

	period := strings.ToUpper(fields[1])
	if period != "AM" && period != "PM" {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, label)
	}

	hm := strings.SplitN(fields[0], ":", 2)
	if len(hm) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, label)
	}

	hour, err := strconv.Atoi(hm[0])
	if err != nil || hour < 1 || hour > 12 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, label)
	}
	minute, err := strconv.Atoi(hm[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, label)
	}

	if period == "PM" && hour != 12 {
		hour += 12
	} else if period == "AM" && hour == 12 {
		hour = 0
	}

	return hour*60 + minute, nil
}

// ParseRange parses a "start-end" label into a minute range. Returns
// ok=false for point labels and malformed input.
func ParseRange(label string) (start, end int, ok bool) {
	parts := strings.SplitN(label, "-", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}

	start, err := ParseClock(parts[0])
	if err != nil {
		return 0, 0, false
	}
	end, err = ParseClock(parts[1])
	if err != nil {
		return 0, 0, false
	}

	return start, end, true
}

// ParseCutoff returns the minute of day at which a slot label counts as
// elapsed: the end component for a range, the time itself for a point
// label. ok=false means the label is malformed; callers must fail safe
// by treating the slot as not yet elapsed.
func ParseCutoff(label string) (int, bool) {
	if _, end, ok := ParseRange(label); ok {
		return end, true
	}

	m, err := ParseClock(label)
	if err != nil {
		return 0, false
	}
	return m, true
}
