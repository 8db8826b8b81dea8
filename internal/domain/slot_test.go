package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlotCatalog_TargetRange(t *testing.T) {
	slots := SlotCatalog(ServiceTargetRange, "")

	require.Len(t, slots, 18)

	assert.Equal(t, "8:00 AM", slots[0].Label)
	assert.Equal(t, 480, slots[0].Start)
	assert.Equal(t, 510, slots[0].End)

	assert.Equal(t, "12:00 PM", slots[8].Label)
	assert.Equal(t, "1:00 PM", slots[9].Label)
	assert.Equal(t, "5:00 PM", slots[17].Label)

	// No slot label names a range; ordering is strictly increasing.
	seen := make(map[string]bool)
	for i, s := range slots {
		assert.False(t, s.IsRange(), "slot %q must be a point label", s.Label)
		assert.False(t, seen[s.Label], "duplicate label %q", s.Label)
		seen[s.Label] = true
		if i > 0 {
			assert.Greater(t, s.Start, slots[i-1].Start)
		}
	}
}

func TestSlotCatalog_Regular(t *testing.T) {
	for _, service := range []ServiceType{ServiceRegular, ServiceGroup} {
		slots := SlotCatalog(service, "")

		require.Len(t, slots, 4)
		assert.Equal(t, "8:00 AM-10:00 AM", slots[0].Label)
		assert.Equal(t, "10:00 AM-12:00 PM", slots[1].Label)
		assert.Equal(t, "1:00 PM-3:00 PM", slots[2].Label)
		assert.Equal(t, "3:00 PM-5:00 PM", slots[3].Label)

		for _, s := range slots {
			assert.True(t, s.IsRange())
			assert.Equal(t, 120, s.End-s.Start)
		}
	}
}

func TestSlotCatalog_HalfDay(t *testing.T) {
	both := SlotCatalog(ServiceHalfDay, "")
	require.Len(t, both, 2)
	assert.Equal(t, "8:00 AM-12:00 PM", both[0].Label)
	assert.Equal(t, "1:00 PM-5:00 PM", both[1].Label)

	morning := SlotCatalog(ServiceHalfDay, ScheduleMorning)
	require.Len(t, morning, 1)
	assert.Equal(t, "8:00 AM-12:00 PM", morning[0].Label)
	assert.Equal(t, 480, morning[0].Start)
	assert.Equal(t, 720, morning[0].End)

	afternoon := SlotCatalog(ServiceHalfDay, ScheduleAfternoon)
	require.Len(t, afternoon, 1)
	assert.Equal(t, "1:00 PM-5:00 PM", afternoon[0].Label)
	assert.Equal(t, 780, afternoon[0].Start)
	assert.Equal(t, 1020, afternoon[0].End)
}

func TestSlotCatalog_UnknownServiceFallsBackToRegular(t *testing.T) {
	slots := SlotCatalog(NormalizeServiceType("Group of 10 - P 7,000"), "")
	require.Len(t, slots, 4)
	assert.Equal(t, "8:00 AM-10:00 AM", slots[0].Label)
}

func TestFormatClock(t *testing.T) {
	tests := []struct {
		minute int
		want   string
	}{
		{480, "8:00 AM"},
		{510, "8:30 AM"},
		{690, "11:30 AM"},
		{720, "12:00 PM"},
		{750, "12:30 PM"},
		{780, "1:00 PM"},
		{1020, "5:00 PM"},
		{0, "12:00 AM"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatClock(tt.minute))
	}
}

func TestParseClock(t *testing.T) {
	tests := []struct {
		label string
		want  int
	}{
		{"8:00 AM", 480},
		{"11:30 AM", 690},
		{"12:00 PM", 720},
		{"12:00 AM", 0},
		{"1:00 PM", 780},
		{"5:00 PM", 1020},
		{"  3:00 PM ", 900},
	}

	for _, tt := range tests {
		got, err := ParseClock(tt.label)
		require.NoError(t, err, "label %q", tt.label)
		assert.Equal(t, tt.want, got, "label %q", tt.label)
	}
}

func TestParseClock_Invalid(t *testing.T) {
	for _, label := range []string{"", "8:00", "25:00 AM", "8:61 AM", "8:00 XM", "0:30 PM", "garbage"} {
		_, err := ParseClock(label)
		assert.ErrorIs(t, err, ErrInvalidClock, "label %q", label)
	}
}

func TestParseRange(t *testing.T) {
	start, end, ok := ParseRange("8:00 AM-10:00 AM")
	require.True(t, ok)
	assert.Equal(t, 480, start)
	assert.Equal(t, 600, end)

	start, end, ok = ParseRange("1:00 PM-5:00 PM")
	require.True(t, ok)
	assert.Equal(t, 780, start)
	assert.Equal(t, 1020, end)

	for _, label := range []string{"8:00 AM", "", "8:00 AM-garbage", "garbage-10:00 AM"} {
		_, _, ok := ParseRange(label)
		assert.False(t, ok, "label %q", label)
	}
}

func TestParseCutoff(t *testing.T) {
	cutoff, ok := ParseCutoff("8:00 AM-10:00 AM")
	require.True(t, ok)
	assert.Equal(t, 600, cutoff, "ranges elapse at their end")

	cutoff, ok = ParseCutoff("8:30 AM")
	require.True(t, ok)
	assert.Equal(t, 510, cutoff, "points elapse at their own time")

	_, ok = ParseCutoff("not a slot")
	assert.False(t, ok)
}

func TestSlotOverlaps(t *testing.T) {
	halfDay := Slot{Label: "8:00 AM-12:00 PM", Start: 480, End: 720}
	early := Slot{Label: "8:00 AM-10:00 AM", Start: 480, End: 600}
	late := Slot{Label: "10:00 AM-12:00 PM", Start: 600, End: 720}
	afternoon := Slot{Label: "1:00 PM-3:00 PM", Start: 780, End: 900}

	assert.True(t, halfDay.Overlaps(early))
	assert.True(t, halfDay.Overlaps(late))
	assert.False(t, halfDay.Overlaps(afternoon))

	// Touching boundaries do not overlap.
	assert.False(t, early.Overlaps(late))
}

func TestNormalizeServiceType(t *testing.T) {
	assert.Equal(t, ServiceRegular, NormalizeServiceType("regular"))
	assert.Equal(t, ServiceTargetRange, NormalizeServiceType("target-range"))
	assert.Equal(t, ServiceGroup, NormalizeServiceType("group"))
	assert.Equal(t, ServiceHalfDay, NormalizeServiceType("half-day"))
	assert.Equal(t, ServiceRegular, NormalizeServiceType("Group of 10 - P 7,000"))
	assert.Equal(t, ServiceRegular, NormalizeServiceType(""))
}

func TestUsesRangeCatalog(t *testing.T) {
	assert.True(t, ServiceRegular.UsesRangeCatalog())
	assert.True(t, ServiceGroup.UsesRangeCatalog())
	assert.True(t, ServiceHalfDay.UsesRangeCatalog())
	assert.False(t, ServiceTargetRange.UsesRangeCatalog())
}
