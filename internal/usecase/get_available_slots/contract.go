package get_available_slots

import "time"

// OccupancyIndex is the read side of the booking index.
type OccupancyIndex interface {
	// OccupiedSlots returns the occupied slot labels for a date
	// (YYYY-MM-DD); empty for unknown dates.
	OccupiedSlots(date string) []string
}

// TimeProvider supplies the current time (injectable for tests).
type TimeProvider interface {
	Now() time.Time
}

// Logger is the logging interface for this use case.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider is the production time provider.
type RealTimeProvider struct{}

// Now returns the current wall-clock time.
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
