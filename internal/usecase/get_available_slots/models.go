package get_available_slots

import (
	"time"

	"github.com/outpost-paintball/booking-service/internal/domain"
)

// Request asks for the availability of every catalog slot on a date.
type Request struct {
	ServiceType string          // raw service label; legacy values fall back to regular
	Schedule    domain.Schedule // half-day only: morning, afternoon or empty
	Date        time.Time       // date only
}

// Response lists each catalog slot with its availability verdict, in
// catalog order.
type Response struct {
	Date        time.Time
	ServiceType domain.ServiceType
	Schedule    domain.Schedule
	Slots       []Slot
}

// Slot is one catalog entry with its availability verdict.
type Slot struct {
	Label     string
	Start     int // minutes from midnight
	End       int
	Available bool
}
