package booking_events

// Subscriber hands out notification channels for booking changes.
type Subscriber interface {
	Subscribe() (<-chan struct{}, func())
}

// SubscriberGauge tracks the number of connected stream clients.
// A nil gauge disables tracking.
type SubscriberGauge interface {
	Inc()
	Dec()
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
