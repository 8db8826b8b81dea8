package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/lib/pq"
)

// Logger is the logging interface the listener needs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// EventCounter counts received change notifications. May be nil when
// metrics are disabled.
type EventCounter interface {
	Inc()
}

const (
	minReconnectInterval = 10 * time.Second
	maxReconnectInterval = time.Minute
)

// Listener subscribes to the booking change channel over postgres
// LISTEN/NOTIFY and forwards every event into the hub. The notification
// payload is ignored: any event means "re-fetch everything".
type Listener struct {
	pq           *pq.Listener
	hub          *Hub
	channel      string
	pingInterval time.Duration
	log          Logger
	events       EventCounter
}

// NewListener creates a listener for the given channel. dsn is the same
// connection string the main pool uses.
func NewListener(dsn, channel string, pingInterval time.Duration, hub *Hub, log Logger, events EventCounter) *Listener {
	pql := pq.NewListener(dsn, minReconnectInterval, maxReconnectInterval, func(ev pq.ListenerEventType, err error) {
		switch ev {
		case pq.ListenerEventConnected:
			log.Info("notify: listener connected to channel %s", channel)
		case pq.ListenerEventReconnected:
			log.Info("notify: listener reconnected to channel %s", channel)
		case pq.ListenerEventDisconnected:
			log.Warn("notify: listener disconnected: %v", err)
		case pq.ListenerEventConnectionAttemptFailed:
			log.Error("notify: listener connection attempt failed: %v", err)
		}
	})

	return &Listener{
		pq:           pql,
		hub:          hub,
		channel:      channel,
		pingInterval: pingInterval,
		log:          log,
		events:       events,
	}
}

// Run listens until ctx is cancelled. The subscription is released on
// every exit path.
func (l *Listener) Run(ctx context.Context) error {
	if err := l.pq.Listen(l.channel); err != nil {
		return fmt.Errorf("notify: failed to listen on channel %s: %w", l.channel, err)
	}
	defer l.pq.Close()

	ticker := time.NewTicker(l.pingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			l.log.Info("notify: listener stopping")
			return nil

		case n, ok := <-l.pq.Notify:
			if !ok {
				return nil
			}
			// n is nil after a reconnect; events may have been missed,
			// so a conservative re-fetch is forced either way.
			if n == nil {
				l.log.Warn("notify: reconnect gap, forcing re-fetch")
			}
			if l.events != nil {
				l.events.Inc()
			}
			l.hub.Broadcast()

		case <-ticker.C:
			if err := l.pq.Ping(); err != nil {
				l.log.Warn("notify: listener ping failed: %v", err)
			}
		}
	}
}
