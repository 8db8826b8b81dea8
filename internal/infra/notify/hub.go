// Package notify carries the booking change feed: a postgres
// LISTEN/NOTIFY listener on one side and an in-process fan-out hub on the
// other. Subscribers (the occupancy index, SSE handlers) only learn that
// "something changed" — the payload is never inspected.
package notify

import "sync"

// Hub fans a change signal out to any number of subscribers. Each
// subscriber channel is buffered with capacity one and further signals
// coalesce while a subscriber is busy, so a burst of changes costs one
// re-fetch.
type Hub struct {
	mu   sync.Mutex
	subs map[chan struct{}]struct{}
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{subs: make(map[chan struct{}]struct{})}
}

// Subscribe registers a new subscriber. The returned cancel func must be
// called exactly once when the subscriber goes away; after cancel the
// channel is closed.
func (h *Hub) Subscribe() (<-chan struct{}, func()) {
	ch := make(chan struct{}, 1)

	h.mu.Lock()
	h.subs[ch] = struct{}{}
	h.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subs, ch)
			h.mu.Unlock()
			close(ch)
		})
	}

	return ch, cancel
}

// Broadcast signals every subscriber without blocking. A subscriber that
// already has a pending signal is skipped; it will re-fetch anyway.
func (h *Hub) Broadcast() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for ch := range h.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

// Subscribers returns the current subscriber count.
func (h *Hub) Subscribers() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}
