package booking_events

import (
	"fmt"
	"net/http"
	"time"
)

const keepAliveInterval = 30 * time.Second

// Handler streams booking change pings over server-sent events. The
// payload carries no data; clients re-fetch availability on every
// "change" event.
type Handler struct {
	subscriber Subscriber
	gauge      SubscriberGauge
	logger     Logger
}

func NewHandler(subscriber Subscriber, gauge SubscriberGauge, logger Logger) *Handler {
	return &Handler{
		subscriber: subscriber,
		gauge:      gauge,
		logger:     logger,
	}
}

// Handle GET /api/v1/bookings/events
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		h.logger.Error("GET /bookings/events - Streaming unsupported by response writer")
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	events, cancel := h.subscriber.Subscribe()
	defer cancel()

	if h.gauge != nil {
		h.gauge.Inc()
		defer h.gauge.Dec()
	}

	h.logger.Info("GET /bookings/events - Client connected: remote=%s", r.RemoteAddr)

	// Initial comment so proxies commit the stream right away.
	fmt.Fprint(w, ": connected\n\n")
	flusher.Flush()

	keepAlive := time.NewTicker(keepAliveInterval)
	defer keepAlive.Stop()

	for {
		select {
		case <-r.Context().Done():
			h.logger.Info("GET /bookings/events - Client disconnected: remote=%s", r.RemoteAddr)
			return

		case <-events:
			fmt.Fprint(w, "event: change\ndata: {}\n\n")
			flusher.Flush()

		case <-keepAlive.C:
			fmt.Fprint(w, ": keep-alive\n\n")
			flusher.Flush()
		}
	}
}
