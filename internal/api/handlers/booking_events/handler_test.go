package booking_events

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/outpost-paintball/booking-service/internal/infra/notify"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func TestHandle_StreamsChangeEvents(t *testing.T) {
	hub := notify.NewHub()
	h := NewHandler(hub, nil, nopLogger{})

	ctx, cancel := context.WithCancel(context.Background())
	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings/events", nil).WithContext(ctx)
	rec := httptest.NewRecorder()

	done := make(chan struct{})
	go func() {
		h.Handle(rec, req)
		close(done)
	}()

	// Wait for the subscription before broadcasting.
	for i := 0; i < 100 && hub.Subscribers() == 0; i++ {
		time.Sleep(10 * time.Millisecond)
	}
	assert.Equal(t, 1, hub.Subscribers())

	hub.Broadcast()
	time.Sleep(50 * time.Millisecond)

	cancel()
	<-done

	body := rec.Body.String()
	assert.Equal(t, "text/event-stream", rec.Header().Get("Content-Type"))
	assert.True(t, strings.HasPrefix(body, ": connected\n\n"))
	assert.Contains(t, body, "event: change\ndata: {}\n\n")

	// Subscription released on disconnect.
	assert.Equal(t, 0, hub.Subscribers())
}
