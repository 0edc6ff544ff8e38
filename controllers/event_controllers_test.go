package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"restaurant-platform/events"
)

func TestStreamEventsForwardsHubMessages(t *testing.T) {
	r := gin.New()
	r.GET("/events/stream", StreamEvents)

	ctx, cancel := context.WithCancel(context.Background())
	req := httptest.NewRequest(http.MethodGet, "/events/stream", nil).WithContext(ctx)
	w := httptest.NewRecorder()

	done := make(chan struct{})
	go func() {
		defer close(done)
		r.ServeHTTP(w, req)
	}()

	// Wait for the subscription to land before publishing.
	deadline := time.Now().Add(2 * time.Second)
	for events.Default().SubscriberCount() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("stream never subscribed")
		}
		time.Sleep(5 * time.Millisecond)
	}

	events.Publish(events.EventOrderCreated, map[string]string{"order_number": "ORD-1"})
	time.Sleep(50 * time.Millisecond)
	cancel()
	<-done

	body := w.Body.String()
	assert.Contains(t, body, "event: order.created")
	assert.Contains(t, body, `"order_number":"ORD-1"`)
	assert.Equal(t, "text/event-stream", w.Header().Get("Content-Type"))
}
