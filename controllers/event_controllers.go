package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"restaurant-platform/events"
	"restaurant-platform/utils"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// StreamEvents forwards hub messages to the client as Server-Sent Events.
// Storefront clients use this for live order and reservation updates.
func StreamEvents(c *gin.Context) {
	flusher, ok := c.Writer.(http.Flusher)
	if !ok {
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")

	msgs, cancel := events.Default().Subscribe(16)
	defer cancel()

	// Heartbeat keeps intermediaries from closing idle streams.
	heartbeat := time.NewTicker(30 * time.Second)
	defer heartbeat.Stop()

	for {
		select {
		case msg, open := <-msgs:
			if !open {
				return
			}
			payload, err := json.Marshal(msg.Data)
			if err != nil {
				utils.ErrorLogger.Printf("SSE marshal error: %v", err)
				continue
			}
			fmt.Fprintf(c.Writer, "event: %s\ndata: %s\n\n", msg.Event, payload)
			flusher.Flush()
		case <-heartbeat.C:
			fmt.Fprint(c.Writer, ": keepalive\n\n")
			flusher.Flush()
		case <-c.Request.Context().Done():
			return
		}
	}
}

// EventsWebsocket forwards hub messages over a websocket connection, for
// back-office screens that also send pings.
func EventsWebsocket(c *gin.Context) {
	ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	defer ws.Close()

	msgs, cancel := events.Default().Subscribe(16)
	defer cancel()

	// Reader drains client frames and unblocks the writer on disconnect.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := ws.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case msg, open := <-msgs:
			if !open {
				return
			}
			if err := ws.WriteJSON(msg); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}
