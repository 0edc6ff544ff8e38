package events

import (
	"sync"
)

// Event types published on the hub.
const (
	EventOrderCreated             = "order.created"
	EventOrderStatusChanged       = "order.status_changed"
	EventReservationCreated       = "reservation.created"
	EventReservationStatusChanged = "reservation.status_changed"
	EventMenuUpdated              = "menu.updated"
)

type Message struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// Hub is an in-process publish/subscribe fan-out. Producers (the persistence
// layer, after commit) publish typed messages; consumers (SSE and websocket
// handlers) subscribe and forward to connected clients. Slow subscribers
// have messages dropped rather than blocking publishers.
type Hub struct {
	mu   sync.RWMutex
	subs map[chan Message]struct{}
}

func NewHub() *Hub {
	return &Hub{subs: make(map[chan Message]struct{})}
}

// Subscribe registers a consumer. The returned cancel func must be called
// when the consumer goes away; it closes the channel.
func (h *Hub) Subscribe(buffer int) (<-chan Message, func()) {
	ch := make(chan Message, buffer)

	h.mu.Lock()
	h.subs[ch] = struct{}{}
	h.mu.Unlock()

	cancel := func() {
		h.mu.Lock()
		if _, ok := h.subs[ch]; ok {
			delete(h.subs, ch)
			close(ch)
		}
		h.mu.Unlock()
	}
	return ch, cancel
}

func (h *Hub) Publish(msg Message) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for ch := range h.subs {
		select {
		case ch <- msg:
		default:
			// Subscriber buffer full; drop instead of blocking the writer.
		}
	}
}

func (h *Hub) SubscriberCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}

var defaultHub = NewHub()

// Default returns the process-wide hub.
func Default() *Hub {
	return defaultHub
}

func Publish(event string, data interface{}) {
	defaultHub.Publish(Message{Event: event, Data: data})
}
