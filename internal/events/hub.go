package events

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// EventType identifies what happened to a print-queue entry
type EventType string

const (
	EventProgress  EventType = "progress"
	EventStarted   EventType = "started"
	EventCompleted EventType = "completed"
	EventDecision  EventType = "decision"
)

// Event is one frame on the print-queue stream. Frames mirror the list
// endpoint's fields so clients can patch their local state without refetching.
type Event struct {
	Type                   EventType  `json:"type"`
	ID                     uuid.UUID  `json:"id"`
	Progress               int        `json:"progress"`
	ProgressLastReportTime *time.Time `json:"progress_last_report_time,omitempty"`
}

// Hub fans events out to SSE subscribers. Each subscriber owns a buffered
// channel; when a subscriber falls behind, frames are dropped for it rather
// than blocking the publisher. Dropped frames are recovered by the clients'
// polling fallback.
type Hub struct {
	mu          sync.RWMutex
	subscribers map[chan Event]struct{}
	bufferSize  int
	closed      bool
}

// NewHub creates an event hub
func NewHub() *Hub {
	return &Hub{
		subscribers: make(map[chan Event]struct{}),
		bufferSize:  16,
	}
}

// Subscribe registers a new subscriber and returns its channel
func (h *Hub) Subscribe() chan Event {
	ch := make(chan Event, h.bufferSize)
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		close(ch)
		return ch
	}
	h.subscribers[ch] = struct{}{}
	return ch
}

// Unsubscribe removes a subscriber and closes its channel
func (h *Hub) Unsubscribe(ch chan Event) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.subscribers[ch]; !ok {
		return
	}
	delete(h.subscribers, ch)
	close(ch)
}

// Publish delivers an event to all subscribers without blocking
func (h *Hub) Publish(event Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for ch := range h.subscribers {
		select {
		case ch <- event:
		default:
			// Subscriber buffer full; frame dropped, client resyncs via polling.
		}
	}
}

// SubscriberCount returns the number of connected subscribers
func (h *Hub) SubscriberCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers)
}

// Close shuts the hub down, closing all subscriber channels
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return
	}
	h.closed = true
	for ch := range h.subscribers {
		delete(h.subscribers, ch)
		close(ch)
	}
}
