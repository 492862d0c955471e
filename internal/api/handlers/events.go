package handlers

import (
	"io"
	"time"

	"splint-factory-backend/internal/events"

	"github.com/gin-contrib/sse"
	"github.com/gin-gonic/gin"
)

// EventsHandler streams print-queue state changes to browser clients over
// Server-Sent Events
type EventsHandler struct {
	hub       *events.Hub
	heartbeat time.Duration
}

// NewEventsHandler creates a new SSE handler
func NewEventsHandler(hub *events.Hub, heartbeat time.Duration) *EventsHandler {
	return &EventsHandler{hub: hub, heartbeat: heartbeat}
}

// Stream handles GET /api/v1/events
// @Summary Subscribe to the print-queue event stream
// @Description Server-Sent Events: started, progress, completed and decision frames, with periodic keep-alive comments. EventSource clients pass the JWT via the token query parameter.
// @Tags events
// @Produce text/event-stream
// @Param token query string false "Access token for EventSource clients"
// @Success 200 {string} string "Event stream"
// @Security BearerAuth
// @Router /api/v1/events [get]
func (h *EventsHandler) Stream(c *gin.Context) {
	sub := h.hub.Subscribe()
	defer h.hub.Unsubscribe(sub)

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")
	c.Writer.Header().Set("X-Accel-Buffering", "no")
	c.Writer.Flush()

	heartbeat := time.NewTicker(h.heartbeat)
	defer heartbeat.Stop()

	for {
		select {
		case <-c.Request.Context().Done():
			return
		case event, ok := <-sub:
			if !ok {
				return
			}
			c.Render(-1, sse.Event{Event: string(event.Type), Data: event})
			c.Writer.Flush()
		case <-heartbeat.C:
			// SSE comment: ignored by EventSource clients, keeps idle
			// connections from being reaped by proxies.
			if _, err := io.WriteString(c.Writer, ": ping\n\n"); err != nil {
				return
			}
			c.Writer.Flush()
		}
	}
}
