// Package ws streams marketplace events (listings, purchases, sales) to
// connected browsers so open dashboards refresh without polling.
package ws

import (
	"encoding/json"
	"sync"

	"briks_webapp/internal/logger"
	"briks_webapp/internal/service"
)

// Hub fans market events out to every connected client.
type Hub struct {
	mu      sync.RWMutex
	clients map[*Client]struct{}
}

func NewHub() *Hub {
	return &Hub{clients: make(map[*Client]struct{})}
}

var _ service.EventPublisher = (*Hub)(nil)

func (h *Hub) register(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[c] = struct{}{}
}

func (h *Hub) unregister(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}
}

// PublishMarketEvent broadcasts the event to all clients. Slow clients with
// a full send buffer are dropped rather than allowed to stall the feed.
func (h *Hub) PublishMarketEvent(evt service.MarketEvent) {
	payload, err := json.Marshal(evt)
	if err != nil {
		logger.Error("marshal market event", "error", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		select {
		case c.send <- payload:
		default:
			delete(h.clients, c)
			close(c.send)
		}
	}
}

// ClientCount reports connected clients (used by tests and readiness).
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
