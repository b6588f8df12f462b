// CineResenas - Movie Catalog and Review Aggregation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cineresenas

package websocket

import (
	"context"
	"sort"
	"sync"

	"github.com/tomtom215/cineresenas/internal/logging"
	"github.com/tomtom215/cineresenas/internal/metrics"
)

// Message types sent by the server besides domain events.
const (
	MessageTypePing = "ping"
	MessageTypePong = "pong"
)

// broadcastBuffer bounds queued broadcasts; a full queue drops the newest message.
const broadcastBuffer = 256

// Message is the envelope written to clients.
type Message struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

// Hub maintains the set of active clients and broadcasts messages to them.
type Hub struct {
	clients    map[*Client]bool
	broadcast  chan Message
	Register   chan *Client
	Unregister chan *Client
	mu         sync.RWMutex
}

// NewHub creates a hub; call RunWithContext to start it.
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan Message, broadcastBuffer),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
	}
}

// RunWithContext serves registrations and broadcasts until ctx is done,
// then closes every client and returns ctx.Err().
//
// Lifecycle events are drained before broadcasts so a message is never sent
// to a client whose registration is still pending.
func (h *Hub) RunWithContext(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			h.shutdown()
			return ctx.Err()
		default:
		}

		select {
		case c := <-h.Register:
			h.add(c)
			continue
		case c := <-h.Unregister:
			h.remove(c)
			continue
		default:
		}

		select {
		case <-ctx.Done():
			h.shutdown()
			return ctx.Err()
		case c := <-h.Register:
			h.add(c)
		case c := <-h.Unregister:
			h.remove(c)
		case msg := <-h.broadcast:
			h.fanOut(msg)
		}
	}
}

func (h *Hub) add(c *Client) {
	h.mu.Lock()
	h.clients[c] = true
	n := len(h.clients)
	h.mu.Unlock()

	metrics.WSConnections.Set(float64(n))
	logging.Debug().Uint64("client_id", c.id).Int("total_clients", n).Msg("websocket client connected")
}

func (h *Hub) remove(c *Client) {
	h.mu.Lock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}
	n := len(h.clients)
	h.mu.Unlock()

	metrics.WSConnections.Set(float64(n))
	logging.Debug().Uint64("client_id", c.id).Int("total_clients", n).Msg("websocket client disconnected")
}

// fanOut delivers msg in client id order. Clients with a full send queue are dropped.
func (h *Hub) fanOut(msg Message) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, c := range h.sortedLocked() {
		select {
		case c.send <- msg:
		default:
			metrics.WSMessagesDropped.WithLabelValues("slow_client").Inc()
			close(c.send)
			delete(h.clients, c)
		}
	}
	metrics.WSConnections.Set(float64(len(h.clients)))
}

func (h *Hub) shutdown() {
	h.mu.Lock()
	clients := h.sortedLocked()
	for _, c := range clients {
		close(c.send)
		delete(h.clients, c)
	}
	h.mu.Unlock()

	metrics.WSConnections.Set(0)
	logging.Info().
		Str("component", "websocket-hub").
		Int("clients_closed", len(clients)).
		Msg("websocket hub stopped")
}

// sortedLocked must be called with mu held.
func (h *Hub) sortedLocked() []*Client {
	out := make([]*Client, 0, len(h.clients))
	for c := range h.clients {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].id < out[j].id })
	return out
}

// BroadcastJSON queues a message for every connected client.
// It never blocks; when the queue is full the message is dropped.
func (h *Hub) BroadcastJSON(messageType string, data interface{}) {
	select {
	case h.broadcast <- Message{Type: messageType, Data: data}:
	default:
		metrics.WSMessagesDropped.WithLabelValues("hub_full").Inc()
		logging.Warn().Str("type", messageType).Msg("broadcast channel full, dropping message")
	}
}

// GetClientCount returns the number of connected clients.
func (h *Hub) GetClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
