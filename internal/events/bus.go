// CineResenas - Movie Catalog and Review Aggregation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cineresenas

// Package events publishes catalog domain events on an in-process Watermill
// Pub/Sub and forwards them to WebSocket clients.
//
// Events are notifications only: nothing reads them back to rebuild state,
// and a dropped event never affects the catalog.
package events

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/goccy/go-json"

	"github.com/tomtom215/cineresenas/internal/logging"
	"github.com/tomtom215/cineresenas/internal/metrics"
	"github.com/tomtom215/cineresenas/internal/models"
)

// Topic carries every catalog event.
const Topic = "catalog.events"

// ErrClosed is returned by Publish after Close.
var ErrClosed = errors.New("event bus is closed")

// Type names a domain event.
type Type string

// Event types.
const (
	TypeMovieAdded      Type = "movie_added"
	TypeReviewAdded     Type = "review_added"
	TypeFavoriteToggled Type = "favorite_toggled"
	TypeSessionChanged  Type = "session_changed"
	TypeViewChanged     Type = "view_changed"
)

// Event is the payload of one message on Topic.
type Event struct {
	ID         string            `json:"id"`
	Type       Type              `json:"type"`
	MovieID    string            `json:"movie_id,omitempty"`
	ReviewID   string            `json:"review_id,omitempty"`
	Rating     float64           `json:"rating,omitempty"`
	Favorite   *bool             `json:"favorite,omitempty"`
	Session    *models.Session   `json:"session,omitempty"`
	View       *models.ViewState `json:"view,omitempty"`
	OccurredAt time.Time         `json:"occurred_at"`
}

// Publisher accepts domain events.
type Publisher interface {
	Publish(ctx context.Context, evt Event) error
}

// Bus is a Watermill GoChannel Pub/Sub scoped to Topic.
type Bus struct {
	pubsub *gochannel.GoChannel

	mu     sync.RWMutex
	closed bool
}

// NewBus creates a bus with the given per-subscriber buffer.
// Publishing never waits for subscribers to acknowledge.
func NewBus(buffer int64) *Bus {
	logger := watermill.NewSlogLogger(logging.NewSlogLogger())
	return &Bus{
		pubsub: gochannel.NewGoChannel(gochannel.Config{
			OutputChannelBuffer:            buffer,
			BlockPublishUntilSubscriberAck: false,
		}, logger),
	}
}

// Publish encodes evt and publishes it on Topic.
func (b *Bus) Publish(ctx context.Context, evt Event) error {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.closed {
		return ErrClosed
	}

	if evt.ID == "" {
		evt.ID = watermill.NewUUID()
	}
	if evt.OccurredAt.IsZero() {
		evt.OccurredAt = time.Now().UTC()
	}

	payload, err := json.Marshal(evt)
	if err != nil {
		metrics.EventsPublishErrors.Inc()
		return fmt.Errorf("encode event: %w", err)
	}

	msg := message.NewMessage(evt.ID, payload)
	msg.Metadata.Set("type", string(evt.Type))
	if id := logging.CorrelationIDFromContext(ctx); id != "" {
		msg.Metadata.Set("correlation_id", id)
	}

	if err := b.pubsub.Publish(Topic, msg); err != nil {
		metrics.EventsPublishErrors.Inc()
		return fmt.Errorf("publish %s: %w", evt.Type, err)
	}
	metrics.EventsPublished.WithLabelValues(string(evt.Type)).Inc()
	return nil
}

// Subscribe returns the message stream of Topic. It closes when ctx ends
// or the bus is closed.
func (b *Bus) Subscribe(ctx context.Context) (<-chan *message.Message, error) {
	return b.pubsub.Subscribe(ctx, Topic)
}

// Close stops the bus; later publishes fail.
func (b *Bus) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return nil
	}
	b.closed = true
	return b.pubsub.Close()
}

// Decode parses a message produced by Publish.
func Decode(msg *message.Message) (Event, error) {
	var evt Event
	if err := json.Unmarshal(msg.Payload, &evt); err != nil {
		return Event{}, fmt.Errorf("decode event %s: %w", msg.UUID, err)
	}
	return evt, nil
}
