// CineResenas - Movie Catalog and Review Aggregation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cineresenas

package events

import (
	"context"
	"fmt"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/tomtom215/cineresenas/internal/logging"
)

// Broadcaster fans a typed message out to push clients.
type Broadcaster interface {
	BroadcastJSON(messageType string, data interface{})
}

// Bridge forwards every bus event to a Broadcaster. It implements
// suture.Service so the supervisor restarts it if the subscription fails.
type Bridge struct {
	bus Subscriber
	out Broadcaster
}

// Subscriber is the subscription side of Bus.
type Subscriber interface {
	Subscribe(ctx context.Context) (<-chan *message.Message, error)
}

// NewBridge connects bus to out.
func NewBridge(bus Subscriber, out Broadcaster) *Bridge {
	return &Bridge{bus: bus, out: out}
}

// Serve forwards events until ctx is done.
func (b *Bridge) Serve(ctx context.Context) error {
	msgs, err := b.bus.Subscribe(ctx)
	if err != nil {
		return fmt.Errorf("subscribe %s: %w", Topic, err)
	}

	log := logging.WithComponent("event-bridge")
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-msgs:
			if !ok {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				return fmt.Errorf("subscription to %s closed", Topic)
			}
			evt, err := Decode(msg)
			if err != nil {
				log.Warn().Err(err).Msg("Dropping undecodable event")
				msg.Ack()
				continue
			}
			b.out.BroadcastJSON(string(evt.Type), evt)
			msg.Ack()
		}
	}
}

// String names the service in supervisor logs.
func (b *Bridge) String() string {
	return "event-bridge"
}
