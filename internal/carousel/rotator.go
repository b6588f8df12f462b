// CineResenas - Movie Catalog and Review Aggregation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cineresenas

// Package carousel rotates the featured movie on a timer.
//
// The rotator only reads the catalog length. It never mutates catalog,
// favorites, or session state, and stays in range when the catalog is empty
// or shrinks between ticks.
package carousel

import (
	"context"
	"sync"
	"time"

	"github.com/tomtom215/cineresenas/internal/logging"
	"github.com/tomtom215/cineresenas/internal/metrics"
)

// DefaultInterval matches the featured banner of the catalog UI.
const DefaultInterval = 4 * time.Second

// Next returns the index after i in a list of n items, wrapping around.
func Next(i, n int) int {
	if n <= 0 {
		return 0
	}
	return (Clamp(i, n) + 1) % n
}

// Prev returns the index before i in a list of n items, wrapping around.
func Prev(i, n int) int {
	if n <= 0 {
		return 0
	}
	return (Clamp(i, n) - 1 + n) % n
}

// Clamp folds i into [0, n). An empty list yields 0.
func Clamp(i, n int) int {
	if n <= 0 {
		return 0
	}
	i %= n
	if i < 0 {
		i += n
	}
	return i
}

// Counter reports the current catalog size.
type Counter interface {
	Len() int
}

// Rotator advances the featured index every interval.
type Rotator struct {
	source   Counter
	interval time.Duration

	mu    sync.Mutex
	index int
}

// NewRotator creates a rotator over source. A non-positive interval uses DefaultInterval.
func NewRotator(source Counter, interval time.Duration) *Rotator {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Rotator{source: source, interval: interval}
}

// Current returns the featured index, valid for the catalog's current length.
// ok is false when the catalog is empty.
func (r *Rotator) Current() (index int, ok bool) {
	n := r.source.Len()
	r.mu.Lock()
	defer r.mu.Unlock()
	if n == 0 {
		return 0, false
	}
	r.index = Clamp(r.index, n)
	return r.index, true
}

// Advance moves to the next movie and returns the new index.
func (r *Rotator) Advance() int {
	return r.step(Next)
}

// Back moves to the previous movie and returns the new index.
func (r *Rotator) Back() int {
	return r.step(Prev)
}

func (r *Rotator) step(move func(i, n int) int) int {
	n := r.source.Len()
	r.mu.Lock()
	r.index = move(r.index, n)
	i := r.index
	r.mu.Unlock()

	metrics.CarouselIndex.Set(float64(i))
	return i
}

// Serve advances on every tick until ctx is done. Implements suture.Service.
func (r *Rotator) Serve(ctx context.Context) error {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	logging.Debug().Dur("interval", r.interval).Msg("Carousel started")
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			r.Advance()
		}
	}
}

// String names the service in supervisor logs.
func (r *Rotator) String() string {
	return "carousel"
}
