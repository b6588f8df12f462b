// CineResenas - Movie Catalog and Review Aggregation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cineresenas

package models

import "time"

// Genre is one value of the closed genre enumeration supplied by configuration.
type Genre string

// Platform is one value of the closed streaming platform enumeration.
type Platform string

// Movie is a published catalog entry.
//
// Rating is derived: it always equals the aggregate of Reviews and is never
// set directly by callers. Reviews are append-only.
type Movie struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Year        int        `json:"year"`
	Genre       Genre      `json:"genre"`
	Description string     `json:"description"`
	Poster      string     `json:"poster"`
	Platforms   []Platform `json:"platforms"`
	Reviews     []Review   `json:"reviews"`
	Rating      float64    `json:"rating"`
}

// HasPlatform reports whether the movie is streamed on p.
func (m *Movie) HasPlatform(p Platform) bool {
	for _, have := range m.Platforms {
		if have == p {
			return true
		}
	}
	return false
}

// Clone returns a copy that shares no slices with m.
func (m *Movie) Clone() Movie {
	c := *m
	c.Platforms = append([]Platform(nil), m.Platforms...)
	c.Reviews = append(make([]Review, 0, len(m.Reviews)), m.Reviews...)
	return c
}

// MovieDraft is the input to publishing a movie: a Movie without ID and Rating.
// Reviews, when present, are published with the movie (seed data).
type MovieDraft struct {
	Title       string        `json:"title" koanf:"title" validate:"nonblank,max=200"`
	Year        int           `json:"year" koanf:"year" validate:"gte=1900,lte=2100"`
	Genre       Genre         `json:"genre" koanf:"genre" validate:"required"`
	Description string        `json:"description" koanf:"description" validate:"max=4000"`
	Poster      string        `json:"poster" koanf:"poster"`
	Platforms   []Platform    `json:"platforms" koanf:"platforms" validate:"min=1"`
	Reviews     []ReviewDraft `json:"reviews,omitempty" koanf:"reviews" validate:"dive"`
}

// ReviewDraft carries the caller-supplied fields of a review.
type ReviewDraft struct {
	Author  string  `json:"author" koanf:"author"`
	Rating  float64 `json:"rating" koanf:"rating" validate:"gte=1,lte=10"`
	Comment string  `json:"comment" koanf:"comment" validate:"nonblank,max=2000"`
}

// Review is an immutable rating and comment attached to one movie.
// ID is unique within the owning movie only.
type Review struct {
	ID        string    `json:"id"`
	Author    string    `json:"author"`
	Rating    float64   `json:"rating"`
	Comment   string    `json:"comment"`
	Date      string    `json:"date"`
	CreatedAt time.Time `json:"created_at"`
}
