// CineResenas - Movie Catalog and Review Aggregation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cineresenas

package api

import "github.com/tomtom215/cineresenas/internal/models"

// ReviewRequest is the body of POST /movies/{id}/reviews.
// An empty author publishes under the session name or the anonymous label.
type ReviewRequest struct {
	Author  string  `json:"author" validate:"max=100"`
	Rating  float64 `json:"rating" validate:"gte=1,lte=10"`
	Comment string  `json:"comment" validate:"nonblank,max=2000"`
}

// LoginRequest is the body of POST /session/login.
// The secret is accepted but never verified.
type LoginRequest struct {
	Identifier string `json:"identifier" validate:"nonblank,max=254"`
	Secret     string `json:"secret"`
}

// RegisterRequest is the body of POST /session/register.
type RegisterRequest struct {
	DisplayName string `json:"display_name" validate:"max=100"`
	Identifier  string `json:"identifier" validate:"nonblank,max=254"`
	Secret      string `json:"secret"`
}

// CategoryRequest is the body of PUT /view/category.
type CategoryRequest struct {
	Category string `json:"category" validate:"required"`
}

// FavoritesViewRequest is the body of PUT /view/favorites.
type FavoritesViewRequest struct {
	Show *bool `json:"show" validate:"required"`
}

// FavoriteResponse reports membership after a toggle.
type FavoriteResponse struct {
	MovieID  string `json:"movie_id"`
	Favorite bool   `json:"favorite"`
}

// FeaturedResponse is the carousel slide currently on show.
// Movie is nil when the catalog is empty.
type FeaturedResponse struct {
	Index int           `json:"index"`
	Total int           `json:"total"`
	Movie *models.Movie `json:"movie"`
}

// HealthResponse reports liveness and catalog size.
type HealthResponse struct {
	Status    string  `json:"status"`
	Version   string  `json:"version"`
	Movies    int     `json:"movies"`
	WSClients int     `json:"ws_clients"`
	Uptime    float64 `json:"uptime_seconds"`
}
