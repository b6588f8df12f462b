// CineResenas - Movie Catalog and Review Aggregation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cineresenas

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/cineresenas/internal/models"
)

// Genres lists the accepted genres.
func (h *Handler) Genres(w http.ResponseWriter, _ *http.Request) {
	respondSuccess(w, http.StatusOK, h.lib.Genres(), time.Now())
}

// Platforms lists the accepted streaming platforms.
func (h *Handler) Platforms(w http.ResponseWriter, _ *http.Request) {
	respondSuccess(w, http.StatusOK, h.lib.Platforms(), time.Now())
}

// Movies lists the catalog in insertion order.
//
// Optional query parameters narrow the list: genre and platform match
// exactly.
func (h *Handler) Movies(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	movies := h.lib.Movies()

	genre := models.Genre(r.URL.Query().Get("genre"))
	platform := models.Platform(r.URL.Query().Get("platform"))
	if genre != "" || platform != "" {
		filtered := make([]models.Movie, 0, len(movies))
		for i := range movies {
			if genre != "" && movies[i].Genre != genre {
				continue
			}
			if platform != "" && !movies[i].HasPlatform(platform) {
				continue
			}
			filtered = append(filtered, movies[i])
		}
		movies = filtered
	}

	respondSuccess(w, http.StatusOK, movies, start)
}

// Movie returns one movie with its reviews.
func (h *Handler) Movie(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	movie, err := h.lib.Movie(chi.URLParam(r, "id"))
	if err != nil {
		respondDomainError(w, r, err)
		return
	}
	respondSuccess(w, http.StatusOK, movie, start)
}

// CreateMovie publishes a movie draft.
func (h *Handler) CreateMovie(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var draft models.MovieDraft
	if !decodeJSON(w, r, &draft) || !validateRequest(w, &draft) {
		return
	}

	movie, err := h.lib.AddMovie(r.Context(), draft)
	if err != nil {
		respondDomainError(w, r, err)
		return
	}
	w.Header().Set("Location", "/api/v1/movies/"+movie.ID)
	respondSuccess(w, http.StatusCreated, movie, start)
}

// CreateReview appends a review and returns the updated movie.
func (h *Handler) CreateReview(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req ReviewRequest
	if !decodeJSON(w, r, &req) || !validateRequest(w, &req) {
		return
	}

	movie, err := h.lib.AddReview(r.Context(), chi.URLParam(r, "id"), req.Author, req.Rating, req.Comment)
	if err != nil {
		respondDomainError(w, r, err)
		return
	}
	respondSuccess(w, http.StatusCreated, movie, start)
}
