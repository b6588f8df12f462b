// CineResenas - Movie Catalog and Review Aggregation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cineresenas

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/cineresenas/internal/carousel"
)

// View returns the heading and visible movies for the current selection.
func (h *Handler) View(w http.ResponseWriter, _ *http.Request) {
	start := time.Now()
	respondSuccess(w, http.StatusOK, h.lib.View(), start)
}

// SetCategory selects a genre, or "all".
func (h *Handler) SetCategory(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req CategoryRequest
	if !decodeJSON(w, r, &req) || !validateRequest(w, &req) {
		return
	}

	st, err := h.lib.SetCategory(r.Context(), req.Category)
	if err != nil {
		respondDomainError(w, r, err)
		return
	}
	respondSuccess(w, http.StatusOK, st, start)
}

// SetShowingFavorites switches the favorites-only projection on or off.
func (h *Handler) SetShowingFavorites(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req FavoritesViewRequest
	if !decodeJSON(w, r, &req) || !validateRequest(w, &req) {
		return
	}

	st, err := h.lib.SetShowingFavorites(r.Context(), *req.Show)
	if err != nil {
		respondDomainError(w, r, err)
		return
	}
	respondSuccess(w, http.StatusOK, st, start)
}

// Featured returns the carousel slide on show.
func (h *Handler) Featured(w http.ResponseWriter, _ *http.Request) {
	index := 0
	if h.carousel != nil {
		index, _ = h.carousel.Current()
	}
	respondSuccess(w, http.StatusOK, h.featuredAt(index), time.Now())
}

// FeaturedNext advances the carousel by one slide.
func (h *Handler) FeaturedNext(w http.ResponseWriter, _ *http.Request) {
	h.stepFeatured(w, (*carousel.Rotator).Advance)
}

// FeaturedPrev moves the carousel back by one slide.
func (h *Handler) FeaturedPrev(w http.ResponseWriter, _ *http.Request) {
	h.stepFeatured(w, (*carousel.Rotator).Back)
}

func (h *Handler) stepFeatured(w http.ResponseWriter, step func(*carousel.Rotator) int) {
	if h.carousel == nil {
		respondError(w, http.StatusServiceUnavailable, CodeUnavailable, "Carousel is disabled")
		return
	}
	respondSuccess(w, http.StatusOK, h.featuredAt(step(h.carousel)), time.Now())
}

// featuredAt resolves index against a fresh snapshot. The catalog may have
// grown since the index was computed, so it is clamped again here.
func (h *Handler) featuredAt(index int) FeaturedResponse {
	movies := h.lib.Movies()
	if len(movies) == 0 {
		return FeaturedResponse{}
	}
	index = carousel.Clamp(index, len(movies))
	return FeaturedResponse{Index: index, Total: len(movies), Movie: &movies[index]}
}
