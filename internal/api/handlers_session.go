// CineResenas - Movie Catalog and Review Aggregation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cineresenas

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

// Session returns the current session.
func (h *Handler) Session(w http.ResponseWriter, _ *http.Request) {
	respondSuccess(w, http.StatusOK, h.lib.Session(), time.Now())
}

// Login starts a session. The secret is not checked.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req LoginRequest
	if !decodeJSON(w, r, &req) || !validateRequest(w, &req) {
		return
	}

	s, err := h.lib.Login(r.Context(), req.Identifier, req.Secret)
	if err != nil {
		respondDomainError(w, r, err)
		return
	}
	respondSuccess(w, http.StatusOK, s, start)
}

// Register starts a session under an explicit display name.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req RegisterRequest
	if !decodeJSON(w, r, &req) || !validateRequest(w, &req) {
		return
	}

	s, err := h.lib.Register(r.Context(), req.DisplayName, req.Identifier, req.Secret)
	if err != nil {
		respondDomainError(w, r, err)
		return
	}
	respondSuccess(w, http.StatusCreated, s, start)
}

// Logout ends the session and clears favorites.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	s, err := h.lib.Logout(r.Context())
	if err != nil {
		respondDomainError(w, r, err)
		return
	}
	respondSuccess(w, http.StatusOK, s, start)
}

// Favorites lists favorite movie ids, sorted.
func (h *Handler) Favorites(w http.ResponseWriter, r *http.Request) {
	if h.lib.Session().Anonymous() {
		respondError(w, http.StatusUnauthorized, CodeUnauthenticated, "Login required")
		return
	}
	respondSuccess(w, http.StatusOK, h.lib.Favorites(), time.Now())
}

// ToggleFavorite flips a movie's favorite membership.
// Ids are not checked against the catalog.
func (h *Handler) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	id := chi.URLParam(r, "id")

	on, err := h.lib.ToggleFavorite(r.Context(), id)
	if err != nil {
		respondDomainError(w, r, err)
		return
	}
	respondSuccess(w, http.StatusOK, FavoriteResponse{MovieID: id, Favorite: on}, start)
}
