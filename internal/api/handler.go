// CineResenas - Movie Catalog and Review Aggregation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cineresenas

package api

import (
	"net/http"
	"time"

	gorillaws "github.com/gorilla/websocket"

	"github.com/tomtom215/cineresenas/internal/carousel"
	"github.com/tomtom215/cineresenas/internal/config"
	"github.com/tomtom215/cineresenas/internal/library"
	"github.com/tomtom215/cineresenas/internal/logging"
	ws "github.com/tomtom215/cineresenas/internal/websocket"
)

// Version is reported by the health endpoint. Overridden at build time.
var Version = "dev"

// Handler serves the HTTP endpoints.
type Handler struct {
	lib       *library.Library
	hub       *ws.Hub
	carousel  *carousel.Rotator
	config    *config.Config
	startTime time.Time
}

// NewHandler creates a handler. hub and rotator may be nil, which disables
// /ws and makes /featured always show the first movie.
func NewHandler(lib *library.Library, hub *ws.Hub, rotator *carousel.Rotator, cfg *config.Config) *Handler {
	return &Handler{
		lib:       lib,
		hub:       hub,
		carousel:  rotator,
		config:    cfg,
		startTime: time.Now(),
	}
}

func (h *Handler) getUpgrader() gorillaws.Upgrader {
	return gorillaws.Upgrader{
		ReadBufferSize:   1024,
		WriteBufferSize:  1024,
		CheckOrigin:      h.checkWebSocketOrigin,
		HandshakeTimeout: 10 * time.Second,
	}
}

// checkWebSocketOrigin accepts origins listed in security.cors_origins.
// Requests without an Origin header are rejected.
func (h *Handler) checkWebSocketOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		logging.Warn().Msg("WebSocket connection rejected: missing Origin header")
		return false
	}
	if h.config == nil {
		return true
	}
	for _, allowed := range h.config.Security.CORSOrigins {
		if allowed == "*" || allowed == origin {
			return true
		}
	}
	logging.Warn().Str("origin", sanitizeLogValue(origin)).Msg("WebSocket connection rejected from unauthorized origin")
	return false
}
