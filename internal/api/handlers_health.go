// CineResenas - Movie Catalog and Review Aggregation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cineresenas

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/tomtom215/cineresenas/internal/logging"
	ws "github.com/tomtom215/cineresenas/internal/websocket"
)

// Health reports liveness. The catalog is in memory, so there is no
// dependency to probe.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	clients := 0
	if h.hub != nil {
		clients = h.hub.GetClientCount()
	}
	respondSuccess(w, http.StatusOK, HealthResponse{
		Status:    "healthy",
		Version:   Version,
		Movies:    h.lib.Len(),
		WSClients: clients,
		Uptime:    time.Since(h.startTime).Seconds(),
	}, time.Now())
}

// registerTimeout bounds the wait for the hub to accept a new client.
const registerTimeout = 5 * time.Second

// WebSocket upgrades the connection and registers it with the hub.
func (h *Handler) WebSocket(w http.ResponseWriter, r *http.Request) {
	if h.hub == nil {
		logging.Warn().Msg("WebSocket connection rejected: hub not initialized")
		respondError(w, http.StatusServiceUnavailable, CodeUnavailable, "WebSocket service unavailable")
		return
	}

	upgrader := h.getUpgrader()
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logging.Ctx(r.Context()).Debug().Err(err).Msg("WebSocket upgrade failed")
		return
	}

	client := ws.NewClient(h.hub, conn)
	ctx, cancel := context.WithTimeout(context.Background(), registerTimeout)
	defer cancel()

	select {
	case h.hub.Register <- client:
		client.Start()
	case <-ctx.Done():
		logging.Warn().Msg("WebSocket hub did not accept client in time")
		_ = conn.Close()
	}
}
