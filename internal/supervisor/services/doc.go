// CineResenas - Movie Catalog and Review Aggregation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cineresenas

// Package services adapts components whose lifecycle is not already
// Serve(ctx) error to suture.Service.
//
// The HTTP server blocks in ListenAndServe and stops through Shutdown;
// HTTPServerService bridges both to context cancellation. The WebSocket hub
// runs with RunWithContext; WebSocketHubService only renames it for the
// supervisor logs. The event bridge and the carousel implement
// suture.Service themselves and need no wrapper.
package services
