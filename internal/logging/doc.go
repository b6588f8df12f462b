// CineResenas - Movie Catalog and Review Aggregation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cineresenas

// Package logging provides the zerolog-based structured logger used across CineResenas.
//
// A single global logger is configured once at startup with Init and read
// through package-level helpers. Request-scoped fields (request_id,
// correlation_id) travel in the context and are attached by Ctx.
//
// # Quick Start
//
//	logging.Init(logging.Config{Level: "info", Format: "json"})
//
//	logging.Info().Str("movie_id", id).Msg("Movie published")
//	logging.Ctx(ctx).Warn().Err(err).Msg("Review rejected")
//
// # Configuration
//
// Environment Variables (read by internal/config):
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json, console (default: json)
//   - LOG_CALLER: true/false (default: false)
//
// # Supervisor Integration
//
// NewSlogLogger adapts the global logger to log/slog so the suture tree can
// report service restarts through sutureslog.
package logging
