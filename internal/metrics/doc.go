// CineResenas - Movie Catalog and Review Aggregation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cineresenas

// Package metrics exposes Prometheus instrumentation for CineResenas.
//
// Metric families:
//   - api_*: HTTP request counts, latency, in-flight requests
//   - catalog_*: movie and review mutations, validation rejections, catalog size
//   - favorites_*, session_*: user state transitions
//   - view_cache_*: memoized projection hits and misses
//   - websocket_*, events_*: push channel activity
//   - access_denied_total: intents rejected by the access policy
//
// All collectors register with the default registry via promauto and are
// served by promhttp on /metrics.
package metrics
