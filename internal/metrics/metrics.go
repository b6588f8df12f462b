// CineResenas - Movie Catalog and Review Aggregation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cineresenas

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Result label values.
const (
	ResultOK       = "ok"
	ResultInvalid  = "invalid"
	ResultNotFound = "not_found"
	ResultDenied   = "denied"
	ResultError    = "error"
)

var (
	// API Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "Duration of API requests in seconds",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Number of API requests currently being served",
		},
	)

	// Catalog Metrics
	CatalogMutations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_mutations_total",
			Help: "Catalog write intents by operation and result",
		},
		[]string{"operation", "result"}, // operation: add_movie, add_review
	)

	CatalogMovies = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_movies",
			Help: "Number of published movies",
		},
	)

	ReviewRatings = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "catalog_review_rating",
			Help:    "Distribution of accepted review ratings",
			Buckets: prometheus.LinearBuckets(1, 1, 10),
		},
	)

	// Favorites and Session Metrics
	FavoritesToggles = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "favorites_toggles_total",
			Help: "Favorite toggles by resulting membership",
		},
		[]string{"state"}, // added, removed
	)

	FavoritesCount = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "favorites_count",
			Help: "Number of movies in the current favorites set",
		},
	)

	SessionTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "session_transitions_total",
			Help: "Session state changes",
		},
		[]string{"transition"}, // login, register, logout
	)

	// View Metrics
	ViewCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "view_cache_hits_total",
			Help: "Visible-list projections served from the memo",
		},
	)

	ViewCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "view_cache_misses_total",
			Help: "Visible-list projections recomputed",
		},
	)

	ViewCacheEntries = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "view_cache_entries",
			Help: "Projections currently held by the memo",
		},
	)

	ViewCacheEvictions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "view_cache_evictions",
			Help: "Projections evicted from the memo since startup",
		},
	)

	ViewCacheHitRatio = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "view_cache_hit_ratio",
			Help: "Fraction of projection lookups served from the memo",
		},
	)

	CarouselIndex = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "carousel_index",
			Help: "Catalog position of the featured movie",
		},
	)

	// Push Metrics
	WSConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "websocket_connections",
			Help: "Number of connected WebSocket clients",
		},
	)

	WSMessagesDropped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "websocket_messages_dropped_total",
			Help: "WebSocket messages dropped by reason",
		},
		[]string{"reason"}, // slow_client, rate_limited, hub_full
	)

	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "events_published_total",
			Help: "Domain events published by type",
		},
		[]string{"type"},
	)

	EventsPublishErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "events_publish_errors_total",
			Help: "Domain events that failed to publish",
		},
	)

	// Access Metrics
	AccessDenied = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "access_denied_total",
			Help: "Intents rejected by the access policy",
		},
		[]string{"role", "object", "action"},
	)
)

// RecordAPIRequest records an API request metric.
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks in-flight API requests.
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordMutation records the outcome of a catalog write intent.
func RecordMutation(operation, result string) {
	CatalogMutations.WithLabelValues(operation, result).Inc()
}

// RecordReview records an accepted review rating.
func RecordReview(rating float64) {
	ReviewRatings.Observe(rating)
}

// RecordFavoriteToggle records a toggle and the resulting set size.
func RecordFavoriteToggle(added bool, size int) {
	state := "removed"
	if added {
		state = "added"
	}
	FavoritesToggles.WithLabelValues(state).Inc()
	FavoritesCount.Set(float64(size))
}

// RecordViewCache records a projection lookup.
func RecordViewCache(hit bool) {
	if hit {
		ViewCacheHits.Inc()
	} else {
		ViewCacheMisses.Inc()
	}
}

// RecordViewCacheStats publishes a snapshot of the memo counters.
func RecordViewCacheStats(entries int, evictions int64, hitRatio float64) {
	ViewCacheEntries.Set(float64(entries))
	ViewCacheEvictions.Set(float64(evictions))
	ViewCacheHitRatio.Set(hitRatio)
}
