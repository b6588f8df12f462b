// CineResenas - Movie Catalog and Review Aggregation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cineresenas

/*
Package middleware provides HTTP middleware shared by the API router.

All middleware here has the http.HandlerFunc shape; the router adapts it to
chi's func(http.Handler) http.Handler with a small wrapper.

  - RequestID: assigns X-Request-ID and seeds the logging context with request
    and correlation IDs.
  - PrometheusMetrics: records request count, duration, and in-flight gauge,
    labelled by the chi route pattern so path parameters do not explode
    cardinality.
  - AccessLog: one structured zerolog line per request.

Order matters. RequestID must run first so the other two can log and label
with the request ID:

	r.Use(chiMiddleware(middleware.RequestID))
	r.Use(chiMiddleware(middleware.AccessLog))
	r.Use(chiMiddleware(middleware.PrometheusMetrics))
*/
package middleware
