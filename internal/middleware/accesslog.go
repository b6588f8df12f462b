// CineResenas - Movie Catalog and Review Aggregation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cineresenas

package middleware

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/cineresenas/internal/logging"
)

// AccessLog writes one log line per request. Server errors log at warn,
// everything else at debug.
func AccessLog(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapper := newStatusRecorder(w)

		next(wrapper, r)

		var evt *zerolog.Event
		if wrapper.statusCode >= http.StatusInternalServerError {
			evt = logging.Ctx(r.Context()).Warn()
		} else {
			evt = logging.Ctx(r.Context()).Debug()
		}
		evt.Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", wrapper.statusCode).
			Int("bytes", wrapper.written).
			Dur("duration", time.Since(start)).
			Msg("HTTP request")
	}
}
