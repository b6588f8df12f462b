// CineResenas - Movie Catalog and Review Aggregation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cineresenas

/*
Package api exposes the library over HTTP using the chi router.

Every endpoint answers with the models.APIResponse envelope. Library errors
map to status codes in one place (respondDomainError):

	validation.ErrInvalid       400 VALIDATION_ERROR
	library.ErrUnauthenticated  401 UNAUTHENTICATED
	access.ErrForbidden         403 FORBIDDEN
	catalog.ErrNotFound         404 NOT_FOUND
	library.ErrClosed           503 SERVICE_UNAVAILABLE

Routes live under /api/v1:

	GET  /health
	GET  /genres, /platforms
	GET  /movies, /movies/{id}
	POST /movies, /movies/{id}/reviews
	GET  /favorites
	POST /favorites/{id}/toggle
	GET  /session
	POST /session/login, /session/register, /session/logout
	GET  /view
	PUT  /view/category, /view/favorites
	GET  /featured
	POST /featured/next, /featured/prev
	GET  /ws

GET /metrics serves Prometheus metrics outside the versioned prefix.
*/
package api
