// CineResenas - Movie Catalog and Review Aggregation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cineresenas

package api

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/tomtom215/cineresenas/internal/access"
	"github.com/tomtom215/cineresenas/internal/catalog"
	"github.com/tomtom215/cineresenas/internal/library"
	"github.com/tomtom215/cineresenas/internal/logging"
	"github.com/tomtom215/cineresenas/internal/middleware"
	"github.com/tomtom215/cineresenas/internal/models"
	"github.com/tomtom215/cineresenas/internal/validation"
)

// Error codes carried in models.APIError.
const (
	CodeValidation      = "VALIDATION_ERROR"
	CodeInvalidBody     = "INVALID_REQUEST"
	CodeNotFound        = "NOT_FOUND"
	CodeUnauthenticated = "UNAUTHENTICATED"
	CodeForbidden       = "FORBIDDEN"
	CodeUnavailable     = "SERVICE_UNAVAILABLE"
	CodeInternal        = "INTERNAL_ERROR"
)

// respondDomainError maps a library error to its HTTP status and envelope.
// The envelope carries the request ID; server-side failures are logged.
func respondDomainError(w http.ResponseWriter, r *http.Request, err error) {
	status, apiErr := domainError(err)
	apiErr.RequestID = middleware.GetRequestID(r.Context())

	level := zerolog.DebugLevel
	if status >= http.StatusInternalServerError {
		level = zerolog.ErrorLevel
	}
	logging.Ctx(r.Context()).WithLevel(level).
		Str("code", apiErr.Code).
		Str("error", sanitizeLogValue(err.Error())).
		Msg("Request failed")

	respondAPIError(w, status, apiErr)
}

func domainError(err error) (int, *models.APIError) {
	var verr *validation.RequestValidationError
	switch {
	case errors.As(err, &verr):
		api := verr.ToAPIError()
		return http.StatusBadRequest, &models.APIError{
			Code:    CodeValidation,
			Message: api.Message,
			Details: api.Details,
		}
	case errors.Is(err, catalog.ErrNotFound):
		return http.StatusNotFound, &models.APIError{Code: CodeNotFound, Message: err.Error()}
	case errors.Is(err, library.ErrUnauthenticated):
		return http.StatusUnauthorized, &models.APIError{Code: CodeUnauthenticated, Message: "Login required"}
	case errors.Is(err, access.ErrForbidden):
		return http.StatusForbidden, &models.APIError{Code: CodeForbidden, Message: "Not allowed"}
	case errors.Is(err, library.ErrClosed):
		return http.StatusServiceUnavailable, &models.APIError{Code: CodeUnavailable, Message: "Catalog is shutting down"}
	default:
		return http.StatusInternalServerError, &models.APIError{Code: CodeInternal, Message: "Internal server error"}
	}
}
