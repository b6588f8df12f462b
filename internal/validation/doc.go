// CineResenas - Movie Catalog and Review Aggregation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cineresenas

// Package validation wraps go-playground/validator for CineResenas.
//
// A single validator instance is shared by the HTTP layer (request bodies)
// and the catalog (movie drafts, reviews). Failures are reported as a
// *RequestValidationError that matches ErrInvalid under errors.Is, so callers
// can map every rejection to one error kind without inspecting fields.
//
// Custom tags:
//   - nonblank: string must contain something other than whitespace
//
//	if verr := validation.ValidateStruct(req); verr != nil {
//		return verr
//	}
package validation
