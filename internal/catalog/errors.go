// CineResenas - Movie Catalog and Review Aggregation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cineresenas

package catalog

import (
	"errors"
	"fmt"

	"github.com/tomtom215/cineresenas/internal/validation"
)

var (
	// ErrNotFound is returned when a movie id does not exist in the catalog.
	ErrNotFound = errors.New("movie not found")

	// ErrValidation matches every input rejection returned by this package.
	ErrValidation = validation.ErrInvalid
)

func notFound(id string) error {
	return fmt.Errorf("movie %q: %w", id, ErrNotFound)
}
