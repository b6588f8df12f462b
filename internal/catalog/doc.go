// CineResenas - Movie Catalog and Review Aggregation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cineresenas

/*
Package catalog owns the movie catalog: the ordered list of published movies,
their append-only reviews, and the derived rating of each movie.

Components:

  - Aggregate: mean of review ratings rounded to one decimal
  - ReviewRegistry: validates review input and stamps id and date
  - Store: the single source of truth for movies

Store mutations are atomic with respect to readers. A review is never
visible without the recomputed rating that includes it.

	store := catalog.NewStore(catalog.DefaultEnumerations(), catalog.NewReviewRegistry())
	movie, err := store.AddMovie(ctx, draft)
	movie, err = store.AddReview(ctx, movie.ID, "ana", 8, "Muy buena")

Errors:

  - ErrNotFound: unknown movie id
  - *validation.RequestValidationError (matches ErrValidation): rejected input
*/
package catalog
