// CineResenas - Movie Catalog and Review Aggregation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cineresenas

/*
Package models defines the data structures shared by the catalog, the
favorites and session registries, the view selector, and the HTTP API.

Key Components:

  - Movie, MovieDraft, Review: catalog entries and their append-only reviews
  - Session: simulated authentication state
  - ViewState, View: category/favorites selection and its projection
  - APIResponse, APIError, Metadata: the HTTP response envelope

Models carry no behaviour beyond small helpers. Invariants such as
"Rating equals the aggregate of Reviews" are owned by internal/catalog.
*/
package models
