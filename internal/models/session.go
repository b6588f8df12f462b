// CineResenas - Movie Catalog and Review Aggregation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cineresenas

package models

// CategoryAll selects every genre.
const CategoryAll = "all"

// Session is the simulated authentication state.
// An anonymous session has no display name.
type Session struct {
	Authenticated bool   `json:"authenticated"`
	DisplayName   string `json:"display_name,omitempty"`
}

// Anonymous reports whether no user is logged in.
func (s Session) Anonymous() bool {
	return !s.Authenticated
}

// ViewState is the presentation selection used by the view selector.
// When ShowingFavorites is true Category is ignored but retained.
type ViewState struct {
	Category         string `json:"category"`
	ShowingFavorites bool   `json:"showing_favorites"`
}

// DefaultViewState shows every movie.
func DefaultViewState() ViewState {
	return ViewState{Category: CategoryAll}
}

// View is the projection rendered by the presentation layer.
type View struct {
	Title  string    `json:"title"`
	State  ViewState `json:"state"`
	Movies []Movie   `json:"movies"`
}
