// CineResenas - Movie Catalog and Review Aggregation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cineresenas

// Package view derives the visible movie list and its heading from the
// catalog, the favorites set, and the current view state.
//
// Precedence, for both the list and the title:
//
//  1. ShowingFavorites: favorite movies only
//  2. Category "all": every movie
//  3. otherwise: movies of that genre
//
// The result always follows catalog insertion order.
package view

import "github.com/tomtom215/cineresenas/internal/models"

// Labels are the headings for the two special selections.
type Labels struct {
	All       string
	Favorites string
}

// DefaultLabels returns the Spanish headings of the catalog UI.
func DefaultLabels() Labels {
	return Labels{
		All:       "Todas las Películas",
		Favorites: "Mis Favoritos",
	}
}

// Select returns the movies visible under state. It does not modify movies.
// A nil isFavorite is treated as an empty favorites set.
func Select(movies []models.Movie, isFavorite func(id string) bool, state models.ViewState) []models.Movie {
	out := make([]models.Movie, 0, len(movies))
	for i := range movies {
		if visible(&movies[i], isFavorite, state) {
			out = append(out, movies[i])
		}
	}
	return out
}

func visible(m *models.Movie, isFavorite func(string) bool, state models.ViewState) bool {
	switch {
	case state.ShowingFavorites:
		return isFavorite != nil && isFavorite(m.ID)
	case state.Category == models.CategoryAll || state.Category == "":
		return true
	default:
		return string(m.Genre) == state.Category
	}
}

// Title returns the heading for state.
func Title(state models.ViewState, labels Labels) string {
	switch {
	case state.ShowingFavorites:
		return labels.Favorites
	case state.Category == models.CategoryAll || state.Category == "":
		return labels.All
	default:
		return state.Category
	}
}
