// CineResenas - Movie Catalog and Review Aggregation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cineresenas

package view

import (
	"github.com/tomtom215/cineresenas/internal/cache"
	"github.com/tomtom215/cineresenas/internal/models"
)

// memoKey changes whenever the catalog, the favorites, or the state changes.
type memoKey struct {
	catalog   uint64
	favorites uint64
	category  string
	favsOnly  bool
}

// Inputs describes one selection request for Memo.
type Inputs struct {
	CatalogVersion   uint64
	FavoritesVersion uint64
	State            models.ViewState
	Movies           func() []models.Movie
	IsFavorite       func(id string) bool
}

// Memo caches Select results keyed by the versions of its inputs.
type Memo struct {
	cache *cache.LRU[memoKey, []models.Movie]
}

// NewMemo creates a memo holding up to size selections.
func NewMemo(size int) *Memo {
	return &Memo{cache: cache.NewLRU[memoKey, []models.Movie](size)}
}

// Select returns the visible movies for in, computing them on a miss.
// The second result reports a cache hit. The returned slice is a fresh copy.
func (m *Memo) Select(in Inputs) ([]models.Movie, bool) {
	key := memoKey{
		catalog:   in.CatalogVersion,
		favorites: in.FavoritesVersion,
		category:  in.State.Category,
		favsOnly:  in.State.ShowingFavorites,
	}
	selected, hit := m.cache.GetOrCompute(key, func() []models.Movie {
		return Select(in.Movies(), in.IsFavorite, in.State)
	})

	out := make([]models.Movie, len(selected))
	for i := range selected {
		out[i] = selected[i].Clone()
	}
	return out, hit
}

// Stats exposes the underlying cache counters.
func (m *Memo) Stats() cache.Stats {
	return m.cache.Stats()
}
