// CineResenas - Movie Catalog and Review Aggregation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cineresenas

// Package favorites tracks the set of movie ids the current user marked as favorite.
//
// Membership is not checked against the catalog. Ids of movies that do not
// exist are harmless: the view selector only yields catalog movies.
package favorites

import (
	"sort"
	"sync"
)

// Registry is a set of movie ids.
type Registry struct {
	mu      sync.RWMutex
	ids     map[string]struct{}
	version uint64
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{ids: make(map[string]struct{})}
}

// Toggle adds id when absent and removes it when present.
// It returns the membership after the toggle.
func (r *Registry) Toggle(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.version++
	if _, ok := r.ids[id]; ok {
		delete(r.ids, id)
		return false
	}
	r.ids[id] = struct{}{}
	return true
}

// IsFavorite reports whether id is in the set.
func (r *Registry) IsFavorite(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.ids[id]
	return ok
}

// All returns the ids in ascending order.
func (r *Registry) All() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, 0, len(r.ids))
	for id := range r.ids {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// Clear empties the set.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.ids) == 0 {
		return
	}
	r.ids = make(map[string]struct{})
	r.version++
}

// Len returns the number of favorites.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.ids)
}

// Version changes whenever membership changes.
func (r *Registry) Version() uint64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.version
}
