// CineResenas - Movie Catalog and Review Aggregation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cineresenas

// Package session holds the simulated authentication state.
//
// Credentials are never verified: any non-blank identifier logs in. The
// display name is the local part of the identifier (text before the first
// "@"). Logging out clears the favorites of the departing user, and so does
// logging in under a different display name.
package session

import (
	"strings"
	"sync"

	"github.com/tomtom215/cineresenas/internal/models"
	"github.com/tomtom215/cineresenas/internal/validation"
)

// FavoritesClearer is emptied on logout and when the user changes.
type FavoritesClearer interface {
	Clear()
}

// Manager moves between the Anonymous and Authenticated states.
type Manager struct {
	mu        sync.RWMutex
	current   models.Session
	favorites FavoritesClearer
}

// NewManager returns a manager in the Anonymous state.
func NewManager(favorites FavoritesClearer) *Manager {
	return &Manager{favorites: favorites}
}

// Current returns the session snapshot.
func (m *Manager) Current() models.Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Login authenticates identifier. secret is accepted without verification.
func (m *Manager) Login(identifier, _ string) (models.Session, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return models.Session{}, blankIdentifier()
	}
	return m.authenticate(LocalPart(identifier)), nil
}

// Register authenticates with the supplied display name. A blank display
// name falls back to the identifier's local part.
func (m *Manager) Register(displayName, identifier, _ string) (models.Session, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return models.Session{}, blankIdentifier()
	}
	name := strings.TrimSpace(displayName)
	if name == "" {
		name = LocalPart(identifier)
	}
	return m.authenticate(name), nil
}

// Logout returns to Anonymous and clears favorites.
func (m *Manager) Logout() models.Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.current = models.Session{}
	if m.favorites != nil {
		m.favorites.Clear()
	}
	return m.current
}

// authenticate switches to name. Favorites belong to one user, so they are
// cleared unless name is already the authenticated user.
func (m *Manager) authenticate(name string) models.Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.favorites != nil && (!m.current.Authenticated || m.current.DisplayName != name) {
		m.favorites.Clear()
	}
	m.current = models.Session{Authenticated: true, DisplayName: name}
	return m.current
}

// LocalPart returns the text before the first "@", or identifier unchanged
// when it has none. An identifier starting with "@" yields "".
func LocalPart(identifier string) string {
	if i := strings.IndexByte(identifier, '@'); i >= 0 {
		return identifier[:i]
	}
	return identifier
}

func blankIdentifier() error {
	return validation.NewRequestValidationError(validation.NewFieldError(
		"identifier", "nonblank", "", "", "identifier must not be blank",
	))
}
