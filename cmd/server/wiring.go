// CineResenas - Movie Catalog and Review Aggregation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cineresenas

package main

import (
	"net/http"
	"time"

	"github.com/tomtom215/cineresenas/internal/api"
	"github.com/tomtom215/cineresenas/internal/carousel"
	"github.com/tomtom215/cineresenas/internal/catalog"
	"github.com/tomtom215/cineresenas/internal/config"
	"github.com/tomtom215/cineresenas/internal/library"
	"github.com/tomtom215/cineresenas/internal/view"
	ws "github.com/tomtom215/cineresenas/internal/websocket"
)

// libraryConfig maps the catalog section onto library settings.
func libraryConfig(cfg *config.Config) library.Config {
	return library.Config{
		Enumerations: catalog.Enumerations{
			Genres:    cfg.Catalog.GenreSet(),
			Platforms: cfg.Catalog.PlatformSet(),
		},
		Locale:          cfg.Catalog.Locale,
		AnonymousAuthor: cfg.Catalog.AnonymousAuthor,
		Labels: view.Labels{
			All:       cfg.Catalog.AllLabel,
			Favorites: cfg.Catalog.FavoritesLabel,
		},
		ViewCacheSize: cfg.Catalog.ViewCacheSize,
	}
}

// newHTTPServer builds the server and its chi router.
func newHTTPServer(cfg *config.Config, lib *library.Library, hub *ws.Hub, rotator *carousel.Rotator) *http.Server {
	handler := api.NewHandler(lib, hub, rotator, cfg)
	mw := api.NewChiMiddlewareFromSecurity(
		cfg.Security.CORSOrigins,
		cfg.Security.RateLimitReqs,
		cfg.Security.RateLimitWindow,
		cfg.Security.RateLimitDisabled,
	)
	router := api.NewRouter(handler, mw)

	return &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router.SetupChi(),
		ReadTimeout:       cfg.Server.Timeout,
		ReadHeaderTimeout: 10 * time.Second,
		// WebSocket writes carry their own deadlines
		WriteTimeout: 0,
		IdleTimeout:  2 * cfg.Server.Timeout,
	}
}
