// CineResenas - Movie Catalog and Review Aggregation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cineresenas

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/cineresenas/internal/middleware"
)

// chiMiddleware adapts http.HandlerFunc middleware to chi's r.Use shape.
func chiMiddleware(mw func(http.HandlerFunc) http.HandlerFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return mw(next.ServeHTTP)
	}
}

// Router wires handlers and middleware into a chi mux.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
}

// NewRouter creates a router. A nil mw uses DefaultChiMiddlewareConfig.
func NewRouter(handler *Handler, mw *ChiMiddleware) *Router {
	if mw == nil {
		mw = NewChiMiddleware(nil)
	}
	return &Router{handler: handler, chiMiddleware: mw}
}

// SetupChi builds the HTTP handler.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware(middleware.RequestID))
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(router.chiMiddleware.CORS())
	r.Use(chiMiddleware(middleware.AccessLog))

	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(chiMiddleware(middleware.PrometheusMetrics))

		r.Get("/health", router.handler.Health)
		r.Get("/genres", router.handler.Genres)
		r.Get("/platforms", router.handler.Platforms)

		r.Route("/movies", func(r chi.Router) {
			r.Get("/", router.handler.Movies)
			r.Get("/{id}", router.handler.Movie)
			r.With(router.chiMiddleware.RateLimitWrites()).Post("/", router.handler.CreateMovie)
			r.With(router.chiMiddleware.RateLimitWrites()).Post("/{id}/reviews", router.handler.CreateReview)
		})

		r.Get("/favorites", router.handler.Favorites)
		r.Post("/favorites/{id}/toggle", router.handler.ToggleFavorite)

		r.Route("/session", func(r chi.Router) {
			r.Get("/", router.handler.Session)
			r.Post("/login", router.handler.Login)
			r.Post("/register", router.handler.Register)
			r.Post("/logout", router.handler.Logout)
		})

		r.Route("/view", func(r chi.Router) {
			r.Get("/", router.handler.View)
			r.Put("/category", router.handler.SetCategory)
			r.Put("/favorites", router.handler.SetShowingFavorites)
		})

		r.Route("/featured", func(r chi.Router) {
			r.Get("/", router.handler.Featured)
			r.Post("/next", router.handler.FeaturedNext)
			r.Post("/prev", router.handler.FeaturedPrev)
		})

		r.Get("/ws", router.handler.WebSocket)
	})

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		respondError(w, http.StatusNotFound, CodeNotFound, "Route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed")
	})

	return r
}
