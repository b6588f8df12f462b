// CineResenas - Movie Catalog and Review Aggregation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cineresenas

package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tomtom215/cineresenas/internal/access"
	"github.com/tomtom215/cineresenas/internal/carousel"
	"github.com/tomtom215/cineresenas/internal/config"
	"github.com/tomtom215/cineresenas/internal/events"
	"github.com/tomtom215/cineresenas/internal/library"
	"github.com/tomtom215/cineresenas/internal/logging"
	"github.com/tomtom215/cineresenas/internal/seed"
	"github.com/tomtom215/cineresenas/internal/supervisor"
	"github.com/tomtom215/cineresenas/internal/supervisor/services"
	ws "github.com/tomtom215/cineresenas/internal/websocket"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(cfg.Logging.LoggingConfig())
	logging.Info().
		Str("environment", cfg.Server.Environment).
		Str("locale", cfg.Catalog.Locale).
		Int("genres", len(cfg.Catalog.Genres)).
		Int("platforms", len(cfg.Catalog.Platforms)).
		Msg("Starting CineResenas")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	bus := events.NewBus(cfg.Events.Buffer)
	defer func() {
		if err := bus.Close(); err != nil {
			logging.Warn().Err(err).Msg("Failed to close event bus")
		}
	}()

	policy, err := access.NewEnforcer(cfg.Security.PolicyPath)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load access policy")
	}

	lib, err := library.New(libraryConfig(cfg),
		library.WithPublisher(bus),
		library.WithPolicy(policy),
	)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create library")
	}
	defer func() { _ = lib.Close() }()

	if cfg.Catalog.SeedPath != "" {
		res, err := seed.Load(ctx, cfg.Catalog.SeedPath, lib)
		if err != nil {
			logging.Fatal().Err(err).Str("path", cfg.Catalog.SeedPath).Msg("Failed to load seed data")
		}
		logging.Info().Int("movies", res.Loaded).Int("skipped", res.Skipped).Msg("Catalog seeded")
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		FailureThreshold: 5,
		FailureBackoff:   15 * time.Second,
		ShutdownTimeout:  10 * time.Second,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	hub := ws.NewHub()
	tree.AddMessagingService(services.NewWebSocketHubService(hub))
	tree.AddMessagingService(events.NewBridge(bus, hub))

	var rotator *carousel.Rotator
	if cfg.Carousel.Enabled {
		rotator = carousel.NewRotator(lib, cfg.Carousel.Interval)
		tree.AddBackgroundService(rotator)
	}

	server := newHTTPServer(cfg, lib, hub, rotator)
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	logging.Info().Str("addr", server.Addr).Msg("Starting supervisor tree")
	errCh := tree.ServeBackground(ctx)

	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}

	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	if unstopped, _ := tree.UnstoppedServiceReport(); len(unstopped) > 0 {
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
		}
	}

	logging.Info().Msg("CineResenas stopped")
}
