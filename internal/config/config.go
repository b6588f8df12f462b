// CineResenas - Movie Catalog and Review Aggregation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cineresenas

package config

import (
	"time"

	"github.com/tomtom215/cineresenas/internal/logging"
)

// Config is the complete service configuration.
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Security SecurityConfig `koanf:"security"`
	Logging  LoggingConfig  `koanf:"logging"`
	Catalog  CatalogConfig  `koanf:"catalog"`
	Carousel CarouselConfig `koanf:"carousel"`
	Events   EventsConfig   `koanf:"events"`
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Port        int           `koanf:"port"`
	Host        string        `koanf:"host"`
	Timeout     time.Duration `koanf:"timeout"`
	Environment string        `koanf:"environment"`
}

// SecurityConfig configures CORS, rate limiting, and the access policy.
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`

	// PolicyPath is an optional casbin policy CSV replacing the built-in policy.
	PolicyPath string `koanf:"policy_path"`
}

// LoggingConfig mirrors logging.Config.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// CatalogConfig configures the movie catalog and its projection.
type CatalogConfig struct {
	Genres          []string `koanf:"genres"`
	Platforms       []string `koanf:"platforms"`
	Locale          string   `koanf:"locale"`
	AnonymousAuthor string   `koanf:"anonymous_author"`
	SeedPath        string   `koanf:"seed_path"`

	AllLabel       string `koanf:"all_label"`
	FavoritesLabel string `koanf:"favorites_label"`
	ViewCacheSize  int    `koanf:"view_cache_size"`
}

// CarouselConfig configures the featured movie rotation.
type CarouselConfig struct {
	Enabled  bool          `koanf:"enabled"`
	Interval time.Duration `koanf:"interval"`
}

// EventsConfig configures the in-process event bus.
type EventsConfig struct {
	// Buffer is the per-subscriber channel size.
	Buffer int64 `koanf:"buffer"`
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return s.Host + ":" + itoa(s.Port)
}

// LoggingConfig converts to the logging package's configuration.
func (l LoggingConfig) LoggingConfig() logging.Config {
	cfg := logging.DefaultConfig()
	cfg.Level = l.Level
	cfg.Format = l.Format
	cfg.Caller = l.Caller
	return cfg
}
