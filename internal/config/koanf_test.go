// CineResenas - Movie Catalog and Review Aggregation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cineresenas

package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

// isolate points CONFIG_PATH at a missing file so a stray config.yaml in the
// working directory cannot leak into a test.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv(ConfigPathEnvVar, filepath.Join(t.TempDir(), "absent.yaml"))
}

func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()

	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Carousel.Interval != 4*time.Second {
		t.Errorf("Carousel.Interval = %v, want 4s", cfg.Carousel.Interval)
	}
	if len(cfg.Catalog.Genres) != 6 || len(cfg.Catalog.Platforms) != 3 {
		t.Errorf("enumerations = %v / %v", cfg.Catalog.Genres, cfg.Catalog.Platforms)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults do not validate: %v", err)
	}
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Catalog.Locale != "es_ES" {
		t.Errorf("Catalog.Locale = %q", cfg.Catalog.Locale)
	}
	if cfg.Server.Addr() != "0.0.0.0:8080" {
		t.Errorf("Addr() = %q", cfg.Server.Addr())
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CATALOG_GENRES", "Drama, Comedia ,Terror")
	t.Setenv("CORS_ORIGINS", "https://a.example,https://b.example")
	t.Setenv("CAROUSEL_INTERVAL", "10s")
	t.Setenv("UNRELATED_VARIABLE", "ignored")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d", cfg.Server.Port)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q", cfg.Logging.Level)
	}
	if want := []string{"Drama", "Comedia", "Terror"}; !reflect.DeepEqual(cfg.Catalog.Genres, want) {
		t.Errorf("Catalog.Genres = %v, want %v", cfg.Catalog.Genres, want)
	}
	if len(cfg.Security.CORSOrigins) != 2 {
		t.Errorf("CORSOrigins = %v", cfg.Security.CORSOrigins)
	}
	if cfg.Carousel.Interval != 10*time.Second {
		t.Errorf("Carousel.Interval = %v", cfg.Carousel.Interval)
	}
}

func TestLoad_YAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
server:
  port: 7000
catalog:
  locale: en_US
  platforms:
    - Netflix
    - Filmin
  seed_path: /tmp/seed.yaml
carousel:
  enabled: false
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv(ConfigPathEnvVar, path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.Port != 7000 {
		t.Errorf("Server.Port = %d", cfg.Server.Port)
	}
	if cfg.Catalog.Locale != "en_US" || cfg.Catalog.SeedPath != "/tmp/seed.yaml" {
		t.Errorf("Catalog = %+v", cfg.Catalog)
	}
	if !reflect.DeepEqual(cfg.Catalog.Platforms, []string{"Netflix", "Filmin"}) {
		t.Errorf("Catalog.Platforms = %v", cfg.Catalog.Platforms)
	}
	if cfg.Carousel.Enabled {
		t.Error("Carousel.Enabled should be false")
	}
	// untouched sections keep their defaults
	if cfg.Catalog.AnonymousAuthor != "Anónimo" {
		t.Errorf("AnonymousAuthor = %q", cfg.Catalog.AnonymousAuthor)
	}
}

func TestLoad_ValidationFailure(t *testing.T) {
	isolate(t)
	t.Setenv("HTTP_PORT", "70000")

	_, err := Load()
	if err == nil || !strings.Contains(err.Error(), "HTTP_PORT") {
		t.Errorf("Load() error = %v, want HTTP_PORT failure", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"bad log format", func(c *Config) { c.Logging.Format = "xml" }, "LOG_FORMAT"},
		{"bad log level", func(c *Config) { c.Logging.Level = "loud" }, "LOG_LEVEL"},
		{"no genres", func(c *Config) { c.Catalog.Genres = nil }, "CATALOG_GENRES"},
		{"duplicate genre", func(c *Config) { c.Catalog.Genres = []string{"Drama", "Drama"} }, "twice"},
		{"reserved genre", func(c *Config) { c.Catalog.Genres = []string{"all"} }, "reserved"},
		{"blank platform", func(c *Config) { c.Catalog.Platforms = []string{"Netflix", " "} }, "blank"},
		{"unknown locale", func(c *Config) { c.Catalog.Locale = "xx_XX" }, "CATALOG_LOCALE"},
		{"tiny carousel", func(c *Config) { c.Carousel.Interval = time.Millisecond }, "CAROUSEL_INTERVAL"},
		{"zero rate limit", func(c *Config) { c.Security.RateLimitReqs = 0 }, "RATE_LIMIT_REQUESTS"},
		{"view cache", func(c *Config) { c.Catalog.ViewCacheSize = 0 }, "VIEW_CACHE_SIZE"},
		{"wildcard cors in production", func(c *Config) { c.Server.Environment = "Production" }, "CORS_ORIGINS"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want %q", err, tt.wantErr)
			}
		})
	}

	cfg := defaultConfig()
	cfg.Security.RateLimitDisabled = true
	cfg.Security.RateLimitReqs = 0
	if err := cfg.Validate(); err != nil {
		t.Errorf("disabled rate limit should skip its checks: %v", err)
	}
}

func TestEnumerationSets(t *testing.T) {
	c := CatalogConfig{Genres: []string{"Drama"}, Platforms: []string{"HBO", "Netflix"}}
	if got := c.GenreSet(); len(got) != 1 || got[0] != "Drama" {
		t.Errorf("GenreSet() = %v", got)
	}
	if got := c.PlatformSet(); len(got) != 2 || got[1] != "Netflix" {
		t.Errorf("PlatformSet() = %v", got)
	}
}

func TestValidate_ProductionOrigins(t *testing.T) {
	cfg := defaultConfig()
	cfg.Server.Environment = "prod"
	cfg.Security.CORSOrigins = []string{"https://cine.example.com"}
	if !cfg.IsProduction() {
		t.Fatal("IsProduction() = false for prod")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("explicit origins in production should pass: %v", err)
	}

	cfg.Server.Environment = "development"
	cfg.Security.CORSOrigins = []string{"*"}
	if cfg.IsProduction() {
		t.Error("IsProduction() = true for development")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("wildcard outside production should pass: %v", err)
	}
}
