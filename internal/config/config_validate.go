// CineResenas - Movie Catalog and Review Aggregation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cineresenas

package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/tomtom215/cineresenas/internal/catalog"
	"github.com/tomtom215/cineresenas/internal/models"
)

// Validate checks the loaded configuration for consistency.
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}
	if err := c.validateSecurity(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	if err := c.validateCatalog(); err != nil {
		return err
	}
	return c.validateCarousel()
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive, got %v", c.Server.Timeout)
	}
	return nil
}

func (c *Config) validateSecurity() error {
	if c.IsProduction() && c.hasWildcardCORS() {
		return fmt.Errorf("CORS_ORIGINS=* is not allowed when ENVIRONMENT=production; " +
			"list the allowed origins, e.g. CORS_ORIGINS=https://cine.example.com")
	}
	if c.Security.RateLimitDisabled {
		return nil
	}
	if c.Security.RateLimitReqs < 1 {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be at least 1, got %d", c.Security.RateLimitReqs)
	}
	if c.Security.RateLimitWindow < time.Second {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be at least 1s, got %v", c.Security.RateLimitWindow)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch strings.ToLower(c.Logging.Level) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal", "panic", "disabled":
	default:
		return fmt.Errorf("LOG_LEVEL %q is not a known level", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("LOG_FORMAT must be json or console, got %q", c.Logging.Format)
	}
	return nil
}

func (c *Config) validateCatalog() error {
	if len(c.Catalog.Genres) == 0 {
		return fmt.Errorf("CATALOG_GENRES must list at least one genre")
	}
	if len(c.Catalog.Platforms) == 0 {
		return fmt.Errorf("CATALOG_PLATFORMS must list at least one platform")
	}
	if err := uniqueNonBlank("CATALOG_GENRES", c.Catalog.Genres); err != nil {
		return err
	}
	if err := uniqueNonBlank("CATALOG_PLATFORMS", c.Catalog.Platforms); err != nil {
		return err
	}
	for _, g := range c.Catalog.Genres {
		if g == models.CategoryAll {
			return fmt.Errorf("CATALOG_GENRES must not contain the reserved category %q", models.CategoryAll)
		}
	}
	if !catalog.SupportedLocale(c.Catalog.Locale) {
		return fmt.Errorf("CATALOG_LOCALE %q is not a supported locale", c.Catalog.Locale)
	}
	if c.Catalog.ViewCacheSize < 1 {
		return fmt.Errorf("VIEW_CACHE_SIZE must be at least 1, got %d", c.Catalog.ViewCacheSize)
	}
	return nil
}

func (c *Config) validateCarousel() error {
	if c.Carousel.Enabled && c.Carousel.Interval < 100*time.Millisecond {
		return fmt.Errorf("CAROUSEL_INTERVAL must be at least 100ms, got %v", c.Carousel.Interval)
	}
	return nil
}

func uniqueNonBlank(name string, values []string) error {
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			return fmt.Errorf("%s must not contain blank entries", name)
		}
		if _, dup := seen[v]; dup {
			return fmt.Errorf("%s contains %q twice", name, v)
		}
		seen[v] = struct{}{}
	}
	return nil
}

// GenreSet returns the configured genre enumeration.
func (c CatalogConfig) GenreSet() []models.Genre {
	out := make([]models.Genre, len(c.Genres))
	for i, g := range c.Genres {
		out[i] = models.Genre(g)
	}
	return out
}

// PlatformSet returns the configured platform enumeration.
func (c CatalogConfig) PlatformSet() []models.Platform {
	out := make([]models.Platform, len(c.Platforms))
	for i, p := range c.Platforms {
		out[i] = models.Platform(p)
	}
	return out
}

// IsProduction reports whether ENVIRONMENT is "production" or "prod".
func (c *Config) IsProduction() bool {
	env := strings.ToLower(c.Server.Environment)
	return env == "production" || env == "prod"
}

func (c *Config) hasWildcardCORS() bool {
	for _, origin := range c.Security.CORSOrigins {
		if strings.TrimSpace(origin) == "*" {
			return true
		}
	}
	return false
}
