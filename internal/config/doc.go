// CineResenas - Movie Catalog and Review Aggregation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cineresenas

// Package config loads CineResenas configuration with koanf.
//
// Sources are layered, later ones winning:
//
//  1. Built-in defaults (defaultConfig)
//  2. An optional YAML file: $CONFIG_PATH, ./config.yaml, ./config.yml,
//     /etc/cineresenas/config.yaml
//  3. Environment variables listed in envMappings
//
// Environment Variables:
//   - HTTP_PORT, HTTP_HOST, HTTP_TIMEOUT, ENVIRONMENT
//   - CORS_ORIGINS (comma-separated), RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW, DISABLE_RATE_LIMIT
//   - ACCESS_POLICY_PATH
//   - LOG_LEVEL, LOG_FORMAT, LOG_CALLER
//   - CATALOG_GENRES, CATALOG_PLATFORMS (comma-separated)
//   - CATALOG_LOCALE, CATALOG_ANONYMOUS_AUTHOR, CATALOG_SEED_PATH, VIEW_CACHE_SIZE
//   - VIEW_ALL_LABEL, VIEW_FAVORITES_LABEL
//   - CAROUSEL_ENABLED, CAROUSEL_INTERVAL
//   - EVENTS_BUFFER
//
// ENVIRONMENT=production (or prod) refuses wildcard CORS_ORIGINS.
package config
