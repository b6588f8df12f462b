// CineResenas - Movie Catalog and Review Aggregation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cineresenas

/*
Package main is the entry point for the CineResenas server.

CineResenas keeps a movie catalog in memory, aggregates user reviews into a
one-decimal rating, and serves the catalog, favorites, session, and filtered
view over a JSON API with live updates on a WebSocket.

# Application Architecture

	RootSupervisor ("cineresenas")
	├── MessagingSupervisor ("messaging-layer")
	│   ├── WebSocket hub
	│   └── Event bridge (bus -> hub)
	├── BackgroundSupervisor ("background-layer")
	│   └── Featured carousel (if CAROUSEL_ENABLED)
	└── APISupervisor ("api-layer")
	    └── HTTP server

Startup order:

 1. Configuration: koanf v2 from defaults, config.yaml, and the environment
 2. Logging: zerolog at LOG_LEVEL in LOG_FORMAT
 3. Event bus and access policy
 4. Library: the owned catalog, favorites, session, and view state
 5. Seed: movies from CATALOG_SEED_PATH, if set
 6. Supervisor tree with the services above

# Configuration

Common environment variables:

	HTTP_PORT=8080
	CORS_ORIGINS=http://localhost:5173
	CATALOG_SEED_PATH=configs/seed.yaml
	CATALOG_LOCALE=es_ES
	CAROUSEL_INTERVAL=4s
	LOG_LEVEL=debug
	LOG_FORMAT=console

# Signal Handling

SIGINT and SIGTERM cancel the root context. The supervisor stops the HTTP
server (draining connections), the hub (closing clients), and the bridge,
then main closes the library and the bus.
*/
package main
