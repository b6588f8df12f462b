// CineResenas - Movie Catalog and Review Aggregation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cineresenas

/*
Package supervisor runs the long-lived services of CineResenas under a suture v4
tree.

	RootSupervisor ("cineresenas")
	├── MessagingSupervisor ("messaging-layer")
	│   ├── WebSocketHubService
	│   └── events.Bridge
	├── BackgroundSupervisor ("background-layer")
	│   └── carousel.Rotator
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

A crash in the event bridge restarts the bridge alone; the HTTP server keeps
serving. The catalog itself is not a service: it lives in the library object
owned by main and survives every restart.

Supervisor events (restarts, backoff, timeouts) are logged through sutureslog
onto the zerolog-backed slog logger from the logging package:

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	tree.AddMessagingService(services.NewWebSocketHubService(hub))
	tree.AddMessagingService(events.NewBridge(bus, hub))
	tree.AddBackgroundService(rotator)
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))
	errCh := tree.ServeBackground(ctx)
*/
package supervisor
