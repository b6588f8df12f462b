// CineResenas - Movie Catalog and Review Aggregation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cineresenas

// Package websocket pushes catalog events to connected browsers.
//
// A Hub owns the client set and fans out every broadcast. Each Client runs a
// read pump and a write pump on its own goroutines. Inbound messages are
// rate limited per client; the only request a client can make is "ping".
//
// Message format:
//
//	{"type": "review_added", "data": {...}}
//
// The hub runs under the supervisor tree through RunWithContext.
package websocket
