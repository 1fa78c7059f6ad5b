// Wayfarer - Typed Random-Walk Music Recommendation Engine
// Copyright 2026 The Wayfarer Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/nyxmusic/wayfarer

/*
Package main is the entry point for the Wayfarer recommendation server.

Wayfarer recommends tracks by running a typed random walk over a
heterogeneous graph built from a listener's history and artist/tag
metadata. This binary exposes that core over a minimal HTTP surface.

# Application Architecture

The server initializes components in the following order:

 1. Configuration: markov strategy and random-walk parameter documents,
    loaded via Koanf v2 (internal/config)
 2. Logging: zerolog, JSON output
 3. Kernel cache: optional, enabled when random_walk.kernel_cache_dir is set
 4. Entity store: an in-memory store/memory.Store seeded with demo data
 5. Recommender: wires the store, configuration, and kernel cache
 6. HTTP server: Chi router with one recommendations route, a liveness
    probe, a /debug/performance stats route, and a Prometheus metrics
    endpoint

# Configuration

Configuration is loaded via Koanf v2 with layered sources (highest
priority wins):
  - Environment variables prefixed WAYFARER_
  - Config file (config.yaml, or WAYFARER_CONFIG_PATH)
  - Built-in defaults

WAYFARER_HTTP_PORT selects the HTTP listen port (default 8080).

# Signal Handling

The server handles graceful shutdown on SIGINT and SIGTERM, stopping
new connections and waiting up to 10s for in-flight requests to finish.

# Example Usage

	export WAYFARER_HTTP_PORT=8080
	go run ./cmd/server

	curl 'http://localhost:8080/recommendations?env=default&seeds=2&k=5&walk=monte_carlo'
*/
package main
