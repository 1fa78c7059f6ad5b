// Wayfarer - Typed Random-Walk Music Recommendation Engine
// Copyright 2026 The Wayfarer Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/nyxmusic/wayfarer

// Package api exposes the recommendation core over HTTP: a health check,
// one recommendations route, a performance-stats route, and a Prometheus
// metrics endpoint, wired through a Chi router with request-ID,
// panic-recovery, gzip-compression and latency-tracking middleware.
package api
