// Wayfarer - Typed Random-Walk Music Recommendation Engine
// Copyright 2026 The Wayfarer Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/nyxmusic/wayfarer

/*
Package middleware provides the HTTP middleware used by Wayfarer's router:
gzip compression, request ID propagation, and per-endpoint latency
tracking.

Key Components:

  - Compression: gzip-encodes responses for clients that accept gzip
  - Performance Monitor: request latency tracking with percentile calculations
  - Request ID: UUID-based request tracking, also stored for log correlation

Middleware Stack:

api.NewRouter installs the middleware on a Chi router, outermost first:

	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(chiMiddleware(middleware.RequestID))
	r.Use(chiMiddleware(middleware.Compression))
	r.Use(h.Performance().Middleware)

Compression and RequestID take and return http.HandlerFunc; the api
package's chiMiddleware adapter converts them to Chi's
func(http.Handler) http.Handler shape, which PerformanceMonitor.Middleware
already has.

Usage Example - Compression:

	http.HandleFunc("/recommendations", middleware.Compression(handler))

Usage Example - Performance Monitoring:

	perfMon := middleware.NewPerformanceMonitor(1000) // keep the last 1000 requests
	http.Handle("/recommendations", perfMon.Middleware(handler))

	for _, s := range perfMon.GetStats() {
	    fmt.Printf("%s p50=%dms p95=%dms p99=%dms\n",
	        s.Path, s.P50Duration, s.P95Duration, s.P99Duration)
	}

Usage Example - Request ID:

	http.HandleFunc("/recommendations", middleware.RequestID(handler))

	func handler(w http.ResponseWriter, r *http.Request) {
	    requestID := middleware.GetRequestID(r.Context())
	    log.Printf("[%s] Processing request", requestID)
	}

Compression Details:

The compression middleware:
  - Compresses every response, whatever its size or content type, when the
    request's Accept-Encoding contains gzip
  - Passes websocket upgrade requests through uncompressed
  - Sets Content-Encoding: gzip and removes Content-Length
  - Does not implement http.Flusher

Performance Monitor:

The performance monitor tracks:
  - Request counts per method and path
  - Average, minimum, maximum and percentile (p50, p95, p99) latencies in
    milliseconds
  - A sliding window of the most recent requests, sized by the argument
    to NewPerformanceMonitor
  - A warning log line for every request slower than one second

Thread Safety:

All middleware components are safe for concurrent use:
  - Compression takes a gzip writer per request from a sync.Pool
  - Performance monitor guards its window with a sync.RWMutex
  - Request ID stores its value in the request's context.Context

See Also:

  - internal/api: router and handlers wrapped by this middleware
  - internal/logging: request and correlation ID context helpers
*/
package middleware
