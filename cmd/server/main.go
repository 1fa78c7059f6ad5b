// Wayfarer - Typed Random-Walk Music Recommendation Engine
// Copyright 2026 The Wayfarer Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/nyxmusic/wayfarer

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nyxmusic/wayfarer/internal/api"
	"github.com/nyxmusic/wayfarer/internal/config"
	"github.com/nyxmusic/wayfarer/internal/logging"
	"github.com/nyxmusic/wayfarer/internal/recommend"
	"github.com/nyxmusic/wayfarer/internal/storage"
	"github.com/nyxmusic/wayfarer/internal/store/memory"
)

func main() {
	doc, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("failed to load configuration")
	}

	logging.Init(logging.Config{Level: "info", Format: "json"})
	logging.Info().
		Str("default_markov_strategy", doc.Markov.DefaultStrategy).
		Str("default_walk_method", doc.RandomWalk.DefaultWalkMethod).
		Msg("configuration loaded")

	var cache *storage.KernelCache
	if doc.RandomWalk.KernelCacheDir != "" {
		cache, err = storage.NewKernelCache(doc.RandomWalk.KernelCacheDir)
		if err != nil {
			logging.Fatal().Err(err).Msg("failed to initialize kernel cache")
		}
		logging.Info().Str("dir", doc.RandomWalk.KernelCacheDir).Msg("kernel cache enabled")
	}

	st := memory.New()
	seedDemoData(st)

	rec, err := recommend.New(st, doc.RandomWalk, cache, doc.Markov.Registry())
	if err != nil {
		logging.Fatal().Err(err).Msg("failed to initialize recommender")
	}

	handler := api.NewHandler(rec)
	router := api.NewRouter(handler)

	port := os.Getenv("WAYFARER_HTTP_PORT")
	if port == "" {
		port = "8080"
	}

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", port),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("received shutdown signal")
		cancel()
	}()

	errCh := make(chan error, 1)
	go func() {
		logging.Info().Str("addr", server.Addr).Msg("HTTP server starting")
		errCh <- server.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		logging.Info().Msg("shutting down HTTP server")
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal().Err(err).Msg("HTTP server error")
		}
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logging.Error().Err(err).Msg("error during HTTP server shutdown")
	}

	logging.Info().Msg("application stopped gracefully")
}
