// Wayfarer - Typed Random-Walk Music Recommendation Engine
// Copyright 2026 The Wayfarer Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/nyxmusic/wayfarer

package recommend

import (
	"fmt"

	"github.com/nyxmusic/wayfarer/internal/randomwalk"
)

// Config holds the tunable parameters of the recommendation pipeline:
// default strategy selection, solver parameters, and kernel-cache
// behavior. It is populated by the configuration layer (koanf-backed) and
// passed to New.
type Config struct {
	// DefaultWalkMethod must name a known walk method; Validate checks it.
	// Recommend takes the walk method from its caller and does not read
	// this field, and the HTTP route uses power_iteration when a query
	// omits walk.
	DefaultWalkMethod string `koanf:"default_walk_method"`

	PowerIteration PowerIterationConfig `koanf:"power_iteration"`
	MonteCarlo     MonteCarloConfig     `koanf:"monte_carlo"`

	// KernelCacheDir, if non-empty, enables kernel-cache persistence at
	// this directory. Empty disables caching.
	KernelCacheDir string `koanf:"kernel_cache_dir"`

	// SolverWorkers bounds goroutine parallelism inside a solver run.
	// 1 (or 0) means single-threaded.
	SolverWorkers int `koanf:"solver_workers"`
}

// PowerIterationConfig mirrors the random_walk.power_iteration
// configuration document shape.
type PowerIterationConfig struct {
	Alpha   float64 `koanf:"alpha"`
	Tol     float64 `koanf:"tol"`
	MaxIter int     `koanf:"max_iter"`
}

// MonteCarloConfig mirrors the random_walk.monte_carlo configuration
// document shape.
type MonteCarloConfig struct {
	Steps int   `koanf:"steps"`
	Seed  int64 `koanf:"seed"`
}

// DefaultConfig returns the shipped defaults: power iteration as the
// default solver, spec-default solver parameters, and kernel caching
// disabled.
func DefaultConfig() Config {
	return Config{
		DefaultWalkMethod: string(randomwalk.MethodPowerIteration),
		PowerIteration: PowerIterationConfig{
			Alpha:   0.15,
			Tol:     1e-6,
			MaxIter: 1000,
		},
		MonteCarlo: MonteCarloConfig{
			Steps: 1000,
		},
	}
}

// Validate checks that the configuration is internally consistent:
// positive iteration bounds and a recognized default walk method.
func (c Config) Validate() error {
	if c.PowerIteration.Alpha <= 0 || c.PowerIteration.Alpha > 1 {
		return fmt.Errorf("%w: power_iteration.alpha must be in (0, 1], got %g", ErrConfigInvalid, c.PowerIteration.Alpha)
	}
	if c.PowerIteration.Tol <= 0 {
		return fmt.Errorf("%w: power_iteration.tol must be positive, got %g", ErrConfigInvalid, c.PowerIteration.Tol)
	}
	if c.PowerIteration.MaxIter <= 0 {
		return fmt.Errorf("%w: power_iteration.max_iter must be positive, got %d", ErrConfigInvalid, c.PowerIteration.MaxIter)
	}
	if c.MonteCarlo.Steps <= 0 {
		return fmt.Errorf("%w: monte_carlo.steps must be positive, got %d", ErrConfigInvalid, c.MonteCarlo.Steps)
	}

	switch randomwalk.Method(c.DefaultWalkMethod) {
	case randomwalk.MethodPowerIteration, randomwalk.MethodMonteCarlo:
	default:
		return fmt.Errorf("%w: unrecognized default_walk_method %q", ErrConfigInvalid, c.DefaultWalkMethod)
	}

	return nil
}
