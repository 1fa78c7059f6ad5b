// Wayfarer - Typed Random-Walk Music Recommendation Engine
// Copyright 2026 The Wayfarer Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/nyxmusic/wayfarer

/*
Package config loads the two documents that tune the recommendation core:
the named markov strategies (type transition matrices) and the random-walk
solver parameters.

# Configuration Sources

Load() layers three sources, lowest to highest priority:
  - Built-in defaults (defaultStrategyDocument)
  - An optional YAML file, found via WAYFARER_CONFIG_PATH or the search
    paths in DefaultConfigPaths
  - Environment variables in the WAYFARER_ namespace

# Document Shape

	markov:
	  default_strategy: balanced
	  strategies:
	    balanced:
	      type_transition_probabilities:
	        track: { artist: 0.4, album: 0.4, tag: 0.2 }
	        ...
	random_walk:
	  default_walk_method: power_iteration
	  power_iteration: { alpha: 0.15, tol: 1e-6, max_iter: 1000 }
	  monte_carlo:      { steps: 1000, seed: 0 }
	  kernel_cache_dir: ""
	  solver_workers: 0

# Usage

	doc, err := config.Load()
	if err != nil {
	    log.Fatalf("failed to load config: %v", err)
	}
	rec, err := recommend.New(store, doc.RandomWalk, cache, doc.Markov.Registry())

doc.Markov.Registry() resolves both the shipped balanced/exploration
strategies and any strategies declared under markov.strategies, so a
config-defined strategy is selectable anywhere a recommendation request
names one.

# Environment Variables

Only the variables listed in envMappings are recognized; everything else in
the environment is ignored by this loader. See envMappings for the full
list.
*/
package config
