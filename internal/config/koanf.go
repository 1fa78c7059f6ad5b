// Wayfarer - Typed Random-Walk Music Recommendation Engine
// Copyright 2026 The Wayfarer Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/nyxmusic/wayfarer

// Package config loads the strategy and solver-parameter documents that
// drive the recommendation core, layering defaults, an optional YAML file,
// and environment overrides with Koanf v2.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	"github.com/nyxmusic/wayfarer/internal/graph"
	"github.com/nyxmusic/wayfarer/internal/markov"
	"github.com/nyxmusic/wayfarer/internal/recommend"
)

// DefaultConfigPaths lists the paths where the config file is searched, in
// priority order. The first file found is used.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/wayfarer/config.yaml",
	"/etc/wayfarer/config.yml",
}

// ConfigPathEnvVar overrides the config file path search entirely.
const ConfigPathEnvVar = "WAYFARER_CONFIG_PATH"

// envMappings maps lowercased, WAYFARER_-prefixed environment variable
// names to koanf dotted paths. An explicit table, rather than an
// algorithmic case conversion, because several path segments (random_walk,
// power_iteration, default_strategy) contain underscores of their own.
var envMappings = map[string]string{
	"wayfarer_markov_default_strategy":              "markov.default_strategy",
	"wayfarer_random_walk_default_strategy":         "random_walk.default_strategy",
	"wayfarer_random_walk_default_walk_method":      "random_walk.default_walk_method",
	"wayfarer_random_walk_power_iteration_alpha":    "random_walk.power_iteration.alpha",
	"wayfarer_random_walk_power_iteration_tol":      "random_walk.power_iteration.tol",
	"wayfarer_random_walk_power_iteration_max_iter": "random_walk.power_iteration.max_iter",
	"wayfarer_random_walk_monte_carlo_steps":        "random_walk.monte_carlo.steps",
	"wayfarer_random_walk_monte_carlo_seed":         "random_walk.monte_carlo.seed",
	"wayfarer_random_walk_kernel_cache_dir":         "random_walk.kernel_cache_dir",
	"wayfarer_random_walk_solver_workers":           "random_walk.solver_workers",
}

// StrategyDocument is the on-disk shape of the markov strategy
// configuration: a set of named type transition matrices plus the
// recommender's other tunables.
type StrategyDocument struct {
	Markov     MarkovSection    `koanf:"markov"`
	RandomWalk recommend.Config `koanf:"random_walk"`
}

// MarkovSection holds the named strategy documents and a default strategy
// name. DefaultStrategy is not consulted when a query omits markov: the
// HTTP route uses balanced in that case.
type MarkovSection struct {
	DefaultStrategy string                 `koanf:"default_strategy"`
	Strategies      map[string]StrategyRow `koanf:"strategies"`

	// registry is populated by Load after every strategy row validates. It
	// is unexported because it is derived, not part of the document's
	// on-disk shape.
	registry *markov.Registry
}

// Registry returns the markov.Registry built from this document's
// strategies, resolving both the shipped balanced/exploration strategies
// and any custom strategies loaded from file or environment. Populated
// only after a successful Load.
func (m MarkovSection) Registry() *markov.Registry {
	return m.registry
}

// StrategyRow is one named strategy's type transition matrix document.
type StrategyRow struct {
	TypeTransitionProbabilities map[string]map[string]float64 `koanf:"type_transition_probabilities"`
}

// ToTypeTransitionMatrix converts the YAML-shaped row into the typed
// matrix the markov package operates on, validating that every type name
// is recognized.
func (row StrategyRow) ToTypeTransitionMatrix() (markov.TypeTransitionMatrix, error) {
	m := make(markov.TypeTransitionMatrix, len(row.TypeTransitionProbabilities))
	for srcName, dstRow := range row.TypeTransitionProbabilities {
		srcType := graph.NodeType(srcName)
		if !srcType.Valid() {
			return nil, fmt.Errorf("%w: unknown source node type %q", recommend.ErrConfigInvalid, srcName)
		}
		typed := make(map[graph.NodeType]float64, len(dstRow))
		for dstName, p := range dstRow {
			dstType := graph.NodeType(dstName)
			if !dstType.Valid() {
				return nil, fmt.Errorf("%w: unknown destination node type %q", recommend.ErrConfigInvalid, dstName)
			}
			typed[dstType] = p
		}
		m[srcType] = typed
	}
	return m, nil
}

// defaultStrategyDocument returns the shipped defaults: the balanced
// strategy selected by name, and spec-default solver parameters. The
// balanced and exploration strategies themselves are built into the
// markov package (markov.LoadNamedStrategy) and need no YAML to exist;
// a config file only needs to list a strategy row to override or add one.
func defaultStrategyDocument() *StrategyDocument {
	return &StrategyDocument{
		Markov: MarkovSection{
			DefaultStrategy: "balanced",
		},
		RandomWalk: recommend.DefaultConfig(),
	}
}

// Load reads the strategy and random-walk configuration document using
// three layered sources, in increasing priority: built-in defaults, an
// optional YAML file, and environment variable overrides prefixed
// WAYFARER_.
func Load() (*StrategyDocument, error) {
	k := koanf.New(".")

	defaults := defaultStrategyDocument()
	if err := k.Load(structs.Provider(defaults, "koanf"), nil); err != nil {
		return nil, fmt.Errorf("config: load defaults: %w", err)
	}

	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("config: load config file %s: %w", configPath, err)
		}
	}

	envProvider := env.Provider("", ".", envTransformFunc)
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("config: load environment variables: %w", err)
	}

	doc := &StrategyDocument{}
	if err := k.Unmarshal("", doc); err != nil {
		return nil, fmt.Errorf("config: unmarshal configuration: %w", err)
	}

	custom := make(map[markov.Strategy]markov.TypeTransitionMatrix, len(doc.Markov.Strategies))
	for name, row := range doc.Markov.Strategies {
		matrix, err := row.ToTypeTransitionMatrix()
		if err != nil {
			return nil, fmt.Errorf("config: strategy %q: %w", name, err)
		}
		custom[markov.Strategy(name)] = matrix
	}
	doc.Markov.registry = markov.NewRegistry(custom)

	if err := doc.RandomWalk.Validate(); err != nil {
		return nil, fmt.Errorf("config: random_walk: %w", err)
	}

	return doc, nil
}

// findConfigFile searches for a config file in the default paths,
// respecting ConfigPathEnvVar first.
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}
	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// envTransformFunc maps a raw environment variable name to its koanf
// dotted path via envMappings. Unrecognized variables (including anything
// outside the WAYFARER_ namespace) are dropped, matching koanf's
// convention for ignoring unmapped environment entries.
func envTransformFunc(key string) string {
	return envMappings[strings.ToLower(key)]
}
