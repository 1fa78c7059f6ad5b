// Wayfarer - Typed Random-Walk Music Recommendation Engine
// Copyright 2026 The Wayfarer Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/nyxmusic/wayfarer

// Package storage persists built Markov kernels so repeated queries against
// an unchanged graph skip kernel reconstruction.
//
// Kernels are serialized with Go's gob encoding, compressed with gzip, and
// checksummed with SHA-256 to detect corruption, the same way this
// project's earlier algorithm-model store persisted trained model state.
package storage

import (
	"bytes"
	"compress/gzip"
	"crypto/sha256"
	"encoding/gob"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/nyxmusic/wayfarer/internal/graph"
	"github.com/nyxmusic/wayfarer/internal/markov"
)

// CacheMetadata describes a cached kernel entry.
type CacheMetadata struct {
	GraphSignature string
	Strategy       markov.Strategy
	BuiltAt        time.Time
	Checksum       string
	SizeBytes      int64
}

// cachedKernel is the gob-serializable representation of a markov.Kernel.
type cachedKernel struct {
	P         [][]float64
	NodeNames []string
	Strategy  markov.Strategy
}

// storedFile is the on-disk format for a cached kernel.
type storedFile struct {
	Metadata       CacheMetadata
	CompressedData []byte
}

// KernelCache persists built kernels to disk, keyed by (graph signature,
// strategy). It is safe for concurrent use.
type KernelCache struct {
	baseDir string
	mu      sync.RWMutex
}

// NewKernelCache returns a KernelCache rooted at baseDir, creating it if
// necessary.
func NewKernelCache(baseDir string) (*KernelCache, error) {
	if err := os.MkdirAll(baseDir, 0o750); err != nil {
		return nil, fmt.Errorf("storage: create kernel cache directory: %w", err)
	}
	return &KernelCache{baseDir: baseDir}, nil
}

// Save persists k under the (graphSignature, k.Strategy) key, overwriting
// any existing entry for that key.
func (c *KernelCache) Save(graphSignature string, k *markov.Kernel) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	ck := cachedKernel{
		P:         k.P,
		NodeNames: k.Index.Names(),
		Strategy:  k.Strategy,
	}

	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(ck); err != nil {
		return fmt.Errorf("storage: encode kernel: %w", err)
	}
	rawData := buf.Bytes()

	hash := sha256.Sum256(rawData)
	checksum := hex.EncodeToString(hash[:])

	var compressed bytes.Buffer
	gzw := gzip.NewWriter(&compressed)
	if _, err := gzw.Write(rawData); err != nil {
		return fmt.Errorf("storage: compress kernel: %w", err)
	}
	if err := gzw.Close(); err != nil {
		return fmt.Errorf("storage: finalize kernel compression: %w", err)
	}

	meta := CacheMetadata{
		GraphSignature: graphSignature,
		Strategy:       k.Strategy,
		BuiltAt:        time.Now(),
		Checksum:       checksum,
		SizeBytes:      int64(compressed.Len()),
	}

	f, err := os.Create(c.entryPath(graphSignature, k.Strategy))
	if err != nil {
		return fmt.Errorf("storage: create kernel cache file: %w", err)
	}
	defer func() { _ = f.Close() }()

	sf := storedFile{Metadata: meta, CompressedData: compressed.Bytes()}
	if err := gob.NewEncoder(f).Encode(sf); err != nil {
		return fmt.Errorf("storage: write kernel cache file: %w", err)
	}
	return nil
}

// Load retrieves a previously saved kernel for (graphSignature, strategy).
// It returns ok=false, nil error if no entry exists for that key.
func (c *KernelCache) Load(graphSignature string, strategy markov.Strategy) (*markov.Kernel, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	path := c.entryPath(graphSignature, strategy)
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("storage: open kernel cache file: %w", err)
	}
	defer func() { _ = f.Close() }()

	var sf storedFile
	if err := gob.NewDecoder(f).Decode(&sf); err != nil {
		return nil, false, fmt.Errorf("storage: read kernel cache file: %w", err)
	}

	gzr, err := gzip.NewReader(bytes.NewReader(sf.CompressedData))
	if err != nil {
		return nil, false, fmt.Errorf("storage: decompress kernel: %w", err)
	}
	defer func() { _ = gzr.Close() }()

	rawData, err := io.ReadAll(gzr)
	if err != nil {
		return nil, false, fmt.Errorf("storage: read decompressed kernel: %w", err)
	}

	hash := sha256.Sum256(rawData)
	if hex.EncodeToString(hash[:]) != sf.Metadata.Checksum {
		return nil, false, fmt.Errorf("storage: kernel cache checksum mismatch for %s/%s", graphSignature, strategy)
	}

	var ck cachedKernel
	if err := gob.NewDecoder(bytes.NewReader(rawData)).Decode(&ck); err != nil {
		return nil, false, fmt.Errorf("storage: decode kernel: %w", err)
	}

	index, err := graph.NewNodeIndex(ck.NodeNames)
	if err != nil {
		return nil, false, fmt.Errorf("storage: rebuild node index: %w", err)
	}

	return &markov.Kernel{P: ck.P, Index: index, Strategy: ck.Strategy}, true, nil
}

// Delete removes the cache entry for (graphSignature, strategy), if any.
func (c *KernelCache) Delete(graphSignature string, strategy markov.Strategy) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	err := os.Remove(c.entryPath(graphSignature, strategy))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("storage: delete kernel cache entry: %w", err)
	}
	return nil
}

func (c *KernelCache) entryPath(graphSignature string, strategy markov.Strategy) string {
	return filepath.Join(c.baseDir, fmt.Sprintf("%s_%s.gob.gz", graphSignature, strategy))
}
