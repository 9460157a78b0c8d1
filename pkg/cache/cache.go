// Package cache stores rendered artifacts between CLI runs.
//
// Rendering a signature is deterministic: the same parameters, surface size
// and format always produce the same bytes. The CLI keys exported files by a
// hash of those inputs and serves repeats from the cache.
//
// # Implementations
//
//   - [FileCache]: JSON entries with optional expiry under a directory
//   - [NullCache]: stores nothing, for --no-cache
//
// [Observed] wraps any Cache and reports hits, misses and writes to the
// observability cache hooks.
//
// # Keys
//
// A [Keyer] turns artifact options into keys. [NewScopedKeyer] prefixes
// every key, which the CLI uses to separate cache entries by build
// version.
package cache

import (
	"context"
	"time"
)

// Cache is a byte store with optional expiry.
type Cache interface {
	// Get returns the stored value and whether it was found.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data; a non-positive ttl never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	// Delete removes key. Missing keys are not an error.
	Delete(ctx context.Context, key string) error
	// Close releases resources.
	Close() error
}

// ArtifactKeyOpts are the inputs a rendered artifact depends on.
type ArtifactKeyOpts struct {
	Text        string  `json:"text"`
	Style       string  `json:"style"`
	Font        string  `json:"font"`
	Color       string  `json:"color"`
	StrokeWidth float64 `json:"stroke_width"`
	Width       int     `json:"width"`
	Height      int     `json:"height"`
	Format      string  `json:"format"`
	Quality     float64 `json:"quality,omitempty"`
	Background  string  `json:"background,omitempty"`
	Smooth      bool    `json:"smooth,omitempty"`
	Progress    float64 `json:"progress,omitempty"`
}

// Keyer generates cache keys.
type Keyer interface {
	ArtifactKey(opts ArtifactKeyOpts) string
}

// DefaultKeyer hashes options into "artifact:<sha256>" keys.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the default keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// ArtifactKey implements Keyer.
func (DefaultKeyer) ArtifactKey(opts ArtifactKeyOpts) string {
	return hashKey("artifact", opts)
}
