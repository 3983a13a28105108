// Package cache stores rendered sheets keyed by the content they were
// rendered from.
//
// Rendering a PDF from a few dozen full-bleed card images is the slowest part
// of a run, and its output is a pure function of the card bytes and the job
// settings. The pipeline hashes both into an artifact key (see [Keyer]) and
// skips rendering on a hit.
//
// Three backends are provided:
//   - [NullCache]: caching disabled
//   - [FileCache]: JSON entries in a local directory (the CLI default)
//   - [RedisCache]: a shared Redis instance, selected by a redis:// URL
//
// [Open] picks a backend from a single spec string as used by the CLI.
package cache

import (
	"context"
	"strings"
	"time"
)

// TTLArtifact is how long rendered sheets are kept.
const TTLArtifact = 30 * 24 * time.Hour

// Cache is a byte store with per-entry expiry.
type Cache interface {
	// Get returns the value for key. A miss is (nil, false, nil).
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A zero ttl never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// SpecNone disables caching when passed to [Open].
const SpecNone = "none"

// Open returns the cache described by spec:
//
//	"" or "none"    NullCache
//	"redis://..."   RedisCache (also rediss://)
//	anything else   file cache rooted at that directory
func Open(spec string) (Cache, error) {
	switch {
	case spec == "" || spec == SpecNone:
		return NewNullCache(), nil
	case IsRedisSpec(spec):
		c, err := NewRedisCache(spec)
		if err != nil {
			return nil, err
		}
		return c, nil
	}

	c, err := NewFileCache(spec)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// IsRedisSpec reports whether spec selects the Redis backend.
func IsRedisSpec(spec string) bool {
	return strings.HasPrefix(spec, "redis://") || strings.HasPrefix(spec, "rediss://")
}
