// Package cache provides byte-oriented caches for remote data.
//
// Two kinds of data are cached: GitHub API responses (so repeated renders of
// one repository do not spend rate limit) and contributor avatar images.
// Backends share one [Cache] interface:
//
//   - [FileCache]: entries as JSON files under a directory (CLI default)
//   - [RedisCache]: entries in Redis, for sharing a cache between machines
//   - [NullCache]: never stores anything (--no-cache)
//
// Keys are built with a [Keyer] so callers never assemble key strings by
// hand. [NewScopedKeyer] prefixes every key, which keeps authenticated API
// responses apart from anonymous ones.
package cache

import (
	"context"
	"os"
	"path/filepath"
	"time"
)

// Default time-to-live values.
const (
	DefaultHTTPTTL   = 24 * time.Hour
	DefaultAvatarTTL = 7 * 24 * time.Hour
)

// Cache stores opaque byte values with an optional TTL.
type Cache interface {
	// Get returns the value for key. A miss is (nil, false, nil).
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data under key. A ttl of 0 never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	// Delete removes key; deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Close releases resources held by the cache.
	Close() error
}

// Keyer builds cache keys.
type Keyer interface {
	// HTTPKey keys an API response within a namespace such as "github:".
	HTTPKey(namespace, key string) string
	// AvatarKey keys the image bytes served at url.
	AvatarKey(url string) string
}

// DefaultKeyer is the standard key layout.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the standard keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// HTTPKey returns "http:<namespace>:<key>".
func (DefaultKeyer) HTTPKey(namespace, key string) string {
	return "http:" + namespace + ":" + key
}

// AvatarKey returns "avatar:<sha256(url)>".
func (DefaultKeyer) AvatarKey(url string) string {
	return hashKey("avatar", url)
}

// DefaultDir returns the per-user cache directory, e.g. ~/.cache/gitsocial.
func DefaultDir() (string, error) {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "gitsocial"), nil
}
