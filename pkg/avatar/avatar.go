// Package avatar loads contributor avatar images for card rendering.
//
// A [Loader] fetches image bytes over HTTP, caches them, and decodes them
// into square images of the requested size. Concurrent loads of one URL
// share a single request. A failed load is attempted once; callers drop the
// avatar rather than retrying.
package avatar

import (
	"bytes"
	"context"
	"image"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/disintegration/imaging"
	"golang.org/x/sync/singleflight"

	"github.com/jasonlovesdoggo/gitsocial/pkg/cache"
	errs "github.com/jasonlovesdoggo/gitsocial/pkg/errors"
	"github.com/jasonlovesdoggo/gitsocial/pkg/integrations"
	"github.com/jasonlovesdoggo/gitsocial/pkg/observability"
)

// MaxBytes bounds a single avatar download.
const MaxBytes = 4 << 20

// Source loads an avatar image as a size × size square.
type Source interface {
	Load(ctx context.Context, url string, size int) (image.Image, error)
}

// Loader is the HTTP-backed Source.
type Loader struct {
	client *integrations.Client
	cache  cache.Cache
	keyer  cache.Keyer
	ttl    time.Duration
	logger *log.Logger
	group  singleflight.Group
}

// Option configures a Loader.
type Option func(*Loader)

// WithKeyer sets the cache keyer.
func WithKeyer(k cache.Keyer) Option { return func(l *Loader) { l.keyer = k } }

// WithTTL sets how long downloaded bytes stay cached.
func WithTTL(ttl time.Duration) Option { return func(l *Loader) { l.ttl = ttl } }

// WithLogger sets the logger for cache and download events.
func WithLogger(logger *log.Logger) Option { return func(l *Loader) { l.logger = logger } }

// WithClient replaces the HTTP client used for downloads.
func WithClient(c *integrations.Client) Option { return func(l *Loader) { l.client = c } }

// NewLoader creates a Loader caching bytes in c (nil disables caching).
func NewLoader(c cache.Cache, opts ...Option) *Loader {
	if c == nil {
		c = cache.NewNullCache()
	}
	l := &Loader{
		client: integrations.NewClient(nil, "avatar", 0, map[string]string{"Accept": "image/*"}),
		cache:  c,
		keyer:  cache.NewDefaultKeyer(),
		ttl:    cache.DefaultAvatarTTL,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load returns the image at url cropped and scaled to size × size.
func (l *Loader) Load(ctx context.Context, url string, size int) (image.Image, error) {
	data, err := l.bytes(ctx, url)
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeAssetLoad, err, "load avatar %s", url)
	}
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeAssetLoad, err, "decode avatar %s", url)
	}
	if size <= 0 {
		return img, nil
	}
	return imaging.Fill(img, size, size, imaging.Center, imaging.Lanczos), nil
}

func (l *Loader) bytes(ctx context.Context, url string) ([]byte, error) {
	key := l.keyer.AvatarKey(url)
	hooks := observability.Cache()
	if data, ok, err := l.cache.Get(ctx, key); err == nil && ok {
		hooks.OnCacheHit(ctx, "avatar")
		return data, nil
	}
	hooks.OnCacheMiss(ctx, "avatar")

	v, err, shared := l.group.Do(key, func() (any, error) {
		data, err := l.client.GetBytes(ctx, url, MaxBytes)
		if err != nil {
			return nil, err
		}
		if err := l.cache.Set(ctx, key, data, l.ttl); err != nil {
			l.logger.Debug("avatar cache write failed", "url", url, "error", err)
		} else {
			hooks.OnCacheSet(ctx, "avatar", len(data))
		}
		return data, nil
	})
	if err != nil {
		return nil, err
	}
	l.logger.Debug("avatar fetched", "url", url, "shared", shared)
	return v.([]byte), nil
}
