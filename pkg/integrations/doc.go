// Package integrations provides the shared HTTP client used by remote data
// sources.
//
// [Client] adds default headers, classifies response status codes into
// [ErrNotFound], [ErrRateLimited] and retryable [ErrNetwork] failures, and
// caches decoded responses in a [cache.Cache] under keys built by a
// [cache.Keyer]. The GitHub source in the [github] subpackage embeds it.
//
//	c := integrations.NewClient(fileCache, "github", 24*time.Hour, headers)
//	err := c.Cached(ctx, "repo:owner/name", refresh, &v, func() error {
//	    return c.Get(ctx, url, &v)
//	})
//
// [github]: github.com/jasonlovesdoggo/gitsocial/pkg/integrations/github
// [cache.Cache]: github.com/jasonlovesdoggo/gitsocial/pkg/cache.Cache
// [cache.Keyer]: github.com/jasonlovesdoggo/gitsocial/pkg/cache.Keyer
package integrations
