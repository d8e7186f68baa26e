package cache

// ScopedKeyer prefixes every key produced by an inner Keyer.
//
// The GitHub client scopes API responses by a hash of the access token so an
// authenticated response (which may describe a private repository) is never
// served to an anonymous run:
//
//	keyer := cache.NewScopedKeyer(nil, "token:"+cache.Hash([]byte(token))[:12]+":")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer wraps inner, or the default keyer when inner is nil.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

// HTTPKey returns the prefixed HTTP key.
func (k *ScopedKeyer) HTTPKey(namespace, key string) string {
	return k.prefix + k.inner.HTTPKey(namespace, key)
}

// AvatarKey returns the prefixed avatar key.
func (k *ScopedKeyer) AvatarKey(url string) string {
	return k.prefix + k.inner.AvatarKey(url)
}
