package cachemanager

import (
	"context"
	"time"
)

// ReadThroughCache answers from the cache and falls back to fn on a miss,
// storing fn's result. Errors from fn are never cached. With skip set, or
// with no cache at all, every call goes straight to fn.
type ReadThroughCache[K comparable, V any, I any] struct {
	cache CacheManager[K, V]
	fn    func(ctx context.Context, input I) (V, error)
	skip  bool
}

func NewReadThroughCache[K comparable, V any, I any](
	cache CacheManager[K, V],
	fn func(ctx context.Context, input I) (V, error),
	skip bool,
) *ReadThroughCache[K, V, I] {
	return &ReadThroughCache[K, V, I]{
		cache: cache,
		fn:    fn,
		skip:  skip || cache == nil,
	}
}

// Get looks key up with a fixed expiry: a hit leaves the entry's TTL alone.
func (r *ReadThroughCache[K, V, I]) Get(ctx context.Context, key K, input I, ttl time.Duration) (V, error) {
	if r.skip {
		return r.fn(ctx, input)
	}
	return r.get(ctx, key, input, ttl, func(ctx context.Context, key K) (V, bool) {
		return r.cache.Get(ctx, key)
	})
}

// GetWithRefresh is Get with a sliding expiry: every hit pushes the entry's
// TTL out again.
func (r *ReadThroughCache[K, V, I]) GetWithRefresh(ctx context.Context, key K, input I, ttl time.Duration) (V, error) {
	if r.skip {
		return r.fn(ctx, input)
	}
	return r.get(ctx, key, input, ttl, func(ctx context.Context, key K) (V, bool) {
		return r.cache.GetWithRefresh(ctx, key, ttl)
	})
}

func (r *ReadThroughCache[K, V, I]) get(
	ctx context.Context,
	key K,
	input I,
	ttl time.Duration,
	lookup func(context.Context, K) (V, bool),
) (V, error) {
	if value, ok := lookup(ctx, key); ok {
		return value, nil
	}

	value, err := r.fn(ctx, input)
	if err != nil {
		return value, err
	}

	r.cache.Set(ctx, key, value, ttl)
	return value, nil
}

// Invalidate drops the cached keys matching match. It is a no-op when the
// cache is skipped.
func (r *ReadThroughCache[K, V, I]) Invalidate(ctx context.Context, match func(K) bool) int {
	if r.skip {
		return 0
	}
	return r.cache.DeleteFunc(ctx, match)
}

// Flush empties the cache. It is a no-op when the cache is skipped.
func (r *ReadThroughCache[K, V, I]) Flush(ctx context.Context) error {
	if r.skip {
		return nil
	}
	return r.cache.Flush(ctx)
}
