// Package cachemanager caches rendered venue reports. The in-memory manager
// is backed by go-cache; ReadThroughCache fills it on a miss.
package cachemanager

import (
	"context"
	"time"
)

// CacheManager is a typed key/value cache with per-entry TTL.
type CacheManager[K comparable, V any] interface {
	Get(ctx context.Context, key K) (V, bool)
	GetWithRefresh(ctx context.Context, key K, ttl time.Duration) (V, bool)
	Set(ctx context.Context, key K, value V, ttl time.Duration)
	DeleteFunc(ctx context.Context, match func(K) bool) int
	Flush(ctx context.Context) error
}
