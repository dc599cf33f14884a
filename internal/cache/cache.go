// Package cache provides the read-path cache used to serve aggregated
// statistics without recomputing them on every request.
package cache

import (
	"context"
	"time"
)

// Cache is the minimal key-value surface the stats read path needs.
// redis backs it in production; tests run it against miniredis.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
}

// Well-known keys.
const (
	KeyFullStats = "stats:full"
)
