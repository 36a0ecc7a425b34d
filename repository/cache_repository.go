package repository

import (
	"context"
	"time"
)

// CacheRepository stores string values with an expiry. A miss is
// ("", false, nil); err is reserved for backend failures.
type CacheRepository interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
}
