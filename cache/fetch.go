package cache

import (
	"context"
	"encoding/json"
	"time"
)

// Fetch wraps fn with a time-boxed cache entry under key. A fresh entry is
// returned without invoking fn. On miss or expiry fn runs; a non-nil result
// is stored, a nil result is returned but not cached so the next call
// retries immediately. A corrupted cache entry is treated as a miss. There
// is no locking: concurrent callers on the same cold key each invoke fn.
func Fetch[T any](ctx context.Context, svc Service, key string, ttl time.Duration, fn func(ctx context.Context) (*T, error)) (*T, error) {
	if data, err := svc.Get(ctx, key); err == nil {
		var cached T
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	value, err := fn(ctx)
	if err != nil {
		return nil, err
	}

	if value == nil {
		return nil, nil
	}

	if data, err := json.Marshal(value); err == nil {
		_ = svc.Set(ctx, key, data, ttl)
	}

	return value, nil
}
