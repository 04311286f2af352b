package cache

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrCacheMiss is returned by Get when the key is absent or expired.
var ErrCacheMiss = errors.New("cache entry not found")

// Service is the key-value cache used for the cache-aside fetch helper. It
// can be backed by an in-memory map or by redis without touching callers.
type Service interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

func FixturesKey(teamID string) string {
	return fmt.Sprintf("fixtures:%s", teamID)
}

func SquadKey(teamID string) string {
	return fmt.Sprintf("squad:%s", teamID)
}

func StandingsKey(league string) string {
	return fmt.Sprintf("standings:%s", league)
}

func SummaryKey(matchID string) string {
	return fmt.Sprintf("summary:%s", matchID)
}

func MediaKey(path string) string {
	return fmt.Sprintf("media:%s", path)
}
