package calendar

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const fleetCacheKey = "fleet:list"

// RosterCache is the subset of the redis client the cached directory needs.
// *redis.Client satisfies it.
type RosterCache interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// CachedDirectory decorates a Directory with a Redis cache for the calendar
// list. The roster changes rarely compared to events, so only ListResources is
// cached; events are always read fresh. Cache failures fall through to the
// upstream call.
type CachedDirectory struct {
	Directory
	Client RosterCache
	TTL    time.Duration
	Logger *zap.Logger
}

func NewCachedDirectory(inner Directory, client RosterCache, ttl time.Duration, logger *zap.Logger) *CachedDirectory {
	return &CachedDirectory{Directory: inner, Client: client, TTL: ttl, Logger: logger}
}

func (d *CachedDirectory) ListResources(ctx context.Context) ([]Resource, error) {
	if cached, err := d.Client.Get(ctx, fleetCacheKey).Result(); err == nil {
		var resources []Resource
		if err := json.Unmarshal([]byte(cached), &resources); err == nil {
			return resources, nil
		}
	}

	resources, err := d.Directory.ListResources(ctx)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(resources); err == nil {
		if err := d.Client.Set(ctx, fleetCacheKey, data, d.TTL).Err(); err != nil {
			d.Logger.Warn("failed to cache fleet roster", zap.Error(err))
		}
	}
	return resources, nil
}
