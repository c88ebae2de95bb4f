// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"fletero/config"

	"github.com/go-redis/redis/v8"
)

// FleetCacheClient is the Redis client backing the fleet roster cache.
var FleetCacheClient *redis.Client

// InitFleetCache initializes the Redis client for fleet roster caching.
func InitFleetCache() {
	FleetCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisFleetDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := FleetCacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Fleet Cache): %v", err)
	}
}

// GetFleetCacheClient returns the Redis client for fleet roster caching.
func GetFleetCacheClient() *redis.Client {
	if FleetCacheClient == nil {
		InitFleetCache()
	}
	return FleetCacheClient
}
