// File: utils/cache.go
package utils

import (
	"context"
	"log"

	"sparkle/config"

	"github.com/go-redis/redis/v8"
)

var (
	// CacheClient holds the pricing-rule snapshot cache.
	CacheClient *redis.Client
	// DraftClient is the dedicated client for booking-wizard drafts.
	DraftClient *redis.Client
)

func newRedisClient(db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       db,
	})
}

func mustPing(client *redis.Client, name string) {
	ctx, cancel := context.WithTimeout(context.Background(), PingTimeout)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (%s): %v", name, err)
	}
}

// InitCache initializes the generic Redis cache client.
func InitCache() {
	CacheClient = newRedisClient(config.AppConfig.RedisCacheDB)
	mustPing(CacheClient, "Cache")
}

// GetCacheClient returns the generic cache client.
func GetCacheClient() *redis.Client {
	if CacheClient == nil {
		InitCache()
	}
	return CacheClient
}

// InitDraftCache initializes the Redis client that stores wizard drafts.
func InitDraftCache() {
	DraftClient = newRedisClient(config.AppConfig.RedisDraftDB)
	mustPing(DraftClient, "Drafts")
}

// GetDraftClient returns the Redis client for wizard drafts.
func GetDraftClient() *redis.Client {
	if DraftClient == nil {
		InitDraftCache()
	}
	return DraftClient
}

// InitRedis initializes every Redis client used by the server.
func InitRedis() {
	InitCache()
	InitDraftCache()
}
