package pricing

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"sparkle/models"

	"github.com/go-redis/redis/v8"
)

// RuleCache holds one consistent snapshot of every pricing rule.
type RuleCache interface {
	Get(ctx context.Context) ([]models.PricingRule, bool, error)
	Set(ctx context.Context, rules []models.PricingRule) error
	Invalidate(ctx context.Context) error
}

type RedisRuleCache struct {
	client *redis.Client
	key    string
	ttl    time.Duration
}

func NewRedisRuleCache(client *redis.Client, key string, ttl time.Duration) RuleCache {
	return &RedisRuleCache{client: client, key: key, ttl: ttl}
}

func (c *RedisRuleCache) Get(ctx context.Context) ([]models.PricingRule, bool, error) {
	val, err := c.client.Get(ctx, c.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var rules []models.PricingRule
	if err := json.Unmarshal(val, &rules); err != nil {
		return nil, false, err
	}
	return rules, true, nil
}

func (c *RedisRuleCache) Set(ctx context.Context, rules []models.PricingRule) error {
	data, err := json.Marshal(rules)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key, data, c.ttl).Err()
}

func (c *RedisRuleCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, c.key).Err()
}
