package service

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// CheckAndSetRateLimit takes a rate limit slot for the given client and
// action. It returns false when the slot is already held. A nil Redis client
// disables rate limiting entirely.
func CheckAndSetRateLimit(ctx context.Context, rdb *redis.Client, clientKey, action string, limit time.Duration) (bool, error) {
	if rdb == nil {
		return true, nil
	}

	key := fmt.Sprintf("rate_limit:%s:%s", action, clientKey)

	wasSet, err := rdb.SetNX(ctx, key, "locked", limit).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check rate limit in redis: %w", err)
	}

	return wasSet, nil
}

// GetRateLimitTTL reports how long the client has to wait before the action
// is accepted again.
func GetRateLimitTTL(ctx context.Context, rdb *redis.Client, clientKey, action string) (time.Duration, error) {
	if rdb == nil {
		return 0, nil
	}
	key := fmt.Sprintf("rate_limit:%s:%s", action, clientKey)
	return rdb.TTL(ctx, key).Result()
}
