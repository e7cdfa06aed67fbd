package utils

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"
)

func authCacheKey(tokenHash string) string {
	return AuthCachePrefix + tokenHash
}

// CacheAuthToken records that tokenHash belongs to userID.
func CacheAuthToken(ctx context.Context, client *redis.Client, tokenHash, userID string) error {
	if client == nil {
		return nil
	}
	if err := client.Set(ctx, authCacheKey(tokenHash), userID, AuthCacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to cache auth token: %w", err)
	}
	return nil
}

// LookupAuthToken returns the cached user ID for tokenHash. A miss yields "" and no error.
func LookupAuthToken(ctx context.Context, client *redis.Client, tokenHash string) (string, error) {
	if client == nil {
		return "", nil
	}
	userID, err := client.Get(ctx, authCacheKey(tokenHash)).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read auth cache: %w", err)
	}
	_ = client.Expire(ctx, authCacheKey(tokenHash), AuthCacheTTL).Err()
	return userID, nil
}

// DeleteAuthToken removes a cached token, used on logout.
func DeleteAuthToken(ctx context.Context, client *redis.Client, tokenHash string) error {
	if client == nil {
		return nil
	}
	return client.Del(ctx, authCacheKey(tokenHash)).Err()
}
