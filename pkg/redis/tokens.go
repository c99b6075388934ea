package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	redisclient "github.com/redis/go-redis/v9"
)

const adminTokenTTL = 12 * time.Hour

// StoreAdminToken records a freshly issued admin session token.
func StoreAdminToken(ctx context.Context, token, email string) error {
	client := RedisClient()
	defer client.Close()

	key := fmt.Sprintf("admin_token:%s", token)
	if err := client.Set(ctx, key, email, adminTokenTTL).Err(); err != nil {
		return fmt.Errorf("failed to store admin token: %w", err)
	}
	return nil
}

// CheckAdminToken returns the admin email behind a token, or "" when the
// token is unknown or expired.
func CheckAdminToken(ctx context.Context, token string) (string, error) {
	client := RedisClient()
	defer client.Close()

	key := fmt.Sprintf("admin_token:%s", token)
	email, err := client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redisclient.Nil) {
			return "", nil
		}
		return "", err
	}
	return email, nil
}

// DeleteAdminToken revokes a token on logout.
func DeleteAdminToken(ctx context.Context, token string) error {
	client := RedisClient()
	defer client.Close()

	key := fmt.Sprintf("admin_token:%s", token)
	return client.Del(ctx, key).Err()
}
