package redis

import (
	redis_utils "Farol/services/redis/utils"
	"fmt"
)

// CleanupKeys removes the specified keys from Redis
func (rc *RedisClient) CleanupKeys(keys []string) error {
	for _, key := range keys {
		if err := rc.client.Del(rc.ctx, key).Err(); err != nil {
			return fmt.Errorf("failed to cleanup Redis key %s: %v", key, err)
		}
	}
	return nil
}

// CleanupPlayer drops every key belonging to a player
func (rc *RedisClient) CleanupPlayer(username string) error {
	return rc.CleanupKeys([]string{
		redis_utils.FormatRunSessionKey(username),
		redis_utils.FormatPresenceKey(username),
	})
}
