package redis

import (
	redis_models "Farol/models/redis"
	redis_utils "Farol/services/redis/utils"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// Live sessions outlive socket drops by this much so players can reconnect
// into their run.
const runSessionTTL = 24 * time.Hour

// RedisClient handles Redis operations
type RedisClient struct {
	client *redis.Client
	ctx    context.Context
}

// NewRedisClient creates a new Redis client instance
func NewRedisClient(Addr string, DB int) *RedisClient {
	var client *redis.Client
	if Addr != "localhost:6379" {
		log.Println("Connecting to remote Redis...")
		opt, err := redis.ParseURL(Addr)
		if err != nil {
			panic("Error parsing Redis URL")
		}
		client = redis.NewClient(opt)
	} else {
		client = redis.NewClient(&redis.Options{
			Addr: Addr,
			DB:   DB,
		})
	}
	return &RedisClient{
		client: client,
		ctx:    context.Background(),
	}
}

// SaveRunSession stores a player's live run in Redis
// Key format: "player:{username}:run"
// TTL: 24 hours
func (rc *RedisClient) SaveRunSession(session *redis_models.RunSession) error {
	key := redis_utils.FormatRunSessionKey(session.Username)
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("error marshaling run session: %v", err)
	}
	return rc.client.Set(rc.ctx, key, data, runSessionTTL).Err()
}

// GetRunSession retrieves a player's live run from Redis
// Key format: "player:{username}:run"
// Returns: RunSession struct, or nil when the player has no live run
func (rc *RedisClient) GetRunSession(username string) (*redis_models.RunSession, error) {
	key := redis_utils.FormatRunSessionKey(username)
	data, err := rc.client.Get(rc.ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("error getting run session: %v", err)
	}

	var session redis_models.RunSession
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("error unmarshaling run session: %v", err)
	}
	return &session, nil
}

// DeleteRunSession removes a player's live run from Redis
// Key format: "player:{username}:run"
func (rc *RedisClient) DeleteRunSession(username string) error {
	key := redis_utils.FormatRunSessionKey(username)
	if err := rc.client.Del(rc.ctx, key).Err(); err != nil {
		return fmt.Errorf("error deleting run session: %v", err)
	}
	return nil
}

// SavePresence stores a player's connection status
// Key format: "player:{username}:presence"
// TTL: 24 hours
func (rc *RedisClient) SavePresence(presence *redis_models.PlayerPresence) error {
	key := redis_utils.FormatPresenceKey(presence.Username)
	data, err := json.Marshal(presence)
	if err != nil {
		return fmt.Errorf("error marshaling presence: %v", err)
	}
	return rc.client.Set(rc.ctx, key, data, runSessionTTL).Err()
}

// GetPresence retrieves a player's connection status, nil if unknown
// Key format: "player:{username}:presence"
func (rc *RedisClient) GetPresence(username string) (*redis_models.PlayerPresence, error) {
	key := redis_utils.FormatPresenceKey(username)
	data, err := rc.client.Get(rc.ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("error getting presence: %v", err)
	}

	var presence redis_models.PlayerPresence
	if err := json.Unmarshal(data, &presence); err != nil {
		return nil, fmt.Errorf("error unmarshaling presence: %v", err)
	}
	return &presence, nil
}

// MarkOffline flips a player's presence to offline without touching the run
// session, so the run survives the disconnect.
func (rc *RedisClient) MarkOffline(username string) error {
	presence, err := rc.GetPresence(username)
	if err != nil {
		return err
	}
	if presence == nil {
		return nil
	}
	presence.Status = redis_models.StatusOffline
	presence.SocketID = ""
	return rc.SavePresence(presence)
}
