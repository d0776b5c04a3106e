package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"shiftline-backend/shared/config"
)

// CacheManager wraps the redis client used for login rate limiting and the
// report cache. All operations are best effort: a nil manager or a redis
// error never blocks the request path.
type CacheManager struct {
	client *redis.Client
	ctx    context.Context
}

var (
	globalCacheManager *CacheManager

	// ReportTTL bounds how stale the owner report may be.
	ReportTTL = time.Minute
)

// InitCacheManager initializes the global cache manager
func InitCacheManager() error {
	cfg := config.GetConfig()

	redisDB, err := strconv.Atoi(cfg.RedisDB)
	if err != nil {
		log.Printf("❌ Invalid Redis DB number: %s, using default 0", cfg.RedisDB)
		redisDB = 0
	}

	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.RedisHost, cfg.RedisPort),
		Password: cfg.RedisPassword,
		DB:       redisDB,
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("failed to connect to Redis: %v", err)
	}

	globalCacheManager = &CacheManager{
		client: client,
		ctx:    ctx,
	}

	log.Printf("✅ Redis Cache Manager initialized successfully - %s:%s DB:%d",
		cfg.RedisHost, cfg.RedisPort, redisDB)

	return nil
}

// GetCacheManager returns the global cache manager instance, or nil when
// redis is unavailable. Callers treat nil as "no cache".
func GetCacheManager() *CacheManager {
	return globalCacheManager
}

// LoginAttemptKey generates the rate-limit key for a login identity
func LoginAttemptKey(email, ip string) string {
	return fmt.Sprintf("ratelimit:login:%s:%s", email, ip)
}

// ReportKey generates the cache key for an organization report
func ReportKey(orgID string) string {
	return fmt.Sprintf("report:org:%s", orgID)
}

// IncrementWithWindow increments a counter key, starting a TTL window on
// first increment, and returns the new count.
func (cm *CacheManager) IncrementWithWindow(key string, window time.Duration) (int64, error) {
	count, err := cm.client.Incr(cm.ctx, key).Result()
	if err != nil {
		return 0, err
	}
	if count == 1 {
		cm.client.Expire(cm.ctx, key, window)
	}
	return count, nil
}

// Reset removes a counter key
func (cm *CacheManager) Reset(key string) {
	cm.client.Del(cm.ctx, key)
}

// SetJSON stores a JSON-encoded value with a TTL
func (cm *CacheManager) SetJSON(key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return cm.client.Set(cm.ctx, key, data, ttl).Err()
}

// GetJSON loads a JSON-encoded value; found is false on miss
func (cm *CacheManager) GetJSON(key string, dest interface{}) (bool, error) {
	data, err := cm.client.Get(cm.ctx, key).Bytes()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, json.Unmarshal(data, dest)
}
