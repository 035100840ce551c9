package cache

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

// ConnectRedis parses REDIS_URL and checks the connection before returning.
func ConnectRedis(ctx context.Context, redisURL string) (*redis.Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}
	client := redis.NewClient(opt)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	log.Printf("[cache] redis connected addr=%s db=%d", opt.Addr, opt.DB)
	return client, nil
}

// windowScript counts hits in the current fixed window and records the new
// hit only while under the limit. Returns {allowed, remaining}.
const windowScript = `
local key = KEYS[1]
local window_start = tonumber(ARGV[1])
local limit = tonumber(ARGV[2])
local member = ARGV[3]
local ttl = tonumber(ARGV[4])

redis.call('ZREMRANGEBYSCORE', key, 0, window_start - 1)
local count = redis.call('ZCARD', key)
if count < limit then
	redis.call('ZADD', key, window_start, member)
	redis.call('EXPIRE', key, ttl)
	return {1, limit - count - 1}
end
return {0, 0}
`

// WindowCounter is a fixed-window request counter stored in a Redis sorted
// set per key.
type WindowCounter struct {
	client *redis.Client
	script *redis.Script
	now    func() time.Time
}

func NewWindowCounter(client *redis.Client) *WindowCounter {
	return &WindowCounter{client: client, script: redis.NewScript(windowScript), now: time.Now}
}

func (w *WindowCounter) Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, int, time.Time, error) {
	now := w.now()
	start := now.Truncate(window)
	reset := start.Add(window)
	ttl := int64(window/time.Second) + 1
	member := fmt.Sprintf("%d-%s", now.UnixNano(), uuid.NewString())

	res, err := w.script.Run(ctx, w.client, []string{key}, start.Unix(), limit, member, ttl).Result()
	if err != nil {
		return false, 0, time.Time{}, err
	}
	allowed, remaining, err := parseWindowResult(res)
	if err != nil {
		return false, 0, time.Time{}, err
	}
	return allowed, remaining, reset, nil
}

func (w *WindowCounter) Close() error {
	return w.client.Close()
}

func parseWindowResult(res any) (bool, int, error) {
	values, ok := res.([]interface{})
	if !ok || len(values) != 2 {
		return false, 0, fmt.Errorf("unexpected redis result %v", res)
	}
	allowed, ok1 := values[0].(int64)
	remaining, ok2 := values[1].(int64)
	if !ok1 || !ok2 {
		return false, 0, fmt.Errorf("unexpected redis result types %T %T", values[0], values[1])
	}
	return allowed == 1, int(remaining), nil
}
