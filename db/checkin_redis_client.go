package db

import (
	"context"
	"fmt"

	"checkin-forecast/logger"

	"github.com/go-redis/redis/v8"
)

// pushBatchSize caps the number of values sent in a single RPUSH.
const pushBatchSize = 1000

// CheckInRedisClient wraps a go-redis client with a fixed context.
type CheckInRedisClient struct {
	client *redis.Client
	ctx    context.Context
}

// NewCheckInRedisClient wraps client. Connectivity is checked by Ping.
func NewCheckInRedisClient(ctx context.Context, client *redis.Client) *CheckInRedisClient {
	return &CheckInRedisClient{
		client: client,
		ctx:    ctx,
	}
}

// RPush appends values to the list at key, in order.
func (r *CheckInRedisClient) RPush(key string, values ...string) error {
	for start := 0; start < len(values); start += pushBatchSize {
		end := start + pushBatchSize
		if end > len(values) {
			end = len(values)
		}
		batch := make([]interface{}, 0, end-start)
		for _, v := range values[start:end] {
			batch = append(batch, v)
		}
		if err := r.client.RPush(r.ctx, key, batch...).Err(); err != nil {
			return fmt.Errorf("failed to push to %s: %w", key, err)
		}
	}
	logger.Component("CheckInRedisClient").Debug().Str("key", key).Int("values", len(values)).Msg("pushed values")
	return nil
}

// LRange returns the list elements between start and stop, inclusive.
func (r *CheckInRedisClient) LRange(key string, start, stop int64) ([]string, error) {
	return r.client.LRange(r.ctx, key, start, stop).Result()
}

func (r *CheckInRedisClient) LLen(key string) (int64, error) {
	return r.client.LLen(r.ctx, key).Result()
}

func (r *CheckInRedisClient) Keys(pattern string) ([]string, error) {
	return r.client.Keys(r.ctx, pattern).Result()
}

func (r *CheckInRedisClient) Del(key string) error {
	return r.client.Del(r.ctx, key).Err()
}

func (r *CheckInRedisClient) Ping() error {
	_, err := r.client.Ping(r.ctx).Result()
	return err
}
