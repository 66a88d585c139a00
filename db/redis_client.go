package db

// RedisClient defines the methods the check-in store needs from Redis.
type RedisClient interface {
	RPush(key string, values ...string) error
	LRange(key string, start, stop int64) ([]string, error)
	LLen(key string) (int64, error)
	Ping() error
	Keys(pattern string) ([]string, error)
	Del(key string) error
}
