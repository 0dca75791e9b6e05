package cache

import (
	"fmt"
	"time"

	"github.com/go-redis/redis/v7"
	"github.com/pkg/errors"
)

// ErrMiss is returned by GetValue when the key does not exist
var ErrMiss = errors.New("cache: key not found")

// Cache redis cache
type Cache struct {
	Client *redis.Client
	TTL    time.Duration
}

// New create new cache
func New(config *Config) *Cache {
	cache := &Cache{TTL: config.TTL}
	cache.Client = redis.NewClient(&redis.Options{
		Addr:     getCacheURL(config),
		Password: config.Password,
		DB:       config.DB,
	})
	return cache
}

// Close cache
func (c *Cache) Close() error {
	return c.Client.Close()
}

// Ping checks the redis connection
func (c *Cache) Ping() error {
	return c.Client.Ping().Err()
}

func getCacheURL(config *Config) string {
	return fmt.Sprintf("%s:%s", config.Host, config.Port)
}

// GetValue - get value string by key
func (c *Cache) GetValue(key string) (string, error) {
	val, err := c.Client.Get(key).Result()
	if err == redis.Nil {
		return "", ErrMiss
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

// SetValue - set value string by key using the configured TTL. A zero TTL
// keeps the key forever.
func (c *Cache) SetValue(key string, val string) error {
	return c.Client.Set(key, val, c.TTL).Err()
}

// DeleteValue - delete value string by key
func (c *Cache) DeleteValue(key string) error {
	return c.Client.Del(key).Err()
}

// DeletePrefix removes every key starting with prefix
func (c *Cache) DeletePrefix(prefix string) error {
	iter := c.Client.Scan(0, prefix+"*", 100).Iterator()
	for iter.Next() {
		if err := c.Client.Del(iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}
