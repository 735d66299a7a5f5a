package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore handles interactions with Redis: the translation cache and the
// re-scrape markers.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(addr string) *RedisStore {
	rdb := redis.NewClient(&redis.Options{Addr: addr})
	return &RedisStore{client: rdb}
}

func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Get looks up a cached translation. Any Redis error counts as a miss.
func (s *RedisStore) Get(ctx context.Context, text string) (string, bool) {
	key := fmt.Sprintf("translation:ko:%s", text)
	val, err := s.client.Get(ctx, key).Result()
	if err != nil {
		return "", false
	}
	return val, true
}

// Set stores a translation. Translations don't go stale, so no TTL.
func (s *RedisStore) Set(ctx context.Context, text, translated string) {
	key := fmt.Sprintf("translation:ko:%s", text)
	s.client.Set(ctx, key, translated, 0)
}

// MarkScraped sets a key with a TTL to prevent re-scraping a category.
func (s *RedisStore) MarkScraped(ctx context.Context, category string, ttl time.Duration) error {
	key := fmt.Sprintf("scraped:%s", category)
	return s.client.Set(ctx, key, "1", ttl).Err()
}

// IsRecentlyScraped checks if a category was scraped within the TTL window.
func (s *RedisStore) IsRecentlyScraped(ctx context.Context, category string) (bool, error) {
	key := fmt.Sprintf("scraped:%s", category)
	val, err := s.client.Exists(ctx, key).Result()
	if err != nil {
		return false, err
	}
	return val == 1, nil
}
