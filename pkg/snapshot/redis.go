package snapshot

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "mathboard:snapshot:"

// RedisConfig configures a Redis-backed snapshot store.
type RedisConfig struct {
	// Addr is the host:port of the Redis server.
	Addr string

	// TTL bounds how long a stored snapshot lives. Zero means no
	// expiry.
	TTL time.Duration
}

// RedisStore keeps snapshots in Redis, one key per name. Entries expire
// after the configured TTL, which suits autosave retention.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore connects to Redis and verifies the connection with a
// ping before returning the store.
func NewRedisStore(ctx context.Context, cfg RedisConfig) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{Addr: cfg.Addr})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("connect to redis at %s: %w", cfg.Addr, err)
	}
	return &RedisStore{client: client, ttl: cfg.TTL}, nil
}

// Close releases the underlying connection pool.
func (s *RedisStore) Close() error { return s.client.Close() }

func redisKey(name string) string { return redisKeyPrefix + name }

func (s *RedisStore) Put(ctx context.Context, name string, snap *Snapshot) error {
	data, err := Marshal(snap)
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, redisKey(name), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("store snapshot %s: %w", name, err)
	}
	return nil
}

func (s *RedisStore) Get(ctx context.Context, name string) (*Snapshot, error) {
	data, err := s.client.Get(ctx, redisKey(name)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSnapshotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("fetch snapshot %s: %w", name, err)
	}
	return Unmarshal(data)
}

func (s *RedisStore) Delete(ctx context.Context, name string) error {
	n, err := s.client.Del(ctx, redisKey(name)).Result()
	if err != nil {
		return fmt.Errorf("delete snapshot %s: %w", name, err)
	}
	if n == 0 {
		return ErrSnapshotNotFound
	}
	return nil
}

func (s *RedisStore) List(ctx context.Context) ([]string, error) {
	var names []string
	iter := s.client.Scan(ctx, 0, redisKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		names = append(names, strings.TrimPrefix(iter.Val(), redisKeyPrefix))
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("list snapshots: %w", err)
	}
	sort.Strings(names)
	return names, nil
}
