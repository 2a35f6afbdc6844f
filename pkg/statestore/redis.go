package statestore

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	snaperrors "github.com/snapdeck/snapdeck/pkg/errors"
)

// DefaultRedisTTL bounds how long a position survives without being
// refreshed. Positions are tiny; expiring them just keeps abandoned decks
// from accumulating.
const DefaultRedisTTL = 30 * 24 * time.Hour

// RedisConfig configures a Redis-backed store.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int

	// TTL per position; DefaultRedisTTL when zero.
	TTL time.Duration
}

// RedisStore persists positions in Redis, for setups where several hosts
// drive or observe the same deck (for example the HTTP control surface).
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore connects to Redis and verifies the connection with a ping.
func NewRedisStore(ctx context.Context, cfg RedisConfig) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, snaperrors.Wrap(snaperrors.ErrCodeStore, err, "connecting to redis at %s", cfg.Addr)
	}

	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = DefaultRedisTTL
	}
	return &RedisStore{client: client, ttl: ttl}, nil
}

// Get retrieves the stored position for a deck.
func (s *RedisStore) Get(ctx context.Context, deck string) (Position, error) {
	data, err := s.client.Get(ctx, redisKey(deck)).Bytes()
	if errors.Is(err, redis.Nil) {
		return Position{}, ErrNotFound
	}
	if err != nil {
		return Position{}, snaperrors.Wrap(snaperrors.ErrCodeStore, err, "reading position for %s", deck)
	}

	var pos Position
	if err := json.Unmarshal(data, &pos); err != nil {
		return Position{}, snaperrors.Wrap(snaperrors.ErrCodeStore, err, "decoding position for %s", deck)
	}
	return pos, nil
}

// Set stores a position with the configured TTL.
func (s *RedisStore) Set(ctx context.Context, pos Position) error {
	data, err := json.Marshal(pos)
	if err != nil {
		return snaperrors.Wrap(snaperrors.ErrCodeStore, err, "encoding position for %s", pos.Deck)
	}
	if err := s.client.Set(ctx, redisKey(pos.Deck), data, s.ttl).Err(); err != nil {
		return snaperrors.Wrap(snaperrors.ErrCodeStore, err, "writing position for %s", pos.Deck)
	}
	return nil
}

// Delete removes a stored position.
func (s *RedisStore) Delete(ctx context.Context, deck string) error {
	if err := s.client.Del(ctx, redisKey(deck)).Err(); err != nil {
		return snaperrors.Wrap(snaperrors.ErrCodeStore, err, "deleting position for %s", deck)
	}
	return nil
}

// Close releases the Redis connection.
func (s *RedisStore) Close() error {
	return s.client.Close()
}

func redisKey(deck string) string {
	return "snapdeck:position:" + deck
}

// Ensure RedisStore implements Store.
var _ Store = (*RedisStore)(nil)
