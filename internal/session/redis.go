package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/idilsaglam/todolists/internal/model"
	"github.com/idilsaglam/todolists/internal/store/jsonstore"
	"github.com/redis/go-redis/v9"
)

// Key schema:
//   todo:session:{id}: string holding the JSON-encoded store, TTL refreshed on save

func sessionKey(id uuid.UUID) string {
	return "todo:session:" + id.String()
}

// NewRedisClient parses a URL such as "redis://localhost:6379/0" and verifies the connection.
func NewRedisClient(ctx context.Context, redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis URL: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}
	return client, nil
}

// RedisRepository keeps sessions in Redis so several server instances can share them.
type RedisRepository struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisRepository(rdb *redis.Client, ttl time.Duration) *RedisRepository {
	return &RedisRepository{rdb: rdb, ttl: ttl}
}

func (r *RedisRepository) Load(ctx context.Context, id uuid.UUID) (model.Store, error) {
	b, err := r.rdb.Get(ctx, sessionKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return emptyStore(), nil
	}
	if err != nil {
		return model.Store{}, fmt.Errorf("failed to load session: %w", err)
	}
	s, err := jsonstore.Decode(b)
	if err != nil {
		return model.Store{}, fmt.Errorf("failed to decode session: %w", err)
	}
	return s, nil
}

func (r *RedisRepository) Save(ctx context.Context, id uuid.UUID, s model.Store) error {
	b, err := jsonstore.Encode(s)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	if err := r.rdb.Set(ctx, sessionKey(id), b, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

func (r *RedisRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.rdb.Del(ctx, sessionKey(id)).Err(); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

func (r *RedisRepository) Ping(ctx context.Context) error {
	if err := r.rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping: %w", err)
	}
	return nil
}
