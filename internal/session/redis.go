package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"restaurant-bot/internal/model"
)

const (
	DriverRedis = "redis"

	defaultRedisPrefix = "restaurant-bot:session:"
)

// RedisConfig holds the Redis session store settings.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	Prefix   string
}

// RedisStore keeps sessions as JSON values in Redis so several API replicas
// share conversation state. Every write refreshes the ttl.
type RedisStore struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedisStore connects to Redis and pings it.
func NewRedisStore(ctx context.Context, cfg RedisConfig, ttl time.Duration) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return newRedisStore(client, cfg.Prefix, ttl), nil
}

func newRedisStore(client *redis.Client, prefix string, ttl time.Duration) *RedisStore {
	if prefix == "" {
		prefix = defaultRedisPrefix
	}
	return &RedisStore{client: client, prefix: prefix, ttl: ttl}
}

func (s *RedisStore) key(clientID string) string {
	return s.prefix + clientID
}

func (s *RedisStore) Get(ctx context.Context, clientID string) (model.Session, error) {
	if clientID == "" {
		return model.Session{}, ErrEmptyClientID
	}

	b, err := s.client.Get(ctx, s.key(clientID)).Bytes()
	if err == nil {
		return decode(b)
	}
	if !errors.Is(err, redis.Nil) {
		return model.Session{}, fmt.Errorf("redis get: %w", err)
	}

	fresh := model.NewSession(clientID)
	raw, err := json.Marshal(fresh)
	if err != nil {
		return model.Session{}, err
	}
	created, err := s.client.SetNX(ctx, s.key(clientID), raw, s.ttl).Result()
	if err != nil {
		return model.Session{}, fmt.Errorf("redis setnx: %w", err)
	}
	if created {
		sessionsCreated.WithLabelValues(DriverRedis).Inc()
		return fresh, nil
	}

	// Another replica created it first.
	b, err = s.client.Get(ctx, s.key(clientID)).Bytes()
	if err != nil {
		return model.Session{}, fmt.Errorf("redis get: %w", err)
	}
	return decode(b)
}

func (s *RedisStore) Save(ctx context.Context, sess model.Session) error {
	if sess.ClientID == "" {
		return ErrEmptyClientID
	}
	raw, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, s.key(sess.ClientID), raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, clientID string) error {
	if err := s.client.Del(ctx, s.key(clientID)).Err(); err != nil {
		return fmt.Errorf("redis delete: %w", err)
	}
	return nil
}

// Ping checks the connection.
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close closes the Redis connection.
func (s *RedisStore) Close() error {
	return s.client.Close()
}

func decode(b []byte) (model.Session, error) {
	var sess model.Session
	if err := json.Unmarshal(b, &sess); err != nil {
		return model.Session{}, fmt.Errorf("decode session: %w", err)
	}
	return sess, nil
}
