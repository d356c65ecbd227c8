package kvstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis stores each blob as a plain string key.
type Redis struct {
	client *redis.Client
}

// NewRedis wraps an existing client.
func NewRedis(client *redis.Client) *Redis {
	return &Redis{client: client}
}

// DialRedis connects to addr, which may be a bare host:port or a redis:// URL,
// and verifies the connection with a PING.
func DialRedis(ctx context.Context, addr string) (*Redis, error) {
	opt, err := redis.ParseURL(addr)
	if err != nil {
		opt, err = redis.ParseURL(fmt.Sprintf("redis://%s", addr))
		if err != nil {
			opt = &redis.Options{Addr: addr}
		}
	}

	client := redis.NewClient(opt)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return NewRedis(client), nil
}

func (r *Redis) Get(ctx context.Context, key string) ([]byte, error) {
	v, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get %s: %w", key, err)
	}
	return v, nil
}

func (r *Redis) Set(ctx context.Context, key string, value []byte) error {
	if err := r.client.Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

// SetMany writes every value with a single MSET, which Redis applies
// atomically.
func (r *Redis) SetMany(ctx context.Context, values map[string][]byte) error {
	pairs := make([]any, 0, 2*len(values))
	for _, key := range sortedKeys(values) {
		pairs = append(pairs, key, values[key])
	}
	if err := r.client.MSet(ctx, pairs...).Err(); err != nil {
		return fmt.Errorf("mset: %w", err)
	}
	return nil
}

func (r *Redis) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

func (r *Redis) Close() error {
	return r.client.Close()
}
