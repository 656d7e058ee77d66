package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"tableflip.dev/lanes/pkg/board"
)

// Redis stores the board blob under "<prefix>:<key>".
type Redis struct {
	client *redis.Client
	key    string
	layout board.Layout
}

// NewRedis connects lazily to the server described by opts.
func NewRedis(opts RedisOptions, key string, layout board.Layout) *Redis {
	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})
	return NewRedisClient(client, opts.Prefix, key, layout)
}

// NewRedisClient wraps an existing client.
func NewRedisClient(client *redis.Client, prefix, key string, layout board.Layout) *Redis {
	if key == "" {
		key = DefaultKey
	}
	if prefix != "" {
		key = prefix + ":" + key
	}
	return &Redis{client: client, key: key, layout: layout}
}

func (r *Redis) Load(ctx context.Context) (board.Board, error) {
	data, err := r.client.Get(ctx, r.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return board.Board{}, ErrNotFound
		}
		return board.Board{}, fmt.Errorf("store: redis get %s: %w", r.key, err)
	}
	return Decode(data, r.layout)
}

func (r *Redis) Save(ctx context.Context, b board.Board) error {
	data, err := Encode(b)
	if err != nil {
		return err
	}
	if err := r.client.Set(ctx, r.key, data, 0).Err(); err != nil {
		return fmt.Errorf("store: redis set %s: %w", r.key, err)
	}
	return nil
}

// Key is the full redis key the board lives under.
func (r *Redis) Key() string { return r.key }

func (r *Redis) Close() error {
	return r.client.Close()
}
