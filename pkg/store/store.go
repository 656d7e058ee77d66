// Package store persists a board as a single serialized blob under a fixed
// key, on disk (diskv) or in redis.
package store

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/lanes/pkg/board"
)

var (
	// ErrNotFound means nothing has been stored under the key yet.
	ErrNotFound = errors.New("store: board not found")
	// ErrCorrupt means a stored value exists but is not a usable board.
	ErrCorrupt = errors.New("store: stored board is corrupt")
)

// Gateway loads and saves the whole board.
type Gateway interface {
	Load(ctx context.Context) (board.Board, error)
	Save(ctx context.Context, b board.Board) error
}

// Watcher is implemented by gateways that can report changes written by
// other processes.
type Watcher interface {
	Watch(ctx context.Context) (<-chan Event, error)
}

// Event reports that the stored board under Key changed.
type Event struct {
	Key string
}

// Open returns the gateway selected by cfg. If cfg is nil it is loaded with
// LoadConfig.
func Open(cfg Config) (Gateway, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}
	switch b := cfg.Backend(); b {
	case BackendDisk:
		d, err := NewDisk(cfg.BasePath(), cfg.Key(), cfg.Layout())
		if err != nil {
			return nil, err
		}
		return d, nil
	case BackendRedis:
		return NewRedis(cfg.Redis(), cfg.Key(), cfg.Layout()), nil
	default:
		return nil, fmt.Errorf("store: unknown backend %q (expected %s or %s)", b, BackendDisk, BackendRedis)
	}
}
