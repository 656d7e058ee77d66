package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/lanes/pkg/board"
)

const tempDirName = ".tmp"

// Disk stores the board as one file under BasePath.
type Disk struct {
	d        *diskv.Diskv
	basePath string
	key      string
	layout   board.Layout
}

// NewDisk opens a diskv store rooted at basePath.
func NewDisk(basePath, key string, layout board.Layout) (*Disk, error) {
	if basePath == "" {
		return nil, errors.New("store: base path required")
	}
	if key == "" {
		key = DefaultKey
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}
	return &Disk{
		d: diskv.New(diskv.Options{
			BasePath: basePath,
			TempDir:  filepath.Join(basePath, tempDirName),
			// No read cache: other lanes processes write the same file.
			CacheSizeMax: 0,
		}),
		basePath: basePath,
		key:      key,
		layout:   layout,
	}, nil
}

func (p *Disk) Load(_ context.Context) (board.Board, error) {
	if !p.d.Has(p.key) {
		return board.Board{}, ErrNotFound
	}
	val, err := p.d.Read(p.key)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return board.Board{}, ErrNotFound
		}
		return board.Board{}, fmt.Errorf("store: read %s: %w", p.key, err)
	}
	return Decode(val, p.layout)
}

func (p *Disk) Save(_ context.Context, b board.Board) error {
	data, err := Encode(b)
	if err != nil {
		return err
	}
	if err := p.d.Write(p.key, data); err != nil {
		return fmt.Errorf("store: write %s: %w", p.key, err)
	}
	return nil
}

// Path is the file the board is written to.
func (p *Disk) Path() string {
	return filepath.Join(p.basePath, p.key)
}
