// Package apptest provides an in-memory board store and controller for tests
// of packages built on app.Controller.
package apptest

import (
	"context"
	"sync"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"

	"tableflip.dev/lanes/pkg/app"
	"tableflip.dev/lanes/pkg/board"
	"tableflip.dev/lanes/pkg/store"
)

// Memory is a store.Gateway that keeps the board in memory.
type Memory struct {
	mu      sync.Mutex
	Stored  *board.Board
	SaveErr error
	Saves   int
}

func (m *Memory) Load(context.Context) (board.Board, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Stored == nil {
		return board.Board{}, store.ErrNotFound
	}
	return *m.Stored, nil
}

func (m *Memory) Save(_ context.Context, b board.Board) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Saves++
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Stored = &b
	return nil
}

// NewController returns a controller over a fresh Memory holding the seed
// board for the default layout.
func NewController(t testing.TB) (*app.Controller, *Memory) {
	t.Helper()
	mem := &Memory{}
	l, _ := test.NewNullLogger()
	c, err := app.New(context.Background(), mem, board.DefaultLayout(), app.WithLogger(l))
	if err != nil {
		t.Fatalf("app.New: %v", err)
	}
	return c, mem
}
