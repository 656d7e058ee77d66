// Package app owns the current board. It applies intents from the CLI, the
// TUI and the MCP server through a single entry point, writes every change
// through to the store and republishes the new board to subscribers.
package app

import (
	"context"
	"errors"
	"reflect"
	"sync"

	log "github.com/sirupsen/logrus"

	"tableflip.dev/lanes/pkg/board"
	"tableflip.dev/lanes/pkg/store"
)

// Controller holds the authoritative in-memory board.
type Controller struct {
	gateway store.Gateway
	layout  board.Layout
	log     log.FieldLogger

	mu    sync.Mutex
	state board.Board
	// dirty is set while the in-memory board holds a change the store
	// rejected; the store is not re-read until a save succeeds.
	dirty bool

	// pubMu is taken before mu is released so subscribers see boards in
	// the order they were adopted.
	pubMu sync.Mutex

	subMu  sync.Mutex
	nextID int
	subs   map[int]func(board.Board)
}

// Option customises a Controller.
type Option func(*Controller)

// WithLogger routes controller logging to l.
func WithLogger(l log.FieldLogger) Option {
	return func(c *Controller) { c.log = l }
}

// New builds a controller whose board comes from gw, or from the seed board
// when nothing usable is stored.
func New(ctx context.Context, gw store.Gateway, layout board.Layout, opts ...Option) (*Controller, error) {
	if gw == nil {
		return nil, errors.New("app: no store configured")
	}
	if err := layout.Validate(); err != nil {
		return nil, err
	}
	c := &Controller{
		gateway: gw,
		layout:  layout,
		log:     log.StandardLogger(),
		subs:    make(map[int]func(board.Board)),
	}
	for _, o := range opts {
		o(c)
	}
	c.state = c.load(ctx)
	return c, nil
}

// load never fails: anything unusable falls back to the seed board.
func (c *Controller) load(ctx context.Context) board.Board {
	b, err := c.gateway.Load(ctx)
	switch {
	case errors.Is(err, store.ErrNotFound):
		c.log.Debug("app: no stored board, starting from seed")
		return board.Seed(c.layout)
	case errors.Is(err, store.ErrCorrupt):
		c.log.WithError(err).Warn("app: discarding stored board, starting from seed")
		return board.Seed(c.layout)
	case err != nil:
		c.log.WithError(err).Warn("app: could not read stored board, starting from seed")
		return board.Seed(c.layout)
	}
	if err := b.Validate(c.layout); err != nil {
		c.log.WithError(err).Warn("app: stored board does not match configured lanes, starting from seed")
		return board.Seed(c.layout)
	}
	return b
}

// Layout returns the configured lanes.
func (c *Controller) Layout() board.Layout {
	return append(board.Layout(nil), c.layout...)
}

// State returns a snapshot of the current board. The snapshot is never
// written to by the controller.
func (c *Controller) State() board.Board {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Apply re-reads the stored board, runs op against it, adopts the result,
// persists it and publishes it. Re-reading first keeps writes made by other
// lanes processes. When the write fails the new board is still adopted and
// published and a *SaveError is returned alongside it.
func (c *Controller) Apply(ctx context.Context, op board.Operation) (board.Board, error) {
	c.mu.Lock()
	if _, err := c.refreshLocked(ctx); err != nil && !errors.Is(err, store.ErrNotFound) {
		c.log.WithError(err).Warn("app: could not re-read stored board, applying to in-memory copy")
	}
	next := op.Apply(c.state)
	c.state = next
	err := c.gateway.Save(ctx, next)
	c.dirty = err != nil
	c.pubMu.Lock()
	c.mu.Unlock()
	defer c.pubMu.Unlock()

	if err != nil {
		c.log.WithError(err).Warn("app: board not saved, keeping in-memory copy")
		err = &SaveError{Err: err}
	}
	c.publish(next)
	return next, err
}

// refreshLocked adopts the stored board unless the in-memory board has
// unsaved changes. Callers hold c.mu.
func (c *Controller) refreshLocked(ctx context.Context) (bool, error) {
	if c.dirty {
		return false, nil
	}
	b, err := c.gateway.Load(ctx)
	if err != nil {
		return false, err
	}
	if err := b.Validate(c.layout); err != nil {
		return false, err
	}
	if reflect.DeepEqual(b, c.state) {
		return false, nil
	}
	c.state = b
	return true, nil
}

// Move applies a move intent.
func (c *Controller) Move(ctx context.Context, r board.MoveRequest) (board.Board, error) {
	return c.Apply(ctx, r)
}

// EditField applies a field edit intent.
func (c *Controller) EditField(ctx context.Context, r board.EditRequest) (board.Board, error) {
	return c.Apply(ctx, r)
}

// AddItem creates an item in the intake lane and returns it.
func (c *Controller) AddItem(ctx context.Context, title, description string) (board.Board, board.Item, error) {
	var created board.Item
	b, err := c.Apply(ctx, addOp{req: board.AddRequest{Title: title, Description: description}, out: &created})
	return b, created, err
}

// addOp captures the item produced by board.Add while still going through
// Apply.
type addOp struct {
	req board.AddRequest
	out *board.Item
}

func (o addOp) Apply(b board.Board) board.Board {
	next, it := board.Add(b, o.req)
	*o.out = it
	return next
}

// Search looks up the first matching item. It neither mutates nor persists.
func (c *Controller) Search(query string) (board.Item, bool) {
	return board.Search(c.State(), query)
}

// Find returns the item with id.
func (c *Controller) Find(id string) (board.Item, bool) {
	return c.State().Find(id)
}

// Reload replaces the in-memory board with what the store holds, e.g. after
// another process wrote it. A missing or corrupt value leaves the current
// board in place.
func (c *Controller) Reload(ctx context.Context) error {
	c.mu.Lock()
	b, err := c.gateway.Load(ctx)
	if err == nil {
		err = b.Validate(c.layout)
	}
	if err != nil {
		c.mu.Unlock()
		return err
	}
	c.state = b
	c.dirty = false
	c.pubMu.Lock()
	c.mu.Unlock()
	defer c.pubMu.Unlock()

	c.publish(b)
	return nil
}

// Sync adopts the stored board if another process changed it, publishing it
// when it differs. Use it before serving reads in long-lived processes that
// have no change feed. A missing board is not an error.
func (c *Controller) Sync(ctx context.Context) error {
	c.mu.Lock()
	changed, err := c.refreshLocked(ctx)
	if err != nil || !changed {
		c.mu.Unlock()
		if errors.Is(err, store.ErrNotFound) {
			return nil
		}
		return err
	}
	b := c.state
	c.pubMu.Lock()
	c.mu.Unlock()
	defer c.pubMu.Unlock()

	c.publish(b)
	return nil
}

// Follow reloads the board whenever w reports a change, until ctx is done.
func (c *Controller) Follow(ctx context.Context, w store.Watcher) error {
	events, err := w.Watch(ctx)
	if err != nil {
		return err
	}
	go func() {
		for range events {
			if err := c.Reload(ctx); err != nil {
				c.log.WithError(err).Warn("app: could not reload board")
			}
		}
	}()
	return nil
}

// Subscribe registers fn to receive every new board, in the order boards
// are adopted. The returned func removes the subscription.
func (c *Controller) Subscribe(fn func(board.Board)) func() {
	c.subMu.Lock()
	id := c.nextID
	c.nextID++
	c.subs[id] = fn
	c.subMu.Unlock()
	return func() {
		c.subMu.Lock()
		delete(c.subs, id)
		c.subMu.Unlock()
	}
}

func (c *Controller) publish(b board.Board) {
	c.subMu.Lock()
	fns := make([]func(board.Board), 0, len(c.subs))
	for _, fn := range c.subs {
		fns = append(fns, fn)
	}
	c.subMu.Unlock()
	for _, fn := range fns {
		fn(b)
	}
}
