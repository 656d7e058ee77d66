package store

import (
	"context"
	"errors"
	"os"
	"reflect"
	"testing"

	"tableflip.dev/lanes/pkg/board"
)

func TestDiskLoadMissing(t *testing.T) {
	p, err := NewDisk(t.TempDir(), "", board.DefaultLayout())
	if err != nil {
		t.Fatalf("new disk: %v", err)
	}
	if _, err := p.Load(context.Background()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDiskSaveLoad(t *testing.T) {
	ctx := context.Background()
	layout := board.DefaultLayout()
	p, err := NewDisk(t.TempDir(), "todos", layout)
	if err != nil {
		t.Fatalf("new disk: %v", err)
	}
	in, _ := board.Add(board.Seed(layout), board.AddRequest{Title: "write tests"})
	if err := p.Save(ctx, in); err != nil {
		t.Fatalf("save: %v", err)
	}
	out, err := p.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !reflect.DeepEqual(out, in) {
		t.Fatalf("expected %+v, got %+v", in, out)
	}

	// A second handle on the same directory sees the write.
	other, err := NewDisk(p.basePath, "todos", layout)
	if err != nil {
		t.Fatalf("new disk: %v", err)
	}
	if got, err := other.Load(ctx); err != nil || got.Count() != 4 {
		t.Fatalf("expected 4 items from second handle, got %d (%v)", got.Count(), err)
	}
}

func TestDiskLoadCorrupt(t *testing.T) {
	p, err := NewDisk(t.TempDir(), "todos", board.DefaultLayout())
	if err != nil {
		t.Fatalf("new disk: %v", err)
	}
	if err := os.WriteFile(p.Path(), []byte(`[{"todoStatus":"Someday","items":[]}]`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := p.Load(context.Background()); !errors.Is(err, ErrCorrupt) {
		t.Fatalf("expected ErrCorrupt, got %v", err)
	}
}

type testConfig struct {
	path    string
	backend string
}

func (c testConfig) BasePath() string     { return c.path }
func (c testConfig) Key() string          { return DefaultKey }
func (c testConfig) Backend() string      { return c.backend }
func (c testConfig) Redis() RedisOptions  { return RedisOptions{Addr: "127.0.0.1:0"} }
func (c testConfig) Layout() board.Layout { return board.DefaultLayout() }
func (c testConfig) LogLevel() string     { return "" }

func TestOpenSelectsBackend(t *testing.T) {
	gw, err := Open(testConfig{path: t.TempDir(), backend: BackendDisk})
	if err != nil {
		t.Fatalf("open disk: %v", err)
	}
	if _, ok := gw.(*Disk); !ok {
		t.Fatalf("expected *Disk, got %T", gw)
	}

	gw, err = Open(testConfig{backend: BackendRedis})
	if err != nil {
		t.Fatalf("open redis: %v", err)
	}
	r, ok := gw.(*Redis)
	if !ok {
		t.Fatalf("expected *Redis, got %T", gw)
	}
	_ = r.Close()

	if _, err := Open(testConfig{backend: "s3"}); err == nil {
		t.Fatalf("expected unknown backend error")
	}
}
