package store

import (
	"context"
	"testing"
	"time"

	"tableflip.dev/lanes/pkg/board"
)

func TestDiskWatchEmitsBoardChanges(t *testing.T) {
	layout := board.DefaultLayout()
	p, err := NewDisk(t.TempDir(), "todos", layout)
	if err != nil {
		t.Fatalf("new disk: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := p.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}

	// Allow watcher goroutine to subscribe before writing.
	time.Sleep(50 * time.Millisecond)

	writer, err := NewDisk(p.basePath, "todos", layout)
	if err != nil {
		t.Fatalf("new disk: %v", err)
	}
	if err := writer.Save(ctx, board.Seed(layout)); err != nil {
		t.Fatalf("save: %v", err)
	}

	select {
	case evt := <-ch:
		if evt.Key != "todos" {
			t.Fatalf("expected key todos, got %q", evt.Key)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for board change event")
	}
}

func TestDiskWatchClosesOnCancel(t *testing.T) {
	p, err := NewDisk(t.TempDir(), "todos", board.DefaultLayout())
	if err != nil {
		t.Fatalf("new disk: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	ch, err := p.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}
	cancel()
	select {
	case _, ok := <-ch:
		if ok {
			// drain a stray event, then expect close
			<-ch
		}
	case <-time.After(2 * time.Second):
		t.Fatal("watch channel not closed after cancel")
	}
}
