package commands

import (
	"strings"
	"testing"

	"tableflip.dev/lanes/pkg/board"
)

func TestCompleteItemsByIDPrefix(t *testing.T) {
	b := board.Seed(board.DefaultLayout())
	for i := 0; i < 9; i++ {
		b, _ = board.Add(b, board.AddRequest{Title: "extra"})
	}

	got := completeItems(b, "1")
	if len(got) != 4 {
		t.Fatalf("expected ids 1, 10, 11, 12, got %v", got)
	}
	if !strings.HasPrefix(got[0], "1\tTo Do: ") {
		t.Fatalf("expected id and description, got %q", got[0])
	}
}

func TestCompleteItemsFallsBackToSearch(t *testing.T) {
	b := board.Seed(board.DefaultLayout())
	got := completeItems(b, "coffee")
	if len(got) != 1 || !strings.HasPrefix(got[0], "3\t") {
		t.Fatalf("expected item 3 from search, got %v", got)
	}
}

func TestCompleteLanes(t *testing.T) {
	got := completeLanes(board.DefaultLayout(), "in")
	if len(got) != 1 || got[0] != "In Progress" {
		t.Fatalf("expected In Progress, got %v", got)
	}
	if got := completeLanes(board.DefaultLayout(), ""); len(got) != 3 {
		t.Fatalf("expected every lane, got %v", got)
	}
}

func TestCommandTree(t *testing.T) {
	root := New()
	for _, name := range []string{"show", "board", "add", "move", "edit", "search", "layout", "ui", "mcp", "version", "completion"} {
		cmd, _, err := root.Find([]string{name})
		if err != nil || cmd == root {
			t.Fatalf("expected command %q, got %v", name, err)
		}
	}
}
