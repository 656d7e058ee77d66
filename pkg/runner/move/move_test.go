package move

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/fatih/color"

	"tableflip.dev/lanes/pkg/app/apptest"
	"tableflip.dev/lanes/pkg/board"
	"tableflip.dev/lanes/pkg/printers"
)

func init() {
	color.NoColor = true
}

func TestMoveDefaultsSourceToCurrentLane(t *testing.T) {
	c, mem := apptest.NewController(t)
	var out bytes.Buffer

	m := Move{
		ID:         "1",
		To:         "archived",
		Position:   board.Start(),
		Controller: c,
		Printer:    &printers.PrettyPrint{Out: &out},
	}
	if err := m.Do(context.Background()); err != nil {
		t.Fatalf("Do: %v", err)
	}
	l, _ := c.State().Lane("Archived")
	if len(l.Items) != 2 || l.Items[0].ID != "1" {
		t.Fatalf("expected item 1 at top of Archived, got %+v", l.Items)
	}
	if mem.Saves != 1 {
		t.Fatalf("expected one save, got %d", mem.Saves)
	}
	if !strings.Contains(out.String(), "Archived - 2 items") {
		t.Fatalf("expected lane heading in output, got %q", out.String())
	}
}

func TestMoveReordersWithinLane(t *testing.T) {
	c, _ := apptest.NewController(t)
	ctx := context.Background()
	if _, _, err := c.AddItem(ctx, "second", ""); err != nil {
		t.Fatalf("AddItem: %v", err)
	}

	m := Move{ID: "4", Position: board.Before("1"), Controller: c, Printer: &printers.PrettyPrint{Out: &bytes.Buffer{}}}
	if err := m.Do(ctx); err != nil {
		t.Fatalf("Do: %v", err)
	}
	l, _ := c.State().Lane("To Do")
	if l.Items[0].ID != "4" || l.Items[1].ID != "1" {
		t.Fatalf("expected [4 1], got %+v", l.Items)
	}
}

func TestMoveRejectsUnknownInput(t *testing.T) {
	c, _ := apptest.NewController(t)
	for name, m := range map[string]Move{
		"unknown id":   {ID: "9", To: "Archived"},
		"unknown lane": {ID: "1", To: "Someday"},
		"unknown from": {ID: "1", From: "Backlog", To: "Archived"},
	} {
		m.Controller = c
		m.Printer = &printers.PrettyPrint{Out: &bytes.Buffer{}}
		if err := m.Do(context.Background()); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
}
