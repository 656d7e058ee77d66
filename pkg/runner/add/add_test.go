package add

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/fatih/color"

	"tableflip.dev/lanes/pkg/app"
	"tableflip.dev/lanes/pkg/app/apptest"
	"tableflip.dev/lanes/pkg/board"
	"tableflip.dev/lanes/pkg/printers"
)

func init() {
	color.NoColor = true
}

func TestAddPrintsIntakeLane(t *testing.T) {
	c, mem := apptest.NewController(t)
	var out bytes.Buffer

	a := Add{Title: "Renew passport", Description: "before Bali", Controller: c, Printer: &printers.PrettyPrint{Out: &out}}
	if err := a.Do(context.Background()); err != nil {
		t.Fatalf("Do: %v", err)
	}
	it, ok := c.Find("4")
	if !ok || it.Lane != "To Do" || it.Title != "Renew passport" {
		t.Fatalf("expected item 4 in To Do, got %+v", it)
	}
	if mem.Saves != 1 {
		t.Fatalf("expected one save, got %d", mem.Saves)
	}
	got := out.String()
	if !strings.Contains(got, "To Do - 2 items") || !strings.Contains(got, "4     • Renew passport  before Bali") {
		t.Fatalf("expected intake lane with new item, got %q", got)
	}
}

func TestAddJSON(t *testing.T) {
	c, _ := apptest.NewController(t)
	var out bytes.Buffer

	a := Add{Title: "json me", JSON: true, Controller: c, Printer: &printers.PrettyPrint{Out: &out}}
	if err := a.Do(context.Background()); err != nil {
		t.Fatalf("Do: %v", err)
	}
	var it board.Item
	if err := json.Unmarshal(out.Bytes(), &it); err != nil {
		t.Fatalf("expected item json, got %q: %v", out.String(), err)
	}
	if it.ID != "4" || it.Lane != "To Do" {
		t.Fatalf("expected item 4 in To Do, got %+v", it)
	}
}

func TestAddRejectsBlankTitle(t *testing.T) {
	c, mem := apptest.NewController(t)
	a := Add{Title: " \t", Controller: c, Printer: &printers.PrettyPrint{Out: &bytes.Buffer{}}}
	if err := a.Do(context.Background()); err == nil {
		t.Fatalf("expected error for blank title")
	}
	if mem.Saves != 0 || c.State().Count() != 3 {
		t.Fatalf("expected board untouched, got %d saves and %d items", mem.Saves, c.State().Count())
	}
}

func TestAddSaveFailure(t *testing.T) {
	c, mem := apptest.NewController(t)
	mem.SaveErr = errors.New("disk full")

	a := Add{Title: "kept in memory", Controller: c, Printer: &printers.PrettyPrint{Out: &bytes.Buffer{}}}
	err := a.Do(context.Background())
	var se *app.SaveError
	if !errors.As(err, &se) {
		t.Fatalf("expected SaveError, got %v", err)
	}
	if _, ok := c.Find("4"); !ok {
		t.Fatalf("expected item kept in memory")
	}
}
