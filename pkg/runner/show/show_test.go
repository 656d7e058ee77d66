package show

import (
	"bytes"
	"context"
	"encoding/json"
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

func TestShowBoard(t *testing.T) {
	c, _ := apptest.NewController(t)
	var out bytes.Buffer

	s := Show{ShowID: true, Controller: c, Printer: &printers.PrettyPrint{Out: &out}}
	if err := s.Do(context.Background()); err != nil {
		t.Fatalf("Do: %v", err)
	}
	got := out.String()
	todo := strings.Index(got, "To Do - 1 item")
	doing := strings.Index(got, "In Progress - 1 item")
	done := strings.Index(got, "Archived - 1 item")
	if todo < 0 || doing < todo || done < doing {
		t.Fatalf("expected lanes in layout order, got %q", got)
	}
	if !strings.Contains(got, "2     • Arrange Bali Trip") {
		t.Fatalf("expected ids shown, got %q", got)
	}
}

func TestShowLane(t *testing.T) {
	c, _ := apptest.NewController(t)
	var out bytes.Buffer

	s := Show{Lane: "archived", Controller: c, Printer: &printers.PrettyPrint{Out: &out}}
	if err := s.Do(context.Background()); err != nil {
		t.Fatalf("Do: %v", err)
	}
	got := out.String()
	if !strings.Contains(got, "Archived - 1 item") || strings.Contains(got, "To Do") {
		t.Fatalf("expected only Archived, got %q", got)
	}
}

func TestShowJSON(t *testing.T) {
	c, _ := apptest.NewController(t)
	var out bytes.Buffer

	s := Show{JSON: true, Controller: c, Printer: &printers.PrettyPrint{Out: &out}}
	if err := s.Do(context.Background()); err != nil {
		t.Fatalf("Do: %v", err)
	}
	var b board.Board
	if err := json.Unmarshal(out.Bytes(), &b); err != nil {
		t.Fatalf("expected board json, got %q: %v", out.String(), err)
	}
	if len(b.Lanes) != 3 || b.Count() != 3 {
		t.Fatalf("expected seed board, got %+v", b)
	}

	out.Reset()
	s.Lane = "in progress"
	if err := s.Do(context.Background()); err != nil {
		t.Fatalf("Do: %v", err)
	}
	var l board.Lane
	if err := json.Unmarshal(out.Bytes(), &l); err != nil {
		t.Fatalf("expected lane json, got %q: %v", out.String(), err)
	}
	if l.Name != "In Progress" || len(l.Items) != 1 {
		t.Fatalf("expected In Progress lane, got %+v", l)
	}
}

func TestShowUnknownLane(t *testing.T) {
	c, _ := apptest.NewController(t)
	s := Show{Lane: "backlog", Controller: c, Printer: &printers.PrettyPrint{Out: &bytes.Buffer{}}}
	if err := s.Do(context.Background()); err == nil {
		t.Fatalf("expected error for unknown lane")
	}
}
