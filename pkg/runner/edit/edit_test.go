package edit

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/fatih/color"

	"tableflip.dev/lanes/pkg/app"
	"tableflip.dev/lanes/pkg/app/apptest"
	"tableflip.dev/lanes/pkg/printers"
)

func init() {
	color.NoColor = true
}

func str(s string) *string { return &s }

func TestEditBothFields(t *testing.T) {
	c, mem := apptest.NewController(t)
	var out bytes.Buffer

	e := Edit{ID: "2", Title: str("Bali, booked"), Description: str(""), Controller: c, Printer: &printers.PrettyPrint{Out: &out}}
	if err := e.Do(context.Background()); err != nil {
		t.Fatalf("Do: %v", err)
	}
	it, _ := c.Find("2")
	if it.Title != "Bali, booked" || it.Description != "" || it.Lane != "In Progress" {
		t.Fatalf("expected both fields edited in place, got %+v", it)
	}
	if mem.Saves != 2 {
		t.Fatalf("expected one save per field, got %d", mem.Saves)
	}
	if !strings.Contains(out.String(), "edited 2 in In Progress") {
		t.Fatalf("expected edited line, got %q", out.String())
	}
}

func TestEditOnlyDescription(t *testing.T) {
	c, _ := apptest.NewController(t)
	e := Edit{ID: "3", Description: str("moved to Friday"), Controller: c, Printer: &printers.PrettyPrint{Out: &bytes.Buffer{}}}
	if err := e.Do(context.Background()); err != nil {
		t.Fatalf("Do: %v", err)
	}
	it, _ := c.Find("3")
	if it.Title != "Coffee Chat with Fel" || it.Description != "moved to Friday" {
		t.Fatalf("expected only description changed, got %+v", it)
	}
}

func TestEditSaveFailureStillAppliesBothFields(t *testing.T) {
	c, mem := apptest.NewController(t)
	mem.SaveErr = errors.New("read-only")

	e := Edit{ID: "1", Title: str("new title"), Description: str("new description"), Controller: c, Printer: &printers.PrettyPrint{Out: &bytes.Buffer{}}}
	err := e.Do(context.Background())
	var se *app.SaveError
	if !errors.As(err, &se) {
		t.Fatalf("expected SaveError, got %v", err)
	}
	it, _ := c.Find("1")
	if it.Title != "new title" || it.Description != "new description" {
		t.Fatalf("expected both fields applied in memory, got %+v", it)
	}
	if mem.Saves != 2 {
		t.Fatalf("expected both saves attempted, got %d", mem.Saves)
	}
}

func TestEditRejects(t *testing.T) {
	c, mem := apptest.NewController(t)
	pp := &printers.PrettyPrint{Out: &bytes.Buffer{}}
	cases := map[string]Edit{
		"nothing":     {ID: "1"},
		"blank title": {ID: "1", Title: str("   "), Description: str("x")},
		"unknown id":  {ID: "42", Title: str("x")},
	}
	for name, e := range cases {
		e.Controller = c
		e.Printer = pp
		if err := e.Do(context.Background()); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
	if mem.Saves != 0 {
		t.Fatalf("expected nothing saved, got %d saves", mem.Saves)
	}
}
