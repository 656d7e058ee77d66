package board

import (
	"errors"
	"reflect"
	"testing"
)

func lanesOf(b Board) map[string][]string {
	out := make(map[string][]string, len(b.Lanes))
	for _, l := range b.Lanes {
		ids := make([]string, 0, len(l.Items))
		for _, it := range l.Items {
			ids = append(ids, it.ID)
		}
		out[l.Name] = ids
	}
	return out
}

func TestSeedHasOneItemPerLane(t *testing.T) {
	layout := DefaultLayout()
	b := Seed(layout)
	if err := b.Validate(layout); err != nil {
		t.Fatalf("seed should validate: %v", err)
	}
	want := map[string][]string{
		"To Do":       {"1"},
		"In Progress": {"2"},
		"Archived":    {"3"},
	}
	if got := lanesOf(b); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	if b.Count() != 3 {
		t.Fatalf("expected 3 items, got %d", b.Count())
	}
}

func TestValidateRejectsBrokenInvariants(t *testing.T) {
	layout := DefaultLayout()

	tests := map[string]func(Board) Board{
		"lane tag mismatch": func(b Board) Board {
			b.Lanes[0].Items[0].Lane = "Archived"
			return b
		},
		"duplicate id": func(b Board) Board {
			b.Lanes[1].Items[0].ID = "1"
			return b
		},
		"lane out of order": func(b Board) Board {
			b.Lanes[0], b.Lanes[1] = b.Lanes[1], b.Lanes[0]
			return b
		},
		"missing lane": func(b Board) Board {
			b.Lanes = b.Lanes[:2]
			return b
		},
	}
	for name, breakIt := range tests {
		t.Run(name, func(t *testing.T) {
			b := breakIt(Seed(layout).Clone())
			err := b.Validate(layout)
			var ie *InvariantError
			if !errors.As(err, &ie) {
				t.Fatalf("expected InvariantError, got %v", err)
			}
		})
	}
}

func TestCloneSharesNothing(t *testing.T) {
	b := Seed(DefaultLayout())
	c := b.Clone()
	c.Lanes[0].Items[0].Title = "changed"
	if b.Lanes[0].Items[0].Title == "changed" {
		t.Fatalf("clone aliases the original items")
	}
}

func TestLayoutResolveAndValidate(t *testing.T) {
	layout := DefaultLayout()
	if got, ok := layout.Resolve(" in progress "); !ok || got != "In Progress" {
		t.Fatalf("expected In Progress, got %q (%v)", got, ok)
	}
	if _, ok := layout.Resolve("Done"); ok {
		t.Fatalf("Done is not a configured lane")
	}
	if err := (Layout{"A", "A"}).Validate(); err == nil {
		t.Fatalf("expected duplicate lane names to be rejected")
	}
	if err := (Layout{}).Validate(); err == nil {
		t.Fatalf("expected empty layout to be rejected")
	}
	if layout.Intake() != "To Do" {
		t.Fatalf("expected To Do intake, got %q", layout.Intake())
	}
}

func TestParseField(t *testing.T) {
	if f, err := ParseField("title"); err != nil || f != FieldTitle {
		t.Fatalf("expected title field, got %q %v", f, err)
	}
	if _, err := ParseField("status"); err == nil {
		t.Fatalf("expected status to be rejected")
	}
}
