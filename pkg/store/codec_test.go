package store

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"tableflip.dev/lanes/pkg/board"
)

func TestEncodeUsesStoredShape(t *testing.T) {
	data, err := Encode(board.Seed(board.DefaultLayout()))
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	s := string(data)
	for _, want := range []string{`"todoStatus":"To Do"`, `"status":"In Progress"`, `"id":"3"`, `"description":"Confirm to Fel again by tomorrow"`} {
		if !strings.Contains(s, want) {
			t.Fatalf("expected %s in %s", want, s)
		}
	}
}

func TestDecodeRoundTrip(t *testing.T) {
	layout := board.DefaultLayout()
	in := board.Move(board.Seed(layout), board.MoveRequest{ItemID: "1", SourceLane: "To Do", TargetLane: "Archived", Position: board.Start()})
	data, err := Encode(in)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	out, err := Decode(data, layout)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !reflect.DeepEqual(out, in) {
		t.Fatalf("expected %+v, got %+v", in, out)
	}
}

func TestDecodeNormalizesLaneOrder(t *testing.T) {
	data := []byte(`[
		{"todoStatus":"Archived","items":[{"id":"2","title":"b","description":"","status":"Archived"}]},
		{"todoStatus":"To Do","items":[{"id":"1","title":"a","description":"","status":"To Do"}]}
	]`)
	b, err := Decode(data, board.DefaultLayout())
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got := b.Names(); !reflect.DeepEqual(got, board.DefaultLayout()) {
		t.Fatalf("expected layout order, got %v", got)
	}
	if ip, _ := b.Lane("In Progress"); len(ip.Items) != 0 {
		t.Fatalf("expected missing lane to come back empty, got %v", ip.Items)
	}
}

func TestDecodeRejectsCorruptData(t *testing.T) {
	tests := map[string]string{
		"not json":       `{"todo`,
		"not a list":     `{"todoStatus":"To Do"}`,
		"unknown lane":   `[{"todoStatus":"Done","items":[]}]`,
		"repeated lane":  `[{"todoStatus":"To Do","items":[]},{"todoStatus":"To Do","items":[]}]`,
		"status differs": `[{"todoStatus":"To Do","items":[{"id":"1","title":"a","status":"Archived"}]}]`,
		"duplicate id":   `[{"todoStatus":"To Do","items":[{"id":"1","title":"a","status":"To Do"}]},{"todoStatus":"Archived","items":[{"id":"1","title":"b","status":"Archived"}]}]`,
		"missing id":     `[{"todoStatus":"To Do","items":[{"title":"a","status":"To Do"}]}]`,
	}
	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := Decode([]byte(data), board.DefaultLayout()); !errors.Is(err, ErrCorrupt) {
				t.Fatalf("expected ErrCorrupt, got %v", err)
			}
		})
	}
}
