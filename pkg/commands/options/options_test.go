package options

import (
	"errors"
	"testing"
)

func TestMoveOptionsPosition(t *testing.T) {
	tests := map[string]struct {
		opts    MoveOptions
		want    string
		wantErr bool
	}{
		"default end": {opts: MoveOptions{}, want: "end"},
		"start":       {opts: MoveOptions{Start: true}, want: "start"},
		"before":      {opts: MoveOptions{Before: "2"}, want: "before:2"},
		"conflict":    {opts: MoveOptions{Before: "2", End: true}, wantErr: true},
	}
	for name, tc := range tests {
		got, err := tc.opts.Position()
		if tc.wantErr {
			if err == nil {
				t.Fatalf("%s: expected error", name)
			}
			continue
		}
		if err != nil {
			t.Fatalf("%s: unexpected error %v", name, err)
		}
		if got.String() != tc.want {
			t.Fatalf("%s: expected %s, got %s", name, tc.want, got)
		}
	}
}

func TestHandleErrorMarksReported(t *testing.T) {
	cause := errors.New("boom")

	plain := &OutputOptions{}
	if err := plain.HandleError(cause); err != cause {
		t.Fatalf("expected error passed through, got %v", err)
	}

	jo := &OutputOptions{JSON: true}
	err := jo.HandleError(cause)
	var re *ReportedError
	if !errors.As(err, &re) || !errors.Is(err, cause) {
		t.Fatalf("expected *ReportedError wrapping cause, got %v", err)
	}
	if jo.HandleError(nil) != nil {
		t.Fatalf("expected nil for nil error")
	}
}
