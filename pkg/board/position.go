package board

import (
	"fmt"
	"strings"
)

type positionKind int

const (
	posEnd positionKind = iota
	posStart
	posBefore
)

// Position is where a moved item lands in its target lane. The zero value is
// End.
type Position struct {
	kind  positionKind
	hover string
}

// Start inserts ahead of every item in the lane.
func Start() Position { return Position{kind: posStart} }

// End appends to the lane.
func End() Position { return Position{kind: posEnd} }

// Before inserts directly ahead of the item with the given id.
func Before(id string) Position { return Position{kind: posBefore, hover: id} }

func (p Position) IsStart() bool { return p.kind == posStart }
func (p Position) IsEnd() bool   { return p.kind == posEnd }

// Hover returns the id the position is anchored to, if any.
func (p Position) Hover() (string, bool) {
	return p.hover, p.kind == posBefore
}

func (p Position) String() string {
	switch p.kind {
	case posStart:
		return "start"
	case posBefore:
		return "before:" + p.hover
	}
	return "end"
}

// ParsePosition reads "start", "end", "before:<id>" or a bare item id.
func ParsePosition(s string) (Position, error) {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "", "end":
		return End(), nil
	case "start":
		return Start(), nil
	}
	if rest, ok := strings.CutPrefix(s, "before:"); ok {
		rest = strings.TrimSpace(rest)
		if rest == "" {
			return Position{}, fmt.Errorf("position %q names no item", s)
		}
		return Before(rest), nil
	}
	return Before(s), nil
}

// insertIndex resolves p against the target sequence. A Before anchor that is
// not in items resolves to the end.
func (p Position) insertIndex(items []Item) int {
	switch p.kind {
	case posStart:
		return 0
	case posBefore:
		if i := indexOf(items, p.hover); i >= 0 {
			return i
		}
	}
	return len(items)
}
