package board

import (
	"errors"
	"fmt"
	"strings"
)

// Layout is the fixed, ordered set of lane names a board is built from.
type Layout []string

// DefaultLayout returns the stock lanes.
func DefaultLayout() Layout {
	return Layout{"To Do", "In Progress", "Archived"}
}

// Intake is the lane new items land in.
func (l Layout) Intake() string {
	if len(l) == 0 {
		return ""
	}
	return l[0]
}

func (l Layout) Has(name string) bool {
	return l.Index(name) >= 0
}

func (l Layout) Index(name string) int {
	for i, n := range l {
		if n == name {
			return i
		}
	}
	return -1
}

// Validate rejects empty layouts and blank or repeated lane names.
func (l Layout) Validate() error {
	if len(l) == 0 {
		return errors.New("board: layout has no lanes")
	}
	seen := make(map[string]struct{}, len(l))
	for _, n := range l {
		if strings.TrimSpace(n) == "" {
			return errors.New("board: layout has a blank lane name")
		}
		if _, ok := seen[n]; ok {
			return fmt.Errorf("board: layout repeats lane %q", n)
		}
		seen[n] = struct{}{}
	}
	return nil
}

// Resolve finds the configured lane matching name, ignoring case and
// surrounding space, so "in progress" resolves to "In Progress".
func (l Layout) Resolve(name string) (string, bool) {
	name = strings.TrimSpace(name)
	for _, n := range l {
		if n == name {
			return n, true
		}
	}
	for _, n := range l {
		if strings.EqualFold(n, name) {
			return n, true
		}
	}
	return "", false
}
