// Package search provides the runner that finds items by pattern.
package search

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/lanes/pkg/app"
	"tableflip.dev/lanes/pkg/board"
	"tableflip.dev/lanes/pkg/printers"
)

// ErrNoMatch is returned when nothing on the board matches the query.
var ErrNoMatch = errors.New("no matching item")

// Search prints the first item whose label matches Query, or every match
// when All is set.
type Search struct {
	Query string
	All   bool
	JSON  bool

	Controller *app.Controller
	Printer    *printers.PrettyPrint
}

func (n *Search) Do(_ context.Context) error {
	if n.Controller == nil {
		return errors.New("can not search, no board")
	}
	pp := n.Printer
	if pp == nil {
		pp = &printers.PrettyPrint{}
	}

	var hits []board.Item
	if n.All {
		hits = board.Matches(n.Controller.State(), n.Query)
	} else if it, ok := n.Controller.Search(n.Query); ok {
		hits = []board.Item{it}
	}
	if len(hits) == 0 {
		return fmt.Errorf("%w for %q", ErrNoMatch, n.Query)
	}

	if n.JSON {
		if n.All {
			return pp.JSON(hits)
		}
		return pp.JSON(hits[0])
	}
	pp.ShowID = true
	pp.NewLine()
	for _, it := range hits {
		pp.Placed("found", it)
	}
	return nil
}
