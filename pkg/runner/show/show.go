// Package show provides the runner that prints the board.
package show

import (
	"context"
	"errors"

	"tableflip.dev/lanes/pkg/app"
	"tableflip.dev/lanes/pkg/printers"
)

// Show prints every lane, or a single lane when Lane is set.
type Show struct {
	ShowID     bool
	JSON       bool
	Lane       string
	Controller *app.Controller
	Printer    *printers.PrettyPrint
}

// Do renders the current board.
func (n *Show) Do(_ context.Context) error {
	if n.Controller == nil {
		return errors.New("can not show, no board")
	}
	pp := n.Printer
	if pp == nil {
		pp = &printers.PrettyPrint{}
	}
	pp.ShowID = n.ShowID

	b := n.Controller.State()
	if n.Lane != "" {
		name, ok := n.Controller.Layout().Resolve(n.Lane)
		if !ok {
			return errors.New("unknown lane " + n.Lane)
		}
		l, _ := b.Lane(name)
		if n.JSON {
			return pp.JSON(l)
		}
		pp.NewLine()
		pp.TitleWithCount(l.Name, len(l.Items))
		pp.Items(l.Items...)
		return nil
	}

	if n.JSON {
		return pp.JSON(b)
	}
	pp.NewLine()
	pp.Board(b)
	return nil
}
