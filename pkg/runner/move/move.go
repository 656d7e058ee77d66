// Package move provides the runner that reorders items and moves them
// between lanes.
package move

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"tableflip.dev/lanes/pkg/app"
	"tableflip.dev/lanes/pkg/board"
	"tableflip.dev/lanes/pkg/printers"
)

// Move relocates one item. An empty From means the lane currently holding
// the item.
type Move struct {
	ID       string
	From     string
	To       string
	Position board.Position
	JSON     bool

	Controller *app.Controller
	Printer    *printers.PrettyPrint
}

func (n *Move) Do(ctx context.Context) error {
	if n.Controller == nil {
		return errors.New("can not move, no board")
	}
	pp := n.Printer
	if pp == nil {
		pp = &printers.PrettyPrint{}
	}
	layout := n.Controller.Layout()

	it, ok := n.Controller.Find(n.ID)
	if !ok {
		return fmt.Errorf("no item with id %q", n.ID)
	}
	source := it.Lane
	if n.From != "" {
		if source, ok = layout.Resolve(n.From); !ok {
			return fmt.Errorf("unknown lane %q (expected one of %s)", n.From, strings.Join(layout, ", "))
		}
	}
	target := source
	if n.To != "" {
		if target, ok = layout.Resolve(n.To); !ok {
			return fmt.Errorf("unknown lane %q (expected one of %s)", n.To, strings.Join(layout, ", "))
		}
	}

	b, err := n.Controller.Move(ctx, board.MoveRequest{
		ItemID:     it.ID,
		SourceLane: source,
		TargetLane: target,
		Position:   n.Position,
	})
	if err != nil {
		return err
	}

	moved, _ := b.Find(it.ID)
	if n.JSON {
		return pp.JSON(moved)
	}
	l, _ := b.Lane(moved.Lane)
	pp.ShowID = true
	pp.NewLine()
	pp.TitleWithCount(l.Name, len(l.Items))
	pp.Items(l.Items...)
	return nil
}
