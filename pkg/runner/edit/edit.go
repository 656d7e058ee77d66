// Package edit provides the runner that rewrites item fields.
package edit

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"tableflip.dev/lanes/pkg/app"
	"tableflip.dev/lanes/pkg/board"
	"tableflip.dev/lanes/pkg/printers"
)

// Edit replaces the title and/or description of one item. Nil fields are
// left alone.
type Edit struct {
	ID          string
	Title       *string
	Description *string
	JSON        bool

	Controller *app.Controller
	Printer    *printers.PrettyPrint
}

func (n *Edit) Do(ctx context.Context) error {
	if n.Controller == nil {
		return errors.New("can not edit, no board")
	}
	if n.Title == nil && n.Description == nil {
		return errors.New("nothing to edit, set --title or --description")
	}
	if n.Title != nil && strings.TrimSpace(*n.Title) == "" {
		return errors.New("title cannot be blank")
	}
	if _, ok := n.Controller.Find(n.ID); !ok {
		return fmt.Errorf("no item with id %q", n.ID)
	}
	pp := n.Printer
	if pp == nil {
		pp = &printers.PrettyPrint{}
	}

	// Both fields are applied even when the first cannot be saved; the
	// save failure is reported once at the end.
	var (
		b       board.Board
		saveErr *app.SaveError
	)
	apply := func(f board.Field, v string) error {
		next, err := n.Controller.EditField(ctx, board.EditRequest{ItemID: n.ID, Field: f, Value: v})
		b = next
		var se *app.SaveError
		if errors.As(err, &se) {
			if saveErr == nil {
				saveErr = se
			}
			return nil
		}
		return err
	}
	if n.Title != nil {
		if err := apply(board.FieldTitle, *n.Title); err != nil {
			return err
		}
	}
	if n.Description != nil {
		if err := apply(board.FieldDescription, *n.Description); err != nil {
			return err
		}
	}
	if saveErr != nil {
		return saveErr
	}

	it, _ := b.Find(n.ID)
	if n.JSON {
		return pp.JSON(it)
	}
	pp.ShowID = true
	pp.NewLine()
	pp.Placed("edited", it)
	return nil
}
