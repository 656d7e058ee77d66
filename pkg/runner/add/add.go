// Package add provides the runner that adds items to the intake lane.
package add

import (
	"context"
	"errors"
	"strings"

	"tableflip.dev/lanes/pkg/app"
	"tableflip.dev/lanes/pkg/printers"
)

type Add struct {
	Title       string
	Description string
	JSON        bool

	Controller *app.Controller
	Printer    *printers.PrettyPrint
}

func (n *Add) Do(ctx context.Context) error {
	if n.Controller == nil {
		return errors.New("can not add, no board")
	}
	if strings.TrimSpace(n.Title) == "" {
		return errors.New("requires a title")
	}
	pp := n.Printer
	if pp == nil {
		pp = &printers.PrettyPrint{}
	}

	b, it, err := n.Controller.AddItem(ctx, n.Title, n.Description)
	if err != nil {
		return err
	}
	if n.JSON {
		return pp.JSON(it)
	}

	l, _ := b.Lane(it.Lane)
	pp.ShowID = true
	pp.NewLine()
	pp.TitleWithCount(l.Name, len(l.Items))
	pp.Items(l.Items...)
	return nil
}
