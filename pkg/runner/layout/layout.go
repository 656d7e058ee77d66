// Package layout provides the runner that prints the configured lanes.
package layout

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/lanes/pkg/app"
)

// Layout prints the lanes in order with their item counts.
type Layout struct {
	JSON       bool
	Controller *app.Controller
	Out        io.Writer
}

// Do renders the lane table.
func (k *Layout) Do(_ context.Context) error {
	if k.Controller == nil {
		return errors.New("can not show layout, no board")
	}
	out := k.Out
	if out == nil {
		out = color.Output
	}
	if k.JSON {
		b, err := json.MarshalIndent(k.Controller.Summary(), "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, string(b))
		return err
	}
	_, _ = fmt.Fprintln(out, "")
	k.Table(out, k.Controller.Summary())
	_, _ = fmt.Fprintln(out, "")
	return nil
}

// Table renders a lane summary as a table.
func (k *Layout) Table(out io.Writer, s app.Summary) {
	bold := color.New(color.Bold)
	faint := color.New(color.Faint)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 40
	tbl.AddRow(bold.Sprint("#"), bold.Sprint("Lane"), bold.Sprint("Items"), bold.Sprint("Top"))
	for _, l := range s.Lanes {
		name := l.Name
		if l.Intake {
			name += faint.Sprint(" (new items)")
		}
		tbl.AddRow(strconv.Itoa(l.Position+1), name, strconv.Itoa(l.ItemCount), l.TopTitle)
	}
	tbl.AddRow("", faint.Sprint("total"), strconv.Itoa(s.Total), "")
	_, _ = fmt.Fprintln(out, tbl)
}
