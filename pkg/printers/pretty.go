package printers

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"tableflip.dev/lanes/pkg/board"
)

type PrettyPrint struct {
	ShowID bool
	Out    io.Writer
}

var (
	spacing = strings.Repeat(" ", len("1234  "))
)

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out != nil {
		return pp.Out
	}
	return color.Output
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowID {
		_, _ = t.Fprint(pp.out(), spacing)
	}
	_, _ = t.Fprintln(pp.out(), title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	if pp.ShowID {
		_, _ = t.Fprint(pp.out(), spacing)
	}
	_, _ = t.Fprint(pp.out(), title)
	_, _ = c.Fprintf(pp.out(), " - %d", count)

	switch count {
	case 1:
		_, _ = c.Fprintln(pp.out(), " item")
	default:
		_, _ = c.Fprintln(pp.out(), " items")
	}
}

// Items prints one line per item, with the description dimmed after the
// title.
func (pp *PrettyPrint) Items(items ...board.Item) {
	if len(items) == 0 {
		f := color.New(color.Faint, color.Italic)
		if pp.ShowID {
			_, _ = f.Fprint(pp.out(), spacing)
		}
		_, _ = f.Fprint(pp.out(), " none\n\n")
		return
	}

	t := color.New()
	d := color.New(color.Faint)
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)

	for _, it := range items {
		if pp.ShowID {
			_, _ = y.Fprint(pp.out(), it.ID)
			pad := len(spacing) - len(it.ID)
			if pad < 1 {
				pad = 1
			}
			_, _ = y.Fprint(pp.out(), strings.Repeat(" ", pad))
		}
		_, _ = t.Fprintf(pp.out(), "• %s", it.Title)
		if it.Description != "" {
			_, _ = d.Fprintf(pp.out(), "  %s", it.Description)
		}
		_, _ = t.Fprintln(pp.out(), "")
	}
	_, _ = t.Fprintln(pp.out(), "")
}

// Board prints every lane in order.
func (pp *PrettyPrint) Board(b board.Board) {
	for _, l := range b.Lanes {
		pp.TitleWithCount(l.Name, len(l.Items))
		pp.Items(l.Items...)
	}
}

// Placed prints a single item with the lane that now holds it.
func (pp *PrettyPrint) Placed(verb string, it board.Item) {
	c := color.New(color.Faint)
	_, _ = c.Fprintf(pp.out(), "%s %s in ", verb, it.ID)
	_, _ = color.New(color.Bold).Fprintln(pp.out(), it.Lane)
	pp.Items(it)
}

// JSON writes v as indented JSON.
func (pp *PrettyPrint) JSON(v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(pp.out(), string(b))
	return err
}
