package app

import (
	"tableflip.dev/lanes/pkg/board"
)

// LaneSummary describes one lane and basic aggregate metadata.
type LaneSummary struct {
	Name      string `json:"name"`
	Position  int    `json:"position"`
	ItemCount int    `json:"itemCount"`
	Intake    bool   `json:"intake,omitempty"`
	TopTitle  string `json:"topTitle,omitempty"`
}

// Summary captures per-lane counts for the current board.
type Summary struct {
	Lanes []LaneSummary `json:"lanes"`
	Total int           `json:"total"`
}

// Summary reports lane counts in layout order.
func (c *Controller) Summary() Summary {
	return Summarize(c.State())
}

// Summarize reports lane counts for b in lane order.
func Summarize(b board.Board) Summary {
	out := Summary{Lanes: make([]LaneSummary, 0, len(b.Lanes))}
	for i, l := range b.Lanes {
		s := LaneSummary{
			Name:      l.Name,
			Position:  i,
			ItemCount: len(l.Items),
			Intake:    i == 0,
		}
		if len(l.Items) > 0 {
			s.TopTitle = l.Items[0].Title
		}
		out.Lanes = append(out.Lanes, s)
		out.Total += len(l.Items)
	}
	return out
}
