package options

import (
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/lanes/pkg/board"
)

// MoveOptions
type MoveOptions struct {
	From   string
	To     string
	Before string
	Start  bool
	End    bool
}

func AddMoveArgs(cmd *cobra.Command, o *MoveOptions) {
	cmd.Flags().StringVar(&o.From, "from", "",
		"Lane the item is in. Defaults to its current lane.")
	cmd.Flags().StringVar(&o.To, "to", "",
		"Destination lane. Defaults to the source lane.")
	cmd.Flags().StringVar(&o.Before, "before", "",
		"Insert before the item with this id.")
	cmd.Flags().BoolVar(&o.Start, "start", false,
		"Insert at the top of the lane.")
	cmd.Flags().BoolVar(&o.End, "end", false,
		"Insert at the bottom of the lane (default).")
}

// Position resolves the insertion flags. At most one may be set.
func (o *MoveOptions) Position() (board.Position, error) {
	set := 0
	for _, b := range []bool{o.Before != "", o.Start, o.End} {
		if b {
			set++
		}
	}
	if set > 1 {
		return board.End(), errors.New("only one of --before, --start or --end may be set")
	}
	switch {
	case o.Before != "":
		return board.Before(o.Before), nil
	case o.Start:
		return board.Start(), nil
	}
	return board.End(), nil
}
