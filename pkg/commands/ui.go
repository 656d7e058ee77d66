package commands

import (
	"errors"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"tableflip.dev/lanes/pkg/tui/boardui"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the interactive board",
		Long: `Open the board in the terminal. Move between lanes with h/l and between
cards with j/k, pick a card up with space, carry it with h/j/k/l and drop it
with enter. a adds, e and E edit, / searches, q quits.`,
		Example: `
lanes ui
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
				return errors.New("ui needs an interactive terminal, use lanes show instead")
			}
			s, err := openBoard(cmd.Context())
			if err != nil {
				return err
			}
			defer s.Close()
			return boardui.Run(cmd.Context(), s.Controller, s.Watcher())
		},
	}

	topLevel.AddCommand(cmd)
}
