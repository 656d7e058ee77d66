package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/lanes/pkg/commands/options"
	"tableflip.dev/lanes/pkg/runner/edit"
)

func addEdit(topLevel *cobra.Command) {
	eo := &options.EditOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change the title or description of an item",
		Example: `
lanes edit 2 --title "Arrange Bali trip (booked)"
lanes edit 2 --description=""
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) != 1 {
				return errors.New("requires exactly one item id")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			s, err := openBoard(cmd.Context())
			if err != nil {
				return oo.HandleError(err)
			}
			defer s.Close()

			r := edit.Edit{
				ID:         args[0],
				JSON:       oo.JSON,
				Controller: s.Controller,
			}
			if eo.TitleSet(cmd) {
				r.Title = &eo.Title
			}
			if eo.DescriptionSet(cmd) {
				r.Description = &eo.Description
			}
			return oo.HandleError(r.Do(cmd.Context()))
		},
		ValidArgsFunction: itemArgCompletion,
	}

	options.AddEditArgs(cmd, eo)
	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
