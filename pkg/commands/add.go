package commands

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/lanes/pkg/commands/options"
	"tableflip.dev/lanes/pkg/runner/add"
)

func addAdd(topLevel *cobra.Command) {
	no := &options.ItemOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "add <title...>",
		Short: "Add an item to the first lane",
		Example: `
lanes add book flights
lanes add "Coffee chat" -d "confirm by tomorrow"
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires a title")
			}
			no.Title = strings.Join(args, " ")

			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s, err := openBoard(cmd.Context())
			if err != nil {
				return oo.HandleError(err)
			}
			defer s.Close()

			r := add.Add{
				Title:       no.Title,
				Description: no.Description,
				JSON:        oo.JSON,
				Controller:  s.Controller,
			}
			return oo.HandleError(r.Do(cmd.Context()))
		},
	}

	options.AddDescriptionArg(cmd, no)
	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
