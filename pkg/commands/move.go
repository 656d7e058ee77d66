package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/lanes/pkg/commands/options"
	"tableflip.dev/lanes/pkg/runner/move"
)

func addMove(topLevel *cobra.Command) {
	mo := &options.MoveOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "move <id>",
		Short: "Move an item within its lane or to another lane",
		Example: `
lanes move 4 --to "In Progress"
lanes move 4 --before 2
lanes move 4 --to archived --start
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
			pos, err := mo.Position()
			if err != nil {
				return oo.HandleError(err)
			}
			s, err := openBoard(cmd.Context())
			if err != nil {
				return oo.HandleError(err)
			}
			defer s.Close()

			r := move.Move{
				ID:         args[0],
				From:       mo.From,
				To:         mo.To,
				Position:   pos,
				JSON:       oo.JSON,
				Controller: s.Controller,
			}
			return oo.HandleError(r.Do(cmd.Context()))
		},
		ValidArgsFunction: itemArgCompletion,
	}

	options.AddMoveArgs(cmd, mo)
	options.AddOutputArg(cmd, oo)
	for _, flagName := range []string{"from", "to"} {
		_ = cmd.RegisterFlagCompletionFunc(flagName, func(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return laneCompletions(toComplete), cobra.ShellCompDirectiveNoFileComp
		})
	}
	_ = cmd.RegisterFlagCompletionFunc("before", func(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return itemCompletions(toComplete), cobra.ShellCompDirectiveNoFileComp
	})
	topLevel.AddCommand(cmd)
}
