package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/lanes/pkg/commands/options"
	"tableflip.dev/lanes/pkg/runner/show"
)

func addShow(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:     "show [lane]",
		Aliases: []string{"board"},
		Short:   "Print the board, or a single lane",
		Example: `
lanes show
lanes show "in progress" -k
lanes board --json
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			s, err := openBoard(cmd.Context())
			if err != nil {
				return oo.HandleError(err)
			}
			defer s.Close()

			r := show.Show{
				ShowID:     io.ShowID,
				JSON:       oo.JSON,
				Lane:       strings.Join(args, " "),
				Controller: s.Controller,
			}
			return oo.HandleError(r.Do(cmd.Context()))
		},
		ValidArgsFunction: func(_ *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return laneCompletions(toComplete), cobra.ShellCompDirectiveNoFileComp
		},
	}

	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
