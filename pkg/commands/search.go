package commands

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/lanes/pkg/commands/options"
	"tableflip.dev/lanes/pkg/runner/search"
)

func addSearch(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}
	all := false
	query := ""

	cmd := &cobra.Command{
		Use:   "search <query...>",
		Short: "Find the first item whose title or description matches",
		Long: `Find the first item, scanning lanes in order, whose title or
description matches the query. The query is a case-insensitive regular
expression; text that is not a valid expression is matched literally.`,
		Example: `
lanes search bali
lanes search "^coffee" --json
lanes search task --all
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires a query")
			}
			query = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s, err := openBoard(cmd.Context())
			if err != nil {
				return oo.HandleError(err)
			}
			defer s.Close()

			r := search.Search{
				Query:      query,
				All:        all,
				JSON:       oo.JSON,
				Controller: s.Controller,
			}
			return oo.HandleError(r.Do(cmd.Context()))
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, "Print every match, not just the first.")
	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
