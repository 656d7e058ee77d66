package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/lanes/pkg/commands/options"
	"tableflip.dev/lanes/pkg/runner/layout"
)

func addLayout(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Print the configured lanes with item counts",
		Example: `
lanes layout
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			s, err := openBoard(cmd.Context())
			if err != nil {
				return oo.HandleError(err)
			}
			defer s.Close()

			k := layout.Layout{Controller: s.Controller, JSON: oo.JSON}
			return oo.HandleError(k.Do(cmd.Context()))
		},
	}

	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
