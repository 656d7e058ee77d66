package commands

import (
	"strings"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	verbose bool
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "lanes",
		Short: base.Wrap80("A personal task board on the command line."),
		Long: base.Wrap80("Keep items in ordered lanes, move them between lanes, " +
			"edit and search them. Every change is saved as it happens."),
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				log.SetLevel(log.DebugLevel)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug output.")

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addShow(topLevel)
	addAdd(topLevel)
	addMove(topLevel)
	addEdit(topLevel)
	addSearch(topLevel)
	addLayout(topLevel)
	addUI(topLevel)
	addMCP(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
}

// setLogLevel applies the configured level unless --verbose already raised it.
func setLogLevel(level string) {
	if verbose || strings.TrimSpace(level) == "" {
		return
	}
	lvl, err := log.ParseLevel(level)
	if err != nil {
		log.WithField("level", level).Warn("unknown log level, keeping default")
		return
	}
	log.SetLevel(lvl)
}
