package commands

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/lanes/pkg/board"
	"tableflip.dev/lanes/pkg/store"
)

func addCompletions(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generates shell completion scripts",
		Long: `To load completion run

. <(lanes completion)

To configure your bash shell to load completions for each session add to your bashrc

# ~/.bashrc or ~/.profile
. <(lanes completion)
`,
		ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
		Args:      cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			shell := "bash"
			if len(args) > 0 {
				shell = args[0]
			}
			switch shell {
			case "bash":
				return topLevel.GenBashCompletion(os.Stdout)
			case "zsh":
				return topLevel.GenZshCompletion(os.Stdout)
			case "fish":
				return topLevel.GenFishCompletion(os.Stdout, true)
			case "powershell":
				return topLevel.GenPowerShellCompletionWithDesc(os.Stdout)
			}
			return fmt.Errorf("unsupported shell %q", shell)
		},
	}

	topLevel.AddCommand(cmd)
}

func itemArgCompletion(_ *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return itemCompletions(toComplete), cobra.ShellCompDirectiveNoFileComp
}

// completionBoard loads the board without seeding or logging.
func completionBoard() (board.Board, board.Layout, bool) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return board.Board{}, nil, false
	}
	gw, err := store.Open(cfg)
	if err != nil {
		return board.Board{}, nil, false
	}
	b, err := gw.Load(context.Background())
	if err != nil {
		return board.Board{}, nil, false
	}
	return b, cfg.Layout(), true
}

func itemCompletions(toComplete string) []string {
	b, _, ok := completionBoard()
	if !ok {
		return nil
	}
	return completeItems(b, toComplete)
}

// completeItems offers ids starting with toComplete; when none do,
// toComplete is used as a search query instead.
func completeItems(b board.Board, toComplete string) []string {
	var hits []board.Item
	for _, it := range board.Matches(b, "") {
		if strings.HasPrefix(it.ID, toComplete) {
			hits = append(hits, it)
		}
	}
	if len(hits) == 0 && toComplete != "" {
		hits = board.Matches(b, toComplete)
	}
	out := make([]string, 0, len(hits))
	for _, it := range hits {
		out = append(out, it.ID+"\t"+it.Lane+": "+it.Title)
	}
	return out
}

func laneCompletions(toComplete string) []string {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil
	}
	return completeLanes(cfg.Layout(), toComplete)
}

func completeLanes(layout board.Layout, toComplete string) []string {
	out := make([]string, 0, len(layout))
	for _, name := range layout {
		if strings.HasPrefix(strings.ToLower(name), strings.ToLower(toComplete)) {
			out = append(out, name)
		}
	}
	return out
}
