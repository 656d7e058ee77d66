package options

import (
	"github.com/spf13/cobra"
)

// ItemOptions
type ItemOptions struct {
	Title       string
	Description string
}

func AddDescriptionArg(cmd *cobra.Command, o *ItemOptions) {
	cmd.Flags().StringVarP(&o.Description, "description", "d", "",
		"Longer description shown under the title.")
}

// EditOptions
type EditOptions struct {
	Title       string
	Description string
}

func AddEditArgs(cmd *cobra.Command, o *EditOptions) {
	cmd.Flags().StringVarP(&o.Title, "title", "t", "",
		"New title.")
	cmd.Flags().StringVarP(&o.Description, "description", "d", "",
		`New description, use --description="" to clear it.`)
}

// TitleSet reports whether --title was given.
func (o *EditOptions) TitleSet(cmd *cobra.Command) bool {
	return cmd.Flags().Changed("title")
}

// DescriptionSet reports whether --description was given.
func (o *EditOptions) DescriptionSet(cmd *cobra.Command) bool {
	return cmd.Flags().Changed("description")
}
