package theme

import "github.com/charmbracelet/lipgloss/v2"

// Theme centralizes Lip Gloss styles for the board UI.
type Theme struct {
	Lane   LaneTheme
	Card   CardTheme
	Footer FooterTheme
}

// LaneTheme styles the framed lane columns.
type LaneTheme struct {
	Frame      lipgloss.Style
	FocusFrame lipgloss.Style
	Header     lipgloss.Style
	Empty      lipgloss.Style
}

// CardTheme styles cards inside a lane.
type CardTheme struct {
	Cursor      lipgloss.Style
	Carried     lipgloss.Style
	Description lipgloss.Style
	DropMarker  lipgloss.Style
}

// FooterTheme groups styles used by the prompt and status line.
type FooterTheme struct {
	Status lipgloss.Style
	Prompt lipgloss.Style
}

// Default returns the built-in theme.
func Default() Theme {
	frame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	return Theme{
		Lane: LaneTheme{
			Frame:      frame,
			FocusFrame: frame.BorderForeground(lipgloss.Color("218")),
			Header:     lipgloss.NewStyle().Bold(true),
			Empty:      lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Italic(true),
		},
		Card: CardTheme{
			Cursor:      lipgloss.NewStyle().Foreground(lipgloss.Color("218")).Bold(true),
			Carried:     lipgloss.NewStyle().Faint(true).Strikethrough(true),
			Description: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			DropMarker:  lipgloss.NewStyle().Foreground(lipgloss.Color("212")),
		},
		Footer: FooterTheme{
			Status: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
			Prompt: lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		},
	}
}
