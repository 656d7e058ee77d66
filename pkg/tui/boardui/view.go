package boardui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/truncate"

	"tableflip.dev/lanes/pkg/board"
)

const (
	minLaneWidth = 18
	maxLaneWidth = 40
)

func (m Model) laneWidth() int {
	n := len(m.board.Lanes)
	if n == 0 || m.termWidth == 0 {
		return 28
	}
	w := m.termWidth/n - 4
	return clamp(w, minLaneWidth, maxLaneWidth)
}

func fit(s string, width int) string {
	if width <= 1 {
		return ""
	}
	return truncate.StringWithTail(s, uint(width), "…")
}

// View renders one column per lane plus the prompt and status lines.
func (m Model) View() string {
	width := m.laneWidth()
	cols := make([]string, 0, len(m.board.Lanes))
	for li := range m.board.Lanes {
		cols = append(cols, m.renderLane(li, width))
	}
	body := lipgloss.JoinHorizontal(lipgloss.Top, cols...)

	if m.mode == modeInput {
		body += "\n\n" + m.theme.Footer.Prompt.Render(m.promptLabel()) + m.input.View()
	}

	modeStr := map[mode]string{modeNormal: "NORMAL", modeCarry: "MOVE", modeInput: "INPUT"}[m.mode]
	return body + "\n\n" + m.theme.Footer.Status.Render(fmt.Sprintf("[%s] %s", modeStr, m.status))
}

func (m Model) promptLabel() string {
	switch m.act {
	case actionAddTitle:
		return "Add title: "
	case actionAddDescription:
		return "Add description: "
	case actionEditTitle:
		return "Edit title: "
	case actionEditDescription:
		return "Edit description: "
	case actionSearch:
		return "/"
	}
	return ""
}

func (m Model) renderLane(li, width int) string {
	l := m.board.Lanes[li]
	lines := []string{m.theme.Lane.Header.Render(fit(fmt.Sprintf("%s (%d)", l.Name, len(l.Items)), width))}

	carrying := m.mode == modeCarry && m.drag != nil
	marker := m.theme.Card.DropMarker.Render(strings.Repeat("─", width))
	slot := 0
	for i, it := range l.Items {
		isCarried := carrying && it.ID == m.drag.ItemID
		if carrying && li == m.hoverLane && !isCarried && slot == m.hoverSlot {
			lines = append(lines, marker)
		}
		lines = append(lines, m.renderCard(li, i, it, isCarried, width)...)
		if !isCarried {
			slot++
		}
	}
	if carrying && li == m.hoverLane && slot == m.hoverSlot {
		lines = append(lines, marker)
	}
	if len(l.Items) == 0 && !(carrying && li == m.hoverLane) {
		lines = append(lines, m.theme.Lane.Empty.Render("(empty)"))
	}

	style := m.theme.Lane.Frame
	if (!carrying && li == m.focus) || (carrying && li == m.hoverLane) {
		style = m.theme.Lane.FocusFrame
	}
	return style.Width(width + 2).Render(strings.Join(lines, "\n"))
}

func (m Model) renderCard(li, i int, it board.Item, carried bool, width int) []string {
	prefix := "  "
	title := fit(it.Title, width-len(prefix))
	switch {
	case carried:
		title = m.theme.Card.Carried.Render(title)
	case m.mode != modeCarry && li == m.focus && i == m.cursor[li]:
		prefix = "» "
		title = m.theme.Card.Cursor.Render(title)
	}
	out := []string{prefix + title}
	if it.Description != "" {
		out = append(out, "  "+m.theme.Card.Description.Render(fit(it.Description, width-2)))
	}
	return out
}

// Selected reports the card under the cursor.
func (m Model) Selected() (board.Item, bool) {
	return m.current()
}

// Board returns the board the UI is showing.
func (m Model) Board() board.Board {
	return m.board
}

// HoverTarget reports the lane and card the carried item would drop before;
// id is empty at a lane boundary or below the last card.
func (m Model) HoverTarget() (lane, id string, carrying bool) {
	if m.drag == nil {
		return "", "", false
	}
	lane, id = m.drag.Hovered()
	return lane, id, true
}
