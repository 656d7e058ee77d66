// Package boardui is the interactive board: one column per lane, keyboard
// pick-up and drop of cards, inline add, edit and search.
package boardui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/lanes/pkg/app"
	"tableflip.dev/lanes/pkg/board"
	"tableflip.dev/lanes/pkg/tui/theme"
)

type mode int

const (
	modeNormal mode = iota
	modeCarry
	modeInput
)

type action int

const (
	actionNone action = iota
	actionAddTitle
	actionAddDescription
	actionEditTitle
	actionEditDescription
	actionSearch
)

const normalHelp = "h/l lanes, j/k cards, space pick up, a add, e/E edit, / search, q quit"

// messages
type errMsg struct{ err error }
type boardChangedMsg struct{}

// Model contains UI state
type Model struct {
	ctrl *app.Controller
	ctx  context.Context

	board board.Board
	mode  mode
	act   action

	focus  int   // lane index
	cursor []int // per-lane card index

	drag      *board.DragSession
	hoverLane int
	hoverSlot int

	input        textinput.Model
	pendingTitle string
	editID       string

	status string
	theme  theme.Theme

	changed <-chan struct{}

	termWidth  int
	termHeight int
}

// New creates a UI model backed by the controller.
func New(ctrl *app.Controller) Model {
	ti := textinput.New()
	ti.Placeholder = "Type here"
	ti.CharLimit = 256
	ti.Prompt = ""
	ti.Styles.Cursor.Color = lipgloss.Color("218")
	ti.Styles.Cursor.Shape = tea.CursorUnderline

	m := Model{
		ctrl:   ctrl,
		ctx:    context.Background(),
		mode:   modeNormal,
		input:  ti,
		status: normalHelp,
		theme:  theme.Default(),
	}
	if ctrl != nil {
		m.setBoard(ctrl.State())
	}
	return m
}

// Init waits for board changes published outside the UI.
func (m Model) Init() tea.Cmd {
	return m.waitForChange()
}

func (m Model) waitForChange() tea.Cmd {
	if m.changed == nil {
		return nil
	}
	ch := m.changed
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return boardChangedMsg{}
	}
}

// setBoard adopts b and keeps every cursor inside its lane.
func (m *Model) setBoard(b board.Board) {
	m.board = b
	if len(m.cursor) != len(b.Lanes) {
		m.cursor = make([]int, len(b.Lanes))
	}
	for i, l := range b.Lanes {
		m.cursor[i] = clamp(m.cursor[i], 0, len(l.Items)-1)
	}
	m.focus = clamp(m.focus, 0, len(b.Lanes)-1)
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func (m *Model) current() (board.Item, bool) {
	if m.focus >= len(m.board.Lanes) {
		return board.Item{}, false
	}
	items := m.board.Lanes[m.focus].Items
	if len(items) == 0 {
		return board.Item{}, false
	}
	return items[m.cursor[m.focus]], true
}

// selectItem moves focus and cursor onto id.
func (m *Model) selectItem(id string) {
	if li, i, ok := m.board.Locate(id); ok {
		m.focus = li
		m.cursor[li] = i
	}
}

// report records the outcome of an intent. A save failure keeps the change
// and shows a warning.
func (m *Model) report(ok string, err error) {
	var se *app.SaveError
	switch {
	case err == nil:
		m.status = ok
	case errors.As(err, &se):
		m.status = "WARN: " + se.Error()
	default:
		m.status = "ERR: " + err.Error()
	}
}

// Update handles messages and keybindings
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
	case errMsg:
		m.status = "ERR: " + msg.err.Error()
	case boardChangedMsg:
		if m.ctrl != nil {
			m.setBoard(m.ctrl.State())
			if m.mode == modeCarry {
				m.syncCarry()
			}
		}
		cmds = append(cmds, m.waitForChange())
	case tea.KeyPressMsg:
		switch m.mode {
		case modeNormal:
			cmds = append(cmds, m.updateNormal(msg))
		case modeCarry:
			m.updateCarry(msg)
		case modeInput:
			cmds = append(cmds, m.updateInput(msg))
		}
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) updateNormal(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "q", "ctrl+c":
		return tea.Quit
	case "h", "left":
		m.focus = clamp(m.focus-1, 0, len(m.board.Lanes)-1)
	case "l", "right":
		m.focus = clamp(m.focus+1, 0, len(m.board.Lanes)-1)
	case "j", "down":
		if m.focus < len(m.board.Lanes) {
			m.cursor[m.focus] = clamp(m.cursor[m.focus]+1, 0, len(m.board.Lanes[m.focus].Items)-1)
		}
	case "k", "up":
		if m.focus < len(m.board.Lanes) {
			m.cursor[m.focus] = clamp(m.cursor[m.focus]-1, 0, len(m.board.Lanes[m.focus].Items)-1)
		}
	case "space":
		if it, ok := m.current(); ok {
			m.drag = board.Pick(it)
			m.hoverLane = m.focus
			m.hoverSlot = m.cursor[m.focus]
			m.syncCarry()
			m.mode = modeCarry
			m.status = fmt.Sprintf("Carrying %q: h/l lane, j/k position, enter drop, esc cancel", it.Title)
		}
	case "a":
		m.pendingTitle = ""
		return m.prompt(actionAddTitle, "Title of the new item", "")
	case "e":
		if it, ok := m.current(); ok {
			m.editID = it.ID
			return m.prompt(actionEditTitle, "Title", it.Title)
		}
	case "E":
		if it, ok := m.current(); ok {
			m.editID = it.ID
			return m.prompt(actionEditDescription, "Description", it.Description)
		}
	case "/":
		return m.prompt(actionSearch, "Search (regular expression)", "")
	}
	return nil
}

// carrySlots lists the hover targets of lane li: the cards other than the
// one being carried. A slot equal to len(carrySlots) is below the last card.
func (m *Model) carrySlots(li int) []board.Item {
	items := m.board.Lanes[li].Items
	out := make([]board.Item, 0, len(items))
	for _, it := range items {
		if m.drag != nil && it.ID == m.drag.ItemID {
			continue
		}
		out = append(out, it)
	}
	return out
}

// syncCarry clamps the hover slot and mirrors it into the drag session.
func (m *Model) syncCarry() {
	if m.drag == nil || len(m.board.Lanes) == 0 {
		return
	}
	m.hoverLane = clamp(m.hoverLane, 0, len(m.board.Lanes)-1)
	slots := m.carrySlots(m.hoverLane)
	m.hoverSlot = clamp(m.hoverSlot, 0, len(slots))
	lane := m.board.Lanes[m.hoverLane].Name
	switch {
	case len(slots) == 0:
		m.drag.HoverLane(lane)
	case m.hoverSlot == len(slots):
		m.drag.HoverTail(lane)
	default:
		m.drag.HoverItem(lane, slots[m.hoverSlot].ID)
	}
}

func (m *Model) updateCarry(msg tea.KeyPressMsg) {
	switch msg.String() {
	case "h", "left":
		m.hoverLane--
		m.hoverSlot = 0
	case "l", "right":
		m.hoverLane++
		m.hoverSlot = 0
	case "j", "down":
		m.hoverSlot++
	case "k", "up":
		m.hoverSlot--
	case "esc", "q":
		m.drag = nil
		m.mode = modeNormal
		m.status = "Move cancelled"
		return
	case "enter", "space":
		m.drop()
		return
	}
	m.syncCarry()
}

func (m *Model) drop() {
	d := m.drag
	m.drag = nil
	m.mode = modeNormal
	if d == nil || m.ctrl == nil {
		return
	}
	target := m.board.Lanes[m.hoverLane]
	req := d.Drop(target.Name, len(target.Items))
	b, err := m.ctrl.Move(m.ctx, req)
	m.setBoard(b)
	m.selectItem(req.ItemID)
	m.report("Moved to "+target.Name, err)
}

func (m *Model) prompt(a action, placeholder, value string) tea.Cmd {
	m.mode = modeInput
	m.act = a
	m.input.Placeholder = placeholder
	m.input.SetValue(value)
	m.input.CursorEnd()
	cmds := []tea.Cmd{textinput.Blink}
	if cmd := m.input.Focus(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

func (m *Model) closeInput(status string) {
	m.mode = modeNormal
	m.act = actionNone
	m.input.Reset()
	m.input.Blur()
	m.status = status
}

func (m *Model) updateInput(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		m.pendingTitle = ""
		m.editID = ""
		m.closeInput("Cancelled")
		return nil
	case "enter":
		return m.submit()
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

func (m *Model) submit() tea.Cmd {
	value := m.input.Value()
	if m.ctrl == nil {
		m.closeInput("No board")
		return nil
	}
	switch m.act {
	case actionAddTitle:
		if strings.TrimSpace(value) == "" {
			m.closeInput("Add cancelled")
			return nil
		}
		m.pendingTitle = value
		m.input.Reset()
		return m.prompt(actionAddDescription, "Description (optional)", "")
	case actionAddDescription:
		b, it, err := m.ctrl.AddItem(m.ctx, m.pendingTitle, value)
		m.pendingTitle = ""
		m.closeInput("")
		m.setBoard(b)
		m.selectItem(it.ID)
		m.report("Added "+it.ID, err)
	case actionEditTitle, actionEditDescription:
		field := board.FieldTitle
		if m.act == actionEditDescription {
			field = board.FieldDescription
		}
		id := m.editID
		m.editID = ""
		if field == board.FieldTitle && strings.TrimSpace(value) == "" {
			m.closeInput("Edit cancelled")
			return nil
		}
		m.closeInput("")
		b, err := m.ctrl.EditField(m.ctx, board.EditRequest{ItemID: id, Field: field, Value: value})
		m.setBoard(b)
		m.report("Edited "+id, err)
	case actionSearch:
		m.closeInput("")
		if it, ok := m.ctrl.Search(value); ok {
			m.selectItem(it.ID)
			m.status = fmt.Sprintf("Found %s in %s", it.ID, it.Lane)
		} else {
			m.status = fmt.Sprintf("No match for %q", value)
		}
	default:
		m.closeInput("")
	}
	return nil
}
