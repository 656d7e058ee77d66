package boardui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea/v2"
	log "github.com/sirupsen/logrus"

	"tableflip.dev/lanes/pkg/app"
	"tableflip.dev/lanes/pkg/board"
	"tableflip.dev/lanes/pkg/store"
)

// Run launches the board UI. When watcher is not nil the board is reloaded
// whenever another process writes it.
func Run(ctx context.Context, ctrl *app.Controller, watcher store.Watcher) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	changed := make(chan struct{}, 1)
	unsubscribe := ctrl.Subscribe(func(board.Board) {
		select {
		case changed <- struct{}{}:
		default:
		}
	})
	defer unsubscribe()

	if watcher != nil {
		if err := ctrl.Follow(ctx, watcher); err != nil {
			log.WithError(err).Warn("boardui: not watching for external changes")
		}
	}

	m := New(ctrl)
	m.ctx = ctx
	m.changed = changed
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
