package commands

import (
	"context"
	"io"

	log "github.com/sirupsen/logrus"

	"tableflip.dev/lanes/pkg/app"
	"tableflip.dev/lanes/pkg/store"
)

// session is the configured store and the controller over it.
type session struct {
	Config     store.Config
	Gateway    store.Gateway
	Controller *app.Controller
}

func openBoard(ctx context.Context) (*session, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, err
	}
	setLogLevel(cfg.LogLevel())

	gw, err := store.Open(cfg)
	if err != nil {
		return nil, err
	}
	ctrl, err := app.New(ctx, gw, cfg.Layout())
	if err != nil {
		return nil, err
	}
	log.WithFields(log.Fields{
		"backend": cfg.Backend(),
		"lanes":   len(cfg.Layout()),
	}).Debug("board opened")
	return &session{Config: cfg, Gateway: gw, Controller: ctrl}, nil
}

// Watcher returns the gateway's change feed, if it has one.
func (s *session) Watcher() store.Watcher {
	if w, ok := s.Gateway.(store.Watcher); ok {
		return w
	}
	return nil
}

func (s *session) Close() error {
	if c, ok := s.Gateway.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
