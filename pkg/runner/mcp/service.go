// Package mcp provides the Model Context Protocol server integration for lanes.
package mcp

import (
	"context"
	"errors"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"

	"tableflip.dev/lanes/pkg/app"
	"tableflip.dev/lanes/pkg/board"
)

// Service adapts controller intents for the MCP tools and resources.
type Service struct {
	Controller *app.Controller
}

// ErrItemNotFound is returned when no item carries the requested id.
var ErrItemNotFound = errors.New("item not found")

// ItemDTO is a transport-friendly projection of an item.
type ItemDTO struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Lane        string `json:"lane"`
	Position    int    `json:"position"`
}

// LaneDTO is a lane with its items in order.
type LaneDTO struct {
	Name  string    `json:"name"`
	Count int       `json:"count"`
	Items []ItemDTO `json:"items"`
}

// BoardDTO is the whole board in lane order.
type BoardDTO struct {
	Lanes []LaneDTO `json:"lanes"`
	Total int       `json:"total"`
}

// MutationDTO reports the item touched by a mutation. Warning is set when the
// change was kept in memory but could not be saved.
type MutationDTO struct {
	Item    *ItemDTO `json:"item,omitempty"`
	Changed bool     `json:"changed"`
	Warning string   `json:"warning,omitempty"`
}

// MoveItemOptions captures the parameters of a move.
type MoveItemOptions struct {
	ID         string
	TargetLane string
	Position   string
}

// NewService builds a service around c.
func NewService(c *app.Controller) *Service {
	return &Service{Controller: c}
}

func (s *Service) ready() error {
	if s.Controller == nil {
		return errors.New("board is not configured")
	}
	return nil
}

// fresh picks up writes made by other lanes processes. A board that cannot
// be re-read is served from memory.
func (s *Service) fresh(ctx context.Context) error {
	if err := s.ready(); err != nil {
		return err
	}
	if err := s.Controller.Sync(ctx); err != nil {
		log.WithError(err).Warn("mcp: serving in-memory board")
	}
	return nil
}

// Board returns the current board.
func (s *Service) Board(ctx context.Context) (BoardDTO, error) {
	if err := s.fresh(ctx); err != nil {
		return BoardDTO{}, err
	}
	return toBoardDTO(s.Controller.State()), nil
}

// Item returns the item with id.
func (s *Service) Item(ctx context.Context, id string) (ItemDTO, error) {
	if err := s.fresh(ctx); err != nil {
		return ItemDTO{}, err
	}
	b := s.Controller.State()
	if dto, ok := findDTO(b, strings.TrimSpace(id)); ok {
		return dto, nil
	}
	return ItemDTO{}, fmt.Errorf("%w: %s", ErrItemNotFound, id)
}

// AddItem creates an item in the intake lane.
func (s *Service) AddItem(ctx context.Context, title, description string) (MutationDTO, error) {
	if err := s.ready(); err != nil {
		return MutationDTO{}, err
	}
	if strings.TrimSpace(title) == "" {
		return MutationDTO{}, errors.New("title is required")
	}
	b, it, err := s.Controller.AddItem(ctx, title, description)
	return mutation(b, it.ID, true, err)
}

// MoveItem moves an item from its current lane into TargetLane.
func (s *Service) MoveItem(ctx context.Context, opts MoveItemOptions) (MutationDTO, error) {
	if err := s.fresh(ctx); err != nil {
		return MutationDTO{}, err
	}
	layout := s.Controller.Layout()
	target, ok := layout.Resolve(opts.TargetLane)
	if !ok {
		return MutationDTO{}, fmt.Errorf("unknown lane %q (expected one of %s)", opts.TargetLane, strings.Join(layout, ", "))
	}
	pos := board.End()
	if strings.TrimSpace(opts.Position) != "" {
		p, err := board.ParsePosition(opts.Position)
		if err != nil {
			return MutationDTO{}, err
		}
		pos = p
	}
	current, ok := s.Controller.Find(opts.ID)
	if !ok {
		return MutationDTO{}, fmt.Errorf("%w: %s", ErrItemNotFound, opts.ID)
	}
	before := s.Controller.State()
	b, err := s.Controller.Move(ctx, board.MoveRequest{
		ItemID:     current.ID,
		SourceLane: current.Lane,
		TargetLane: target,
		Position:   pos,
	})
	return mutation(b, current.ID, !samePlacement(before, b, current.ID), err)
}

// EditItem replaces one field of an item.
func (s *Service) EditItem(ctx context.Context, id, field, value string) (MutationDTO, error) {
	if err := s.fresh(ctx); err != nil {
		return MutationDTO{}, err
	}
	f, err := board.ParseField(field)
	if err != nil {
		return MutationDTO{}, err
	}
	if f == board.FieldTitle && strings.TrimSpace(value) == "" {
		return MutationDTO{}, errors.New("title cannot be blank")
	}
	if _, ok := s.Controller.Find(id); !ok {
		return MutationDTO{}, fmt.Errorf("%w: %s", ErrItemNotFound, id)
	}
	b, err := s.Controller.EditField(ctx, board.EditRequest{ItemID: id, Field: f, Value: value})
	return mutation(b, id, true, err)
}

// Search returns the first hit, or every hit when all is set.
func (s *Service) Search(ctx context.Context, query string, all bool) ([]ItemDTO, error) {
	if err := s.fresh(ctx); err != nil {
		return nil, err
	}
	b := s.Controller.State()
	var hits []board.Item
	if all {
		hits = board.Matches(b, query)
	} else if it, ok := board.Search(b, query); ok {
		hits = []board.Item{it}
	}
	out := make([]ItemDTO, 0, len(hits))
	for _, it := range hits {
		dto, _ := findDTO(b, it.ID)
		out = append(out, dto)
	}
	return out, nil
}

func mutation(b board.Board, id string, changed bool, err error) (MutationDTO, error) {
	var se *app.SaveError
	out := MutationDTO{Changed: changed}
	if err != nil {
		if !errors.As(err, &se) {
			return MutationDTO{}, err
		}
		out.Warning = se.Error()
	}
	if dto, ok := findDTO(b, id); ok {
		out.Item = &dto
	}
	return out, nil
}

func samePlacement(a, b board.Board, id string) bool {
	al, ai, _ := a.Locate(id)
	bl, bi, _ := b.Locate(id)
	return al == bl && ai == bi
}

func findDTO(b board.Board, id string) (ItemDTO, bool) {
	l, i, ok := b.Locate(id)
	if !ok {
		return ItemDTO{}, false
	}
	return toItemDTO(b.Lanes[l].Items[i], i), true
}

func toItemDTO(it board.Item, pos int) ItemDTO {
	return ItemDTO{
		ID:          it.ID,
		Title:       it.Title,
		Description: it.Description,
		Lane:        it.Lane,
		Position:    pos,
	}
}

func toBoardDTO(b board.Board) BoardDTO {
	out := BoardDTO{Lanes: make([]LaneDTO, 0, len(b.Lanes))}
	for _, l := range b.Lanes {
		ld := LaneDTO{Name: l.Name, Count: len(l.Items), Items: make([]ItemDTO, 0, len(l.Items))}
		for i, it := range l.Items {
			ld.Items = append(ld.Items, toItemDTO(it, i))
		}
		out.Lanes = append(out.Lanes, ld)
		out.Total += len(l.Items)
	}
	return out
}
