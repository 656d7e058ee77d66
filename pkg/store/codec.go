package store

import (
	"encoding/json"
	"fmt"

	"tableflip.dev/lanes/pkg/board"
)

// wireLane and wireItem are the persisted shape:
//
//	[{"todoStatus": "To Do", "items": [{"id","title","description","status"}]}]
type wireLane struct {
	TodoStatus string     `json:"todoStatus"`
	Items      []wireItem `json:"items"`
}

type wireItem struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

// Encode serializes b into the persisted format.
func Encode(b board.Board) ([]byte, error) {
	lanes := make([]wireLane, 0, len(b.Lanes))
	for _, l := range b.Lanes {
		wl := wireLane{TodoStatus: l.Name, Items: make([]wireItem, 0, len(l.Items))}
		for _, it := range l.Items {
			wl.Items = append(wl.Items, wireItem{
				ID:          it.ID,
				Title:       it.Title,
				Description: it.Description,
				Status:      l.Name,
			})
		}
		lanes = append(lanes, wl)
	}
	return json.Marshal(lanes)
}

// Decode parses data and checks it against layout. Lanes are put back into
// layout order and lanes absent from data come back empty. Anything that
// would break a board invariant (unknown or repeated lanes, items whose status
// disagrees with their lane, missing or repeated ids) is reported as
// ErrCorrupt.
func Decode(data []byte, layout board.Layout) (board.Board, error) {
	var lanes []wireLane
	if err := json.Unmarshal(data, &lanes); err != nil {
		return board.Board{}, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}

	b := board.New(layout)
	filled := make(map[string]bool, len(lanes))
	for _, wl := range lanes {
		idx := layout.Index(wl.TodoStatus)
		if idx < 0 {
			return board.Board{}, fmt.Errorf("%w: unknown lane %q", ErrCorrupt, wl.TodoStatus)
		}
		if filled[wl.TodoStatus] {
			return board.Board{}, fmt.Errorf("%w: lane %q stored twice", ErrCorrupt, wl.TodoStatus)
		}
		filled[wl.TodoStatus] = true
		items := make([]board.Item, 0, len(wl.Items))
		for _, wi := range wl.Items {
			items = append(items, board.Item{
				ID:          wi.ID,
				Title:       wi.Title,
				Description: wi.Description,
				Lane:        wi.Status,
			})
		}
		b.Lanes[idx].Items = items
	}

	if err := b.Validate(layout); err != nil {
		return board.Board{}, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	return b, nil
}
