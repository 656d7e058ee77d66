// Package board holds the lane-ordered task model and the pure operations
// that transform it. Boards are snapshots: operations build new lane slices
// and never write to the board they were given.
package board

import "fmt"

// Lane is a named, ordered bucket of items.
type Lane struct {
	Name  string `json:"name"`
	Items []Item `json:"items"`
}

// Board is the whole task board, one lane per layout entry in layout order.
type Board struct {
	Lanes []Lane `json:"lanes"`
}

// New returns a board with an empty lane for every layout name.
func New(layout Layout) Board {
	b := Board{Lanes: make([]Lane, 0, len(layout))}
	for _, name := range layout {
		b.Lanes = append(b.Lanes, Lane{Name: name, Items: []Item{}})
	}
	return b
}

var seedItems = []Item{
	{Title: "Do Finance Task TEMG4940", Description: "Finish writing task and quiz"},
	{Title: "Arrange Bali Trip", Description: "Create excel for places, link, and expenses"},
	{Title: "Coffee Chat with Fel", Description: "Confirm to Fel again by tomorrow"},
}

// Seed returns the starter board used when nothing usable is stored: one
// sample item per lane.
func Seed(layout Layout) Board {
	b := New(layout)
	for i := range b.Lanes {
		sample := seedItems[i%len(seedItems)]
		sample.ID = fmt.Sprint(i + 1)
		sample.Lane = b.Lanes[i].Name
		b.Lanes[i].Items = append(b.Lanes[i].Items, sample)
	}
	return b
}

// Count is the number of items across all lanes.
func (b Board) Count() int {
	n := 0
	for _, l := range b.Lanes {
		n += len(l.Items)
	}
	return n
}

// Names lists the lane names in board order.
func (b Board) Names() Layout {
	out := make(Layout, 0, len(b.Lanes))
	for _, l := range b.Lanes {
		out = append(out, l.Name)
	}
	return out
}

func (b Board) laneIndex(name string) int {
	for i, l := range b.Lanes {
		if l.Name == name {
			return i
		}
	}
	return -1
}

// Lane returns the lane with the given name.
func (b Board) Lane(name string) (Lane, bool) {
	i := b.laneIndex(name)
	if i < 0 {
		return Lane{}, false
	}
	return b.Lanes[i], true
}

// Locate returns the lane and item index of id.
func (b Board) Locate(id string) (lane, index int, ok bool) {
	for li, l := range b.Lanes {
		if i := indexOf(l.Items, id); i >= 0 {
			return li, i, true
		}
	}
	return -1, -1, false
}

// Find returns the item with the given id from whichever lane holds it.
func (b Board) Find(id string) (Item, bool) {
	li, i, ok := b.Locate(id)
	if !ok {
		return Item{}, false
	}
	return b.Lanes[li].Items[i], true
}

// Clone deep-copies the board so the copy shares no slices with b.
func (b Board) Clone() Board {
	out := Board{Lanes: make([]Lane, len(b.Lanes))}
	for i, l := range b.Lanes {
		out.Lanes[i] = Lane{Name: l.Name, Items: append([]Item{}, l.Items...)}
	}
	return out
}

// Validate checks the board against layout: lanes match the layout in order,
// every item is tagged with its lane and no id appears twice.
func (b Board) Validate(layout Layout) error {
	if len(b.Lanes) != len(layout) {
		return &InvariantError{Reason: fmt.Sprintf("board has %d lanes, layout has %d", len(b.Lanes), len(layout))}
	}
	seen := make(map[string]string, b.Count())
	for i, l := range b.Lanes {
		if l.Name != layout[i] {
			return &InvariantError{Lane: l.Name, Reason: fmt.Sprintf("lane %d is %q, layout expects %q", i, l.Name, layout[i])}
		}
		for _, it := range l.Items {
			if it.ID == "" {
				return &InvariantError{Lane: l.Name, Reason: "item without id"}
			}
			if it.Lane != l.Name {
				return &InvariantError{Lane: l.Name, ItemID: it.ID, Reason: fmt.Sprintf("item tagged %q", it.Lane)}
			}
			if prev, dup := seen[it.ID]; dup {
				return &InvariantError{Lane: l.Name, ItemID: it.ID, Reason: fmt.Sprintf("id also in %q", prev)}
			}
			seen[it.ID] = l.Name
		}
	}
	return nil
}

func indexOf(items []Item, id string) int {
	for i, it := range items {
		if it.ID == id {
			return i
		}
	}
	return -1
}

// withLane returns a copy of b whose lane i is replaced by items. Other
// lanes keep their backing arrays; nothing ever writes through them.
func (b Board) withLane(i int, items []Item) Board {
	lanes := append([]Lane(nil), b.Lanes...)
	lanes[i] = Lane{Name: lanes[i].Name, Items: items}
	return Board{Lanes: lanes}
}
