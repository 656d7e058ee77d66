package board

import "strconv"

// AddRequest creates a new item in the intake lane.
type AddRequest struct {
	Title       string
	Description string
}

func (r AddRequest) Apply(b Board) Board {
	out, _ := Add(b, r)
	return out
}

// Add appends a new item to the first lane. Its id is the item count plus
// one; ids are not reused because items are never removed.
func Add(b Board, r AddRequest) (Board, Item) {
	if len(b.Lanes) == 0 {
		return b, Item{}
	}
	it := Item{
		ID:          strconv.Itoa(b.Count() + 1),
		Title:       r.Title,
		Description: r.Description,
		Lane:        b.Lanes[0].Name,
	}
	intake := b.Lanes[0].Items
	items := make([]Item, 0, len(intake)+1)
	items = append(items, intake...)
	items = append(items, it)
	return b.withLane(0, items), it
}
