package board

// Operation is a board transformation. Every mutation of a board goes through
// Apply so the item lane tags and lane membership cannot drift apart.
type Operation interface {
	Apply(Board) Board
}

// MoveRequest relocates ItemID from SourceLane to Position in TargetLane.
type MoveRequest struct {
	ItemID     string
	SourceLane string
	TargetLane string
	Position   Position
}

func (r MoveRequest) Apply(b Board) Board { return Move(b, r) }

// Move removes the item from its source lane, retags it, and inserts it into
// the target lane. The insertion index is computed after the removal, so a
// same-lane move before the item's current successor is a no-op rather than
// an off-by-one.
//
// A request naming an item that is not in SourceLane, or a lane that does not
// exist, returns b unchanged.
func Move(b Board, r MoveRequest) Board {
	src := b.laneIndex(r.SourceLane)
	dst := b.laneIndex(r.TargetLane)
	if src < 0 || dst < 0 {
		return b
	}
	from := indexOf(b.Lanes[src].Items, r.ItemID)
	if from < 0 {
		return b
	}

	srcItems := b.Lanes[src].Items
	moved := srcItems[from]
	rest := make([]Item, 0, len(srcItems)-1)
	rest = append(rest, srcItems[:from]...)
	rest = append(rest, srcItems[from+1:]...)
	out := b.withLane(src, rest)

	moved.Lane = out.Lanes[dst].Name

	target := out.Lanes[dst].Items
	at := r.Position.insertIndex(target)
	items := make([]Item, 0, len(target)+1)
	items = append(items, target[:at]...)
	items = append(items, moved)
	items = append(items, target[at:]...)
	return out.withLane(dst, items)
}
