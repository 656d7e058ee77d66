package board

// DragSession is the ephemeral state of one pick-up/drop gesture. It records
// the card being carried and what it currently hovers; it never touches a
// board. Drop turns the session into the MoveRequest the controller applies.
type DragSession struct {
	ItemID     string
	SourceLane string

	hoverLane string
	hoverItem string
	hoverTail bool
}

// Pick starts a gesture carrying it.
func Pick(it Item) *DragSession {
	return &DragSession{ItemID: it.ID, SourceLane: it.Lane, hoverLane: it.Lane}
}

// HoverItem records the card under the pointer.
func (d *DragSession) HoverItem(lane, id string) {
	d.hoverLane = lane
	d.hoverItem = id
	d.hoverTail = false
}

// HoverLane records the lane boundary (the lane header or empty space) under
// the pointer.
func (d *DragSession) HoverLane(lane string) {
	d.hoverLane = lane
	d.hoverItem = ""
	d.hoverTail = false
}

// HoverTail records the space below the last card of lane.
func (d *DragSession) HoverTail(lane string) {
	d.hoverLane = lane
	d.hoverItem = ""
	d.hoverTail = true
}

// Hovered reports the current hover target; id is empty at a lane boundary
// or below the last card.
func (d *DragSession) Hovered() (lane, id string) {
	return d.hoverLane, d.hoverItem
}

// Drop ends the gesture over targetLane. Hovering a card inserts before it,
// hovering the lane boundary inserts at the start, and hovering below the
// last card or a lane with no items (per targetSize) appends.
func (d *DragSession) Drop(targetLane string, targetSize int) MoveRequest {
	pos := End()
	switch {
	case targetSize == 0:
	case d.hoverLane != targetLane:
	case d.hoverTail:
	case d.hoverItem == "":
		pos = Start()
	default:
		pos = Before(d.hoverItem)
	}
	return MoveRequest{
		ItemID:     d.ItemID,
		SourceLane: d.SourceLane,
		TargetLane: targetLane,
		Position:   pos,
	}
}
