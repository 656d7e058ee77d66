package board

// EditRequest replaces one field of the item with ItemID.
type EditRequest struct {
	ItemID string
	Field  Field
	Value  string
}

func (r EditRequest) Apply(b Board) Board { return Edit(b, r) }

// Edit returns a board where the item's field holds Value. Items are found by
// id wherever they sit, so an edit that races a move still lands. Unknown ids
// and fields leave the board unchanged.
func Edit(b Board, r EditRequest) Board {
	li, i, ok := b.Locate(r.ItemID)
	if !ok {
		return b
	}
	items := append([]Item(nil), b.Lanes[li].Items...)
	switch r.Field {
	case FieldTitle:
		items[i].Title = r.Value
	case FieldDescription:
		items[i].Description = r.Value
	default:
		return b
	}
	return b.withLane(li, items)
}
