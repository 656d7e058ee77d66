package board

import "fmt"

// InvariantError reports the first breach found by Board.Validate.
type InvariantError struct {
	Lane   string
	ItemID string
	Reason string
}

func (e *InvariantError) Error() string {
	switch {
	case e.ItemID != "":
		return fmt.Sprintf("board: lane %q item %s: %s", e.Lane, e.ItemID, e.Reason)
	case e.Lane != "":
		return fmt.Sprintf("board: lane %q: %s", e.Lane, e.Reason)
	}
	return "board: " + e.Reason
}
