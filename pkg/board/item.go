package board

import "fmt"

// Item is a single task card. Lane always names the lane holding the item.
type Item struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Lane        string `json:"lane"`
}

// Label is the text search and completion match against.
func (it Item) Label() string {
	if it.Description == "" {
		return it.Title
	}
	return it.Title + ": " + it.Description
}

func (it Item) String() string {
	return fmt.Sprintf("%s [%s] %s", it.ID, it.Lane, it.Label())
}

// Field names an editable item field.
type Field string

const (
	FieldTitle       Field = "title"
	FieldDescription Field = "description"
)

// ParseField maps a user supplied field name to a Field.
func ParseField(s string) (Field, error) {
	switch Field(s) {
	case FieldTitle, FieldDescription:
		return Field(s), nil
	}
	return "", fmt.Errorf("unknown field %q, expected title or description", s)
}
