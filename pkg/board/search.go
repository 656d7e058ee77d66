package board

import (
	"regexp"
)

// Search returns the first item, scanning lanes in order and items in lane
// order, whose Label matches query. The query is a case-insensitive regular
// expression; a query that does not compile is matched as literal text.
func Search(b Board, query string) (Item, bool) {
	re := compileQuery(query)
	for _, l := range b.Lanes {
		for _, it := range l.Items {
			if re.MatchString(it.Label()) {
				return it, true
			}
		}
	}
	return Item{}, false
}

// Matches returns every item Search would consider a hit, in scan order.
func Matches(b Board, query string) []Item {
	re := compileQuery(query)
	var out []Item
	for _, l := range b.Lanes {
		for _, it := range l.Items {
			if re.MatchString(it.Label()) {
				out = append(out, it)
			}
		}
	}
	return out
}

func compileQuery(query string) *regexp.Regexp {
	if re, err := regexp.Compile("(?i)" + query); err == nil {
		return re
	}
	return regexp.MustCompile("(?i)" + regexp.QuoteMeta(query))
}
