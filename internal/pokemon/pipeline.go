package pokemon

import (
	"slices"
	"strconv"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Filter applies search, generation filter and sort to items, in that
// order, and returns a new slice. items is never modified.
//
// The search keeps names containing the lowercased term and ids whose
// decimal form equals the term exactly. Filters.Types is not applied.
func Filter(items []ListItem, search string, filters Filters, key SortKey) []ListItem {
	out := make([]ListItem, 0, len(items))
	needle := strings.ToLower(search)
	gen, hasGen := Generation(filters.Generation)
	hasGen = hasGen && filters.Generation != AllGenerations

	for _, item := range items {
		if search != "" && !strings.Contains(item.Name, needle) && strconv.Itoa(item.ID) != search {
			continue
		}
		if hasGen && !gen.Contains(item.ID) {
			continue
		}
		out = append(out, item)
	}

	Sort(out, key)
	return out
}

// Sort stable-sorts items in place by key. Unknown keys leave the order unchanged.
func Sort(items []ListItem, key SortKey) {
	switch key {
	case SortIDAsc:
		slices.SortStableFunc(items, func(a, b ListItem) int { return a.ID - b.ID })
	case SortIDDesc:
		slices.SortStableFunc(items, func(a, b ListItem) int { return b.ID - a.ID })
	case SortNameAsc, SortNameDesc:
		// Collators keep scratch buffers, so each sort gets its own.
		col := collate.New(language.English)
		sign := 1
		if key == SortNameDesc {
			sign = -1
		}
		slices.SortStableFunc(items, func(a, b ListItem) int {
			return sign * col.CompareString(a.Name, b.Name)
		})
	}
}
