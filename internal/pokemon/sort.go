package pokemon

import "fmt"

// SortKey selects the ordering of the list.
type SortKey string

const (
	SortIDAsc    SortKey = "id_asc"
	SortIDDesc   SortKey = "id_desc"
	SortNameAsc  SortKey = "name_asc"
	SortNameDesc SortKey = "name_desc"
)

// SortKeys lists the keys in the order the sort control offers them.
func SortKeys() []SortKey {
	return []SortKey{SortIDAsc, SortIDDesc, SortNameAsc, SortNameDesc}
}

// ParseSortKey validates a textual key.
func ParseSortKey(value string) (SortKey, error) {
	for _, key := range SortKeys() {
		if string(key) == value {
			return key, nil
		}
	}
	return "", fmt.Errorf("unknown sort key %q (want one of id_asc, id_desc, name_asc, name_desc)", value)
}

// Label returns the text shown next to the radio in the sort control.
func (k SortKey) Label() string {
	switch k {
	case SortIDAsc:
		return "Number (Ascending)"
	case SortIDDesc:
		return "Number (Descending)"
	case SortNameAsc:
		return "Name (A → Z)"
	case SortNameDesc:
		return "Name (Z → A)"
	default:
		return string(k)
	}
}

// ByNumber reports whether the key orders by id.
func (k SortKey) ByNumber() bool {
	return k == SortIDAsc || k == SortIDDesc
}
