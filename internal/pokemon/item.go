package pokemon

import (
	"fmt"
	"strconv"
	"strings"
)

// MinID and MaxID bound the id space reachable from the detail screen.
const (
	MinID = 1
	MaxID = 1008
)

// ListItem is one entry of the browsable list.
type ListItem struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// IDFromURL extracts the numeric id from a resource URL such as
// "https://pokeapi.co/api/v2/pokemon/25/".
func IDFromURL(resourceURL string) (int, error) {
	trimmed := strings.TrimRight(strings.TrimSpace(resourceURL), "/")
	idx := strings.LastIndex(trimmed, "/")
	if idx < 0 || idx == len(trimmed)-1 {
		return 0, fmt.Errorf("no id segment in %q", resourceURL)
	}
	id, err := strconv.Atoi(trimmed[idx+1:])
	if err != nil {
		return 0, fmt.Errorf("parse id from %q: %w", resourceURL, err)
	}
	return id, nil
}

// PaddedNumber formats a route id the way the detail header shows it:
// "#" followed by the id left-padded with zeros to three characters.
// Ids longer than three characters are left untouched.
func PaddedNumber(id string) string {
	if len(id) >= 3 {
		return "#" + id
	}
	return "#" + strings.Repeat("0", 3-len(id)) + id
}
