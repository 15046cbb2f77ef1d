// Package router maps the two browser routes, "/" and "/pokemon/{id}", to
// screens and keeps the navigation history used by back navigation.
package router

import (
	"fmt"
	"strings"
)

// Screen identifies a screen of the browser.
type Screen int

const (
	ScreenList Screen = iota
	ScreenDetail
)

func (s Screen) String() string {
	switch s {
	case ScreenList:
		return "list"
	case ScreenDetail:
		return "detail"
	default:
		return fmt.Sprintf("screen(%d)", int(s))
	}
}

// Route is a parsed location. ID is only set for ScreenDetail and is kept
// as the raw string parameter.
type Route struct {
	Screen Screen
	ID     string
}

// List is the root route.
func List() Route { return Route{Screen: ScreenList} }

// Detail is the route of one pokemon.
func Detail(id string) Route { return Route{Screen: ScreenDetail, ID: id} }

// Path renders the route back to its path form.
func (r Route) Path() string {
	if r.Screen == ScreenDetail {
		return "/pokemon/" + r.ID
	}
	return "/"
}

// Parse resolves a path to a route.
func Parse(path string) (Route, error) {
	trimmed := strings.Trim(strings.TrimSpace(path), "/")
	if trimmed == "" {
		return List(), nil
	}

	parts := strings.Split(trimmed, "/")
	if len(parts) == 2 && parts[0] == "pokemon" && parts[1] != "" {
		return Detail(parts[1]), nil
	}
	return Route{}, fmt.Errorf("router: no route for %q", path)
}
