package types

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// ErrUnknownRoute is returned by ParseRoute for paths no screen serves
var ErrUnknownRoute = errors.New("unknown route")

// Screen identifies a top-level screen
type Screen int

const (
	LandingScreen Screen = iota
	CategoryScreen
)

// String returns the string representation of the screen
func (s Screen) String() string {
	switch s {
	case LandingScreen:
		return "landing"
	case CategoryScreen:
		return "category"
	default:
		return "unknown"
	}
}

// Route is a parsed navigation target
type Route struct {
	screen   Screen
	category string
}

// LandingRoute returns the route of the landing screen
func LandingRoute() Route { return Route{screen: LandingScreen} }

// CategoryRoute returns the route of the listing screen for category.
// The category is free-form and never checked against known categories.
func CategoryRoute(category string) Route {
	return Route{screen: CategoryScreen, category: category}
}

func (r Route) Screen() Screen   { return r.screen }
func (r Route) Category() string { return r.category }

// Path returns the URL path of the route
// Landing: /
// Category: /category/{category} (path-escaped)
func (r Route) Path() string {
	switch r.screen {
	case CategoryScreen:
		return "/category/" + url.PathEscape(r.category)
	default:
		return "/"
	}
}

// ParseRoute parses a URL path into a Route
func ParseRoute(raw string) (Route, error) {
	p := strings.TrimSpace(raw)
	if p == "" || p == "/" {
		return LandingRoute(), nil
	}

	rest, ok := strings.CutPrefix(p, "/category/")
	if !ok {
		return Route{}, fmt.Errorf("%w: %q", ErrUnknownRoute, raw)
	}
	rest = strings.TrimSuffix(rest, "/")
	if rest == "" || strings.Contains(rest, "/") {
		return Route{}, fmt.Errorf("%w: %q", ErrUnknownRoute, raw)
	}

	category, err := url.PathUnescape(rest)
	if err != nil {
		return Route{}, fmt.Errorf("unescape category: %w", err)
	}
	return CategoryRoute(category), nil
}
