// Package route provides a table based URL resolver for menus.
package route

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

var (
	// ErrUnknownRoute is returned for a route name that was never registered.
	ErrUnknownRoute = errors.New("unknown route")

	// ErrUnknownAction is returned for an action that was never registered.
	ErrUnknownAction = errors.New("unknown action")

	// ErrMissingParameter is returned when a required placeholder has no value.
	ErrMissingParameter = errors.New("missing route parameter")
)

var placeholder = regexp.MustCompile(`\{(\w+)(\?)?\}`)

// Table generates URLs from a base URL, named routes and controller actions.
// Patterns use {name} placeholders, {name?} for optional ones. Placeholders
// are filled in order from the parameters; remaining parameters are appended
// as path segments.
type Table struct {
	base    *url.URL
	routes  map[string]string
	actions map[string]string
}

// New creates a table. baseURL may be empty to generate root relative URLs.
func New(baseURL string) (*Table, error) {
	base, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parsing base url %q: %w", baseURL, err)
	}

	return &Table{
		base:    base,
		routes:  make(map[string]string),
		actions: make(map[string]string),
	}, nil
}

// Handle registers a named route.
func (t *Table) Handle(name, pattern string) *Table {
	t.routes[name] = pattern
	return t
}

// HandleAction registers a controller action.
func (t *Table) HandleAction(action, pattern string) *Table {
	t.actions[action] = pattern
	return t
}

// URL returns the URL of path with extra segments appended.
func (t *Table) URL(path string, extra []string, secure bool) (string, error) {
	segments := make([]string, 0, len(extra)+1)
	if p := strings.Trim(path, "/"); p != "" {
		segments = append(segments, p)
	}
	for _, e := range extra {
		segments = append(segments, url.PathEscape(e))
	}

	return t.build("/"+strings.Join(segments, "/"), secure), nil
}

// Route returns the URL of a named route.
func (t *Table) Route(name string, params []string) (string, error) {
	pattern, ok := t.routes[name]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownRoute, name)
	}

	path, err := expand(pattern, params)
	if err != nil {
		return "", fmt.Errorf("route %q: %w", name, err)
	}
	return t.build(path, false), nil
}

// Action returns the URL of a controller action.
func (t *Table) Action(action string, params []string) (string, error) {
	pattern, ok := t.actions[action]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownAction, action)
	}

	path, err := expand(pattern, params)
	if err != nil {
		return "", fmt.Errorf("action %q: %w", action, err)
	}
	return t.build(path, false), nil
}

func (t *Table) build(path string, secure bool) string {
	prefix := strings.TrimRight(t.base.Path, "/")
	if t.base.Host == "" {
		return prefix + path
	}

	scheme := t.base.Scheme
	switch {
	case secure:
		scheme = "https"
	case scheme == "":
		scheme = "http"
	}
	return scheme + "://" + t.base.Host + prefix + path
}

func expand(pattern string, params []string) (string, error) {
	var missing string

	path := placeholder.ReplaceAllStringFunc(pattern, func(m string) string {
		sub := placeholder.FindStringSubmatch(m)
		if len(params) == 0 {
			if sub[2] == "" && missing == "" {
				missing = sub[1]
			}
			return ""
		}
		v := params[0]
		params = params[1:]
		return url.PathEscape(v)
	})
	if missing != "" {
		return "", fmt.Errorf("%w: %s", ErrMissingParameter, missing)
	}

	path = "/" + strings.Trim(strings.ReplaceAll(path, "//", "/"), "/")
	for _, p := range params {
		path = strings.TrimRight(path, "/") + "/" + url.PathEscape(p)
	}
	return path, nil
}
