package menu

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// ErrNoResolver is returned when a route or action link is rendered by a
// Builder created without a Resolver.
var ErrNoResolver = errors.New("no URL resolver configured")

// Resolver generates the URLs of item links. It is supplied by the host
// application; see the route package for a table based implementation.
type Resolver interface {
	// URL returns the URL of path with extra segments appended. secure forces https.
	URL(path string, extra []string, secure bool) (string, error)

	// Route returns the URL of the named route.
	Route(name string, params []string) (string, error)

	// Action returns the URL of a controller action.
	Action(action string, params []string) (string, error)
}

// pathResolver is used when no Resolver is configured. It only knows how to
// build root relative paths.
type pathResolver struct{}

func (pathResolver) URL(path string, extra []string, _ bool) (string, error) {
	segments := []string{strings.Trim(path, "/")}
	for _, e := range extra {
		segments = append(segments, url.PathEscape(e))
	}
	return "/" + strings.Trim(strings.Join(segments, "/"), "/"), nil
}

func (pathResolver) Route(name string, _ []string) (string, error) {
	return "", fmt.Errorf("route %q: %w", name, ErrNoResolver)
}

func (pathResolver) Action(action string, _ []string) (string, error) {
	return "", fmt.Errorf("action %q: %w", action, ErrNoResolver)
}

// isAbsolute reports whether u carries a URI scheme.
func isAbsolute(u string) bool {
	parsed, err := url.Parse(u)
	return err == nil && parsed.Scheme != ""
}

// splitTarget splits a link option into its target and extra parameters.
// The option is either a string or a list whose first element is the target.
func splitTarget(v any) (string, []string) {
	switch t := v.(type) {
	case nil:
		return "", nil
	case string:
		return t, nil
	case []string:
		if len(t) == 0 {
			return "", nil
		}
		return t[0], t[1:]
	case []any:
		if len(t) == 0 {
			return "", nil
		}
		params := make([]string, 0, len(t)-1)
		for _, p := range t[1:] {
			params = append(params, fmt.Sprint(p))
		}
		return fmt.Sprint(t[0]), params
	}
	return fmt.Sprint(v), nil
}
