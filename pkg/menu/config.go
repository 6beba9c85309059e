package menu

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	// ErrUnknownOption is returned when overriding an option that does not exist.
	ErrUnknownOption = errors.New("unknown menu option")

	// ErrInvalidOption is returned when an option value has the wrong type or
	// is out of range.
	ErrInvalidOption = errors.New("invalid menu option")
)

// ActiveElement selects which element receives the active class.
type ActiveElement string

const (
	// ActiveItem marks the item element (li, div) as active.
	ActiveItem ActiveElement = "item"

	// ActiveLink marks the anchor of the item as active.
	ActiveLink ActiveElement = "link"
)

// Option keys accepted by Config.Get and Config.Override.
const (
	OptViewShare       = "view_share"
	OptAutoActivate    = "auto_activate"
	OptActivateParents = "activate_parents"
	OptActiveClass     = "active_class"
	OptRestful         = "restful"
	OptRestBase        = "rest_base"
	OptActiveElement   = "active_element"
)

// Config holds the rendering options of a Builder.
type Config struct {
	// ViewShare exposes the menu to the page the host application renders.
	ViewShare bool `yaml:"view_share"`

	// AutoActivate marks the item matching the current URL as active.
	AutoActivate bool `yaml:"auto_activate"`

	// ActivateParents propagates the active state to all ancestors.
	ActivateParents bool `yaml:"activate_parents"`

	// ActiveClass is the class added to active elements.
	ActiveClass string `yaml:"active_class"`

	// Restful matches the current path against item paths and everything below them.
	Restful bool `yaml:"restful"`

	// RestBase lists path segments stripped from the current path before
	// RESTful matching.
	RestBase RestBase `yaml:"rest_base"`

	// ActiveElement selects whether the item or its link gets ActiveClass.
	ActiveElement ActiveElement `yaml:"active_element"`
}

// DefaultConfig returns the options a Builder starts with.
func DefaultConfig() Config {
	return Config{
		ViewShare:       false,
		AutoActivate:    true,
		ActivateParents: true,
		ActiveClass:     "active",
		Restful:         false,
		ActiveElement:   ActiveItem,
	}
}

// Validate checks the option values.
func (c Config) Validate() error {
	switch c.ActiveElement {
	case ActiveItem, ActiveLink:
	default:
		return fmt.Errorf("%w: %s must be %q or %q, got %q",
			ErrInvalidOption, OptActiveElement, ActiveItem, ActiveLink, c.ActiveElement)
	}
	return nil
}

// Get returns the option stored under key.
func (c Config) Get(key string) (any, bool) {
	switch strings.ToLower(key) {
	case OptViewShare:
		return c.ViewShare, true
	case OptAutoActivate:
		return c.AutoActivate, true
	case OptActivateParents:
		return c.ActivateParents, true
	case OptActiveClass:
		return c.ActiveClass, true
	case OptRestful:
		return c.Restful, true
	case OptRestBase:
		return []string(c.RestBase), true
	case OptActiveElement:
		return string(c.ActiveElement), true
	}
	return nil, false
}

// Override sets a single option.
func (c *Config) Override(key string, value any) error {
	key = strings.ToLower(key)

	switch key {
	case OptViewShare:
		return setBool(key, &c.ViewShare, value)
	case OptAutoActivate:
		return setBool(key, &c.AutoActivate, value)
	case OptActivateParents:
		return setBool(key, &c.ActivateParents, value)
	case OptRestful:
		return setBool(key, &c.Restful, value)
	case OptActiveClass:
		s, ok := value.(string)
		if !ok {
			return fmt.Errorf("%w: %s must be a string, got %T", ErrInvalidOption, key, value)
		}
		c.ActiveClass = s
		return nil
	case OptRestBase:
		base, err := toRestBase(value)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidOption, key, err)
		}
		c.RestBase = base
		return nil
	case OptActiveElement:
		s, _ := value.(string)
		next := *c
		next.ActiveElement = ActiveElement(s)
		if err := next.Validate(); err != nil {
			return err
		}
		*c = next
		return nil
	}

	return fmt.Errorf("%w: %q", ErrUnknownOption, key)
}

func setBool(key string, dst *bool, value any) error {
	b, ok := value.(bool)
	if !ok {
		return fmt.Errorf("%w: %s must be a bool, got %T", ErrInvalidOption, key, value)
	}
	*dst = b
	return nil
}

// RestBase is a list of base path segments. In YAML it may be written as a
// single string or a list.
type RestBase []string

// UnmarshalYAML accepts a scalar or a sequence of scalars.
func (r *RestBase) UnmarshalYAML(value *yaml.Node) error {
	var v any
	if err := value.Decode(&v); err != nil {
		return err
	}
	base, err := toRestBase(v)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*r = base
	return nil
}

func toRestBase(value any) (RestBase, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case string:
		if v == "" {
			return nil, nil
		}
		return RestBase{v}, nil
	case []string:
		return RestBase(v), nil
	case RestBase:
		return v, nil
	case []any:
		out := make(RestBase, 0, len(v))
		for _, e := range v {
			s, ok := e.(string)
			if !ok {
				return nil, fmt.Errorf("expected string, got %T", e)
			}
			out = append(out, s)
		}
		return out, nil
	}
	return nil, fmt.Errorf("expected string or list of strings, got %T", value)
}
