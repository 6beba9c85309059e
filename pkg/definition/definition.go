// Package definition loads menus declared in YAML and builds them.
package definition

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mchmarny/navmenu/pkg/menu"
	"github.com/mchmarny/navmenu/pkg/route"
)

// ErrInvalidDefinition is returned for definitions that parse but cannot be built.
var ErrInvalidDefinition = errors.New("invalid menu definition")

// File is the root of a definition file.
type File struct {
	// Title of the site rendering the menus.
	Title string `yaml:"title,omitempty"`

	// BaseURL is prepended to generated URLs. Empty generates root relative URLs.
	BaseURL string `yaml:"base_url,omitempty"`

	// Options are the defaults of every menu.
	Options menu.Config `yaml:"options"`

	// Routes maps route names to path patterns.
	Routes map[string]string `yaml:"routes,omitempty"`

	// Actions maps controller actions to path patterns.
	Actions map[string]string `yaml:"actions,omitempty"`

	// Menus are built in order.
	Menus []Menu `yaml:"menus"`
}

// Menu declares a single menu.
type Menu struct {
	// Name identifies the menu.
	Name string `yaml:"name"`

	// Type is the markup: ul (default), ol or div.
	Type string `yaml:"type,omitempty"`

	// Attributes of the root element.
	Attributes menu.Attributes `yaml:"attributes,omitempty"`

	// ChildAttributes of the nested sub menu elements.
	ChildAttributes menu.Attributes `yaml:"child_attributes,omitempty"`

	// Options override the file options for this menu.
	Options menu.Attributes `yaml:"options,omitempty"`

	// Items of the menu.
	Items []Item `yaml:"items,omitempty"`
}

// Item declares an item, or a group of items when Group is set.
type Item struct {
	// Title of the item.
	Title string `yaml:"title,omitempty"`

	// Raw renders the title without escaping.
	Raw bool `yaml:"raw,omitempty"`

	// Options are passed to Builder.Add: url, route, action, secure, id and
	// HTML attributes.
	Options menu.Attributes `yaml:"options,omitempty"`

	// Divider adds a separator after the item with these attributes.
	Divider *menu.Attributes `yaml:"divider,omitempty"`

	// Group turns the entry into a group: Items are added with these shared
	// attributes instead of as children.
	Group menu.Attributes `yaml:"group,omitempty"`

	// Items are the children of the item, or the members of the group.
	Items []Item `yaml:"items,omitempty"`
}

// Load reads and parses a definition file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading menu definition: %w", err)
	}

	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Parse parses a definition. Options missing from the document keep their
// defaults.
func Parse(data []byte) (*File, error) {
	f := &File{Options: menu.DefaultConfig()}
	if err := yaml.Unmarshal(data, f); err != nil {
		return nil, fmt.Errorf("parsing menu definition: %w", err)
	}

	if err := f.Validate(); err != nil {
		return nil, err
	}
	return f, nil
}

// Validate checks the menus can be built.
func (f *File) Validate() error {
	if err := f.Options.Validate(); err != nil {
		return err
	}

	seen := make(map[string]bool)
	for n, m := range f.Menus {
		if m.Name == "" {
			return fmt.Errorf("%w: menu %d has no name", ErrInvalidDefinition, n)
		}
		if seen[m.Name] {
			return fmt.Errorf("%w: duplicate menu %q", ErrInvalidDefinition, m.Name)
		}
		seen[m.Name] = true

		switch m.Type {
		case "", "ul", "ol", "div":
		default:
			return fmt.Errorf("%w: menu %q has unsupported type %q", ErrInvalidDefinition, m.Name, m.Type)
		}

		if _, err := m.Config(f.Options); err != nil {
			return fmt.Errorf("menu %q: %w", m.Name, err)
		}
		if err := validateItems(m.Name, m.Items); err != nil {
			return err
		}
	}
	return nil
}

func validateItems(menuName string, items []Item) error {
	for _, it := range items {
		if it.Group == nil && it.Title == "" {
			return fmt.Errorf("%w: menu %q has an item without title", ErrInvalidDefinition, menuName)
		}
		if err := validateItems(menuName, it.Items); err != nil {
			return err
		}
	}
	return nil
}

// Resolver returns the URL resolver for the routes and actions of the file.
func (f *File) Resolver() (*route.Table, error) {
	t, err := route.New(f.BaseURL)
	if err != nil {
		return nil, err
	}
	for name, pattern := range f.Routes {
		t.Handle(name, pattern)
	}
	for action, pattern := range f.Actions {
		t.HandleAction(action, pattern)
	}
	return t, nil
}

// Menu returns the declaration of the named menu.
func (f *File) Menu(name string) (Menu, bool) {
	for _, m := range f.Menus {
		if m.Name == name {
			return m, true
		}
	}
	return Menu{}, false
}

// Build builds every menu of the file for a request to currentURL.
func (f *File) Build(currentURL string, opts ...menu.Option) (*menu.Set, error) {
	resolver, err := f.Resolver()
	if err != nil {
		return nil, err
	}

	base := []menu.Option{menu.WithResolver(resolver), menu.WithCurrentURL(currentURL)}
	set := menu.NewSet(append(base, opts...)...)

	for _, m := range f.Menus {
		cfg, err := m.Config(f.Options)
		if err != nil {
			return nil, fmt.Errorf("menu %q: %w", m.Name, err)
		}
		set.Make(m.Name, m.Apply, menu.WithConfig(cfg))
	}
	return set, nil
}

// Config returns the options of the menu: defaults overridden by the menu
// options.
func (m Menu) Config(defaults menu.Config) (menu.Config, error) {
	cfg := defaults
	for _, opt := range m.Options {
		if err := cfg.Override(opt.Key, opt.Value); err != nil {
			return menu.Config{}, err
		}
	}
	return cfg, nil
}

// Render renders a built menu with the markup declared for it.
func (m Menu) Render(b *menu.Builder) (string, error) {
	return b.As(m.Type, m.Attributes, m.ChildAttributes)
}

// Apply adds the items of the menu to b.
func (m Menu) Apply(b *menu.Builder) {
	addItems(b, m.Items, "")
}

func addItems(b *menu.Builder, items []Item, parentID string) {
	for _, it := range items {
		if it.Group != nil {
			b.Group(it.Group, func(b *menu.Builder) {
				addItems(b, it.Items, parentID)
			})
			continue
		}

		opts := it.Options.Clone()
		if parentID != "" {
			opts.Set("parent", parentID)
		}

		var item *menu.Item
		if it.Raw {
			item = b.Raw(it.Title, opts)
		} else {
			item = b.Add(it.Title, opts)
		}

		if it.Divider != nil {
			item.Divide(*it.Divider)
		}

		addItems(b, it.Items, item.ID)
	}
}
