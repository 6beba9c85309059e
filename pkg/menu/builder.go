package menu

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
)

// Builder builds a menu and renders it as HTML.
//
// A Builder holds request scoped state and is not safe for concurrent use.
// Create one per menu per request.
type Builder struct {
	name     string
	items    Collection
	groups   groupStack
	config   Config
	resolver Resolver
	current  string
	newID    func() string
	log      *slog.Logger
}

// Option is a functional option for configuring a Builder.
type Option func(*Builder)

// WithConfig replaces the default options.
func WithConfig(cfg Config) Option {
	return func(b *Builder) { b.config = cfg }
}

// WithResolver sets the resolver used to build link URLs.
func WithResolver(r Resolver) Option {
	return func(b *Builder) {
		if r != nil {
			b.resolver = r
		}
	}
}

// WithCurrentURL sets the URL of the request being served. Items linking to
// it are activated on render when AutoActivate is enabled.
func WithCurrentURL(u string) Option {
	return func(b *Builder) { b.current = u }
}

// WithIDGenerator sets the function generating IDs for items added without one.
func WithIDGenerator(fn func() string) Option {
	return func(b *Builder) {
		if fn != nil {
			b.newID = fn
		}
	}
}

// WithLogger sets the logger of the builder.
func WithLogger(l *slog.Logger) Option {
	return func(b *Builder) {
		if l != nil {
			b.log = l
		}
	}
}

// New creates an empty menu.
//
// Default configuration:
//   - Config: DefaultConfig()
//   - Resolver: root relative paths only
//   - IDs: random UUIDs
//   - Logger: slog.Default()
func New(name string, opts ...Option) *Builder {
	b := &Builder{
		name:     name,
		config:   DefaultConfig(),
		resolver: pathResolver{},
		newID:    uuid.NewString,
		log:      slog.Default(),
	}

	for _, opt := range opts {
		opt(b)
	}

	b.log = b.log.With("menu", name)

	return b
}

// Name returns the name of the menu.
func (b *Builder) Name() string {
	return b.name
}

// Config returns the current options.
func (b *Builder) Config() Config {
	return b.config
}

// Override sets a single option, see Config.Override.
func (b *Builder) Override(key string, value any) error {
	return b.config.Override(key, value)
}

// Add adds an item to the menu.
//
// opts holds the HTML attributes of the item together with the reserved
// options url, route, action, secure, parent and raw. The id option sets
// the item ID, otherwise one is generated.
func (b *Builder) Add(title string, opts Attributes) *Item {
	id := opts.String("id")
	if id == "" {
		id = b.newID()
	}

	item := &Item{
		ID:         id,
		Title:      title,
		Nickname:   nickname(title),
		ParentID:   parentRef(opts),
		attributes: b.groups.extract(opts),
		raw:        opts.Bool("raw"),
		builder:    b,
	}

	if target := linkTarget(opts); target != nil && !item.raw {
		if prefix, ok := b.groups.currentPrefix(); ok {
			target.Set("prefix", prefix)
		}
		item.Link = &Link{target: target}
	}

	b.items = append(b.items, item)

	return item
}

// Raw adds an item whose title is rendered without escaping.
func (b *Builder) Raw(title string, opts Attributes) *Item {
	opts = opts.Clone()
	opts.Set("raw", true)
	return b.Add(title, opts)
}

// Group adds the items created by fn with attrs as shared defaults. Groups
// nest: prefixes are joined and classes merged.
func (b *Builder) Group(attrs Attributes, fn func(*Builder)) {
	b.groups.push(attrs)
	defer b.groups.pop()

	fn(b)
}

// Divide adds a separator after the last item. It does nothing when the
// menu is empty.
func (b *Builder) Divide(attrs Attributes) *Builder {
	last := b.items.Last()
	if last == nil {
		b.log.Debug("divider ignored, menu has no items")
		return b
	}

	last.Divide(attrs)

	return b
}

// All returns every item in order.
func (b *Builder) All() Collection {
	return b.items
}

// First returns the first item, nil when empty.
func (b *Builder) First() *Item {
	return b.items.First()
}

// Last returns the last item, nil when empty.
func (b *Builder) Last() *Item {
	return b.items.Last()
}

// dispatch resolves link options into a URL. url takes precedence over
// route, route over action.
func (b *Builder) dispatch(target Attributes) (string, error) {
	switch {
	case target.Has("url"):
		return b.resolveURL(target)
	case target.Has("route"):
		v, _ := target.Get("route")
		name, params := splitTarget(v)
		return b.resolver.Route(name, params)
	case target.Has("action"):
		v, _ := target.Get("action")
		action, params := splitTarget(v)
		return b.resolver.Action(action, params)
	}
	return "", nil
}

func (b *Builder) resolveURL(target Attributes) (string, error) {
	v, _ := target.Get("url")
	path, extra := splitTarget(v)

	if isAbsolute(path) {
		return path, nil
	}

	if !strings.HasPrefix(path, "/") {
		path = target.String("prefix") + "/" + path
	}

	return b.resolver.URL(path, extra, target.Bool("secure"))
}

// linkTarget picks the link options out of opts, nil when the item has no
// url, route or action.
func linkTarget(opts Attributes) Attributes {
	if !opts.Has("url") && !opts.Has("route") && !opts.Has("action") {
		return nil
	}

	target := Attributes{}
	for _, key := range []string{"url", "route", "action", "secure"} {
		if v, ok := opts.Get(key); ok {
			target.Set(key, v)
		}
	}
	return target
}

// parentRef accepts the parent option as an ID or an *Item.
func parentRef(opts Attributes) string {
	v, _ := opts.Get("parent")
	switch p := v.(type) {
	case nil:
		return ""
	case *Item:
		if p == nil {
			return ""
		}
		return p.ID
	case string:
		return p
	}
	return fmt.Sprint(v)
}
