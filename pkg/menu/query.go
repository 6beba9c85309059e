package menu

import (
	"regexp"
	"slices"
	"strings"
)

// Direction is a sort order.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

var whereMethod = regexp.MustCompile(`^[Ww]here([a-zA-Z0-9_]+)$`)

// Where returns the items whose property attr equals value. Items without
// the property never match. When recursive is set every match is followed by
// all of its descendants, depth first, and each item appears once.
func (b *Builder) Where(attr string, value any, recursive bool) Collection {
	out := Collection{}
	seen := make(map[*Item]bool)

	for _, item := range b.items {
		v, ok := item.Property(attr)
		if !ok || !looseEqual(v, value) {
			continue
		}
		if !recursive {
			out = append(out, item)
			continue
		}
		out = b.appendTree(out, item, seen)
	}

	return out
}

func (b *Builder) appendTree(out Collection, item *Item, seen map[*Item]bool) Collection {
	if seen[item] {
		return out
	}
	seen[item] = true
	out = append(out, item)

	for _, child := range b.Children(item.ID) {
		out = b.appendTree(out, child, seen)
	}
	return out
}

// WhereMethod runs the query named by a whereX method name, e.g.
// WhereMethod("whereClass", "nav", false) queries the class attribute. It reports
// false when method is not a where query.
func (b *Builder) WhereMethod(method string, value any, recursive bool) (Collection, bool) {
	m := whereMethod.FindStringSubmatch(method)
	if m == nil {
		return nil, false
	}
	return b.Where(strings.ToLower(m[1]), value, recursive), true
}

// WhereID returns the items with the given ID.
func (b *Builder) WhereID(id string, recursive bool) Collection {
	return b.Where("id", id, recursive)
}

// WhereName returns the items with the given nickname.
func (b *Builder) WhereName(name string, recursive bool) Collection {
	return b.Where("name", name, recursive)
}

// WhereTitle returns the items with the given title.
func (b *Builder) WhereTitle(title string, recursive bool) Collection {
	return b.Where("title", title, recursive)
}

// WhereParent returns the children of the given item ID. With recursive set
// it returns all of its descendants.
func (b *Builder) WhereParent(id string, recursive bool) Collection {
	return b.Where("parent", id, recursive)
}

// Get returns the first item with the given nickname, nil if none.
func (b *Builder) Get(name string) *Item {
	return b.WhereName(name, false).First()
}

// Find returns the item with the given ID, nil if none.
func (b *Builder) Find(id string) *Item {
	return b.WhereID(id, false).First()
}

// Roots returns the items without a parent.
func (b *Builder) Roots() Collection {
	return b.WhereParent("", false)
}

// Children returns the direct children of the item with the given ID.
func (b *Builder) Children(id string) Collection {
	if id == "" {
		return Collection{}
	}
	return b.items.Filter(func(item *Item) bool { return item.ParentID == id })
}

// HasChildren reports whether any item has the given parent ID.
func (b *Builder) HasChildren(id string) bool {
	return id != "" && slices.ContainsFunc(b.items, func(item *Item) bool {
		return item.ParentID == id
	})
}

// Filter keeps only the items fn returns true for.
func (b *Builder) Filter(fn func(*Item) bool) *Builder {
	if fn != nil {
		b.items = b.items.Filter(fn)
	}
	return b
}

// Reorder replaces the items with the result of fn.
func (b *Builder) Reorder(fn func([]*Item) []*Item) *Builder {
	if fn != nil {
		b.items = Collection(fn(slices.Clone(b.items)))
	}
	return b
}

// SortBy sorts the items by a property. Items with equal values keep their
// relative order. Values compare as numbers when all of them are numeric,
// otherwise as strings.
func (b *Builder) SortBy(key string, dir Direction) *Builder {
	return b.SortByFunc(func(item *Item) any {
		v, _ := item.Property(key)
		return v
	}, dir)
}

// SortByFunc sorts the items by the value fn returns for each of them.
func (b *Builder) SortByFunc(fn func(*Item) any, dir Direction) *Builder {
	b.items = slices.Clone(b.items)
	keys := newSortKeys(b.items, fn)
	slices.SortStableFunc(b.items, func(x, y *Item) int {
		c := keys.compare(x, y)
		if dir == Desc {
			return -c
		}
		return c
	})
	return b
}
