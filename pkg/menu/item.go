package menu

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Item represents a single node of the menu tree.
type Item struct {
	// ID is the unique identifier of the item within its Builder.
	ID string

	// Title is the text of the item. Raw items render it unescaped.
	Title string

	// Nickname is the lower camel case form of the title, used by Builder.Get.
	Nickname string

	// ParentID is the ID of the parent item, empty for root items.
	ParentID string

	// Link is the anchor of the item, nil when the item has no target.
	Link *Link

	// Divider holds the attributes of the separator rendered after the item,
	// nil when there is none.
	Divider Attributes

	attributes Attributes
	data       map[string]any
	raw        bool
	active     bool
	builder    *Builder
}

// Link is the anchor of an item.
type Link struct {
	// Attributes are rendered on the anchor element.
	Attributes Attributes

	// Href overrides the resolved URL when set.
	Href string

	// target holds the url, route, action, secure and prefix options.
	target Attributes
}

// Target returns the link options the URL is resolved from.
func (l *Link) Target() Attributes {
	return l.target.Clone()
}

// Attributes returns the HTML attributes of the item.
func (i *Item) Attributes() Attributes {
	return i.attributes
}

// Attribute returns the HTML attribute stored under key.
func (i *Item) Attribute(key string) (any, bool) {
	return i.attributes.Get(key)
}

// HasAttribute reports whether the HTML attribute key is set.
func (i *Item) HasAttribute(key string) bool {
	return i.attributes.Has(key)
}

// SetAttribute sets an HTML attribute of the item.
func (i *Item) SetAttribute(key string, value any) *Item {
	i.attributes.Set(key, value)
	return i
}

// Data returns the metadata stored under key.
func (i *Item) Data(key string) (any, bool) {
	v, ok := i.data[strings.ToLower(key)]
	return v, ok
}

// SetData stores metadata on the item. Metadata is never rendered but can be
// queried with Builder.Where.
func (i *Item) SetData(key string, value any) *Item {
	if i.data == nil {
		i.data = make(map[string]any)
	}
	i.data[strings.ToLower(key)] = value
	return i
}

// IsRaw reports whether the title is rendered without escaping.
func (i *Item) IsRaw() bool {
	return i.raw
}

// IsActive reports whether the item has been activated.
func (i *Item) IsActive() bool {
	return i.active
}

// Add adds a child item.
func (i *Item) Add(title string, opts Attributes) *Item {
	opts = opts.Clone()
	opts.Set("parent", i.ID)
	return i.builder.Add(title, opts)
}

// Raw adds a child item whose title is rendered unescaped.
func (i *Item) Raw(title string, opts Attributes) *Item {
	opts = opts.Clone()
	opts.Set("parent", i.ID)
	return i.builder.Raw(title, opts)
}

// Divide renders a separator after the item. The class "divider" is merged
// into attrs.
func (i *Item) Divide(attrs Attributes) *Item {
	d := attrs.Clone()
	class, _ := MergeClass(Attrs("class", "divider"), d)
	d.Set("class", class)
	i.Divider = d
	return i
}

// Parent returns the parent item, nil for roots and dangling references.
func (i *Item) Parent() *Item {
	if i.ParentID == "" {
		return nil
	}
	return i.builder.Find(i.ParentID)
}

// Children returns the direct children of the item.
func (i *Item) Children() Collection {
	return i.builder.Children(i.ID)
}

// HasChildren reports whether any item references this item as its parent.
func (i *Item) HasChildren() bool {
	return i.builder.HasChildren(i.ID)
}

// URL returns the URL the item links to, "" when it has no link.
func (i *Item) URL() (string, error) {
	if i.Link == nil {
		return "", nil
	}
	if i.Link.Href != "" {
		return i.Link.Href, nil
	}
	return i.builder.dispatch(i.Link.target)
}

// Property returns a queryable property of the item: one of the built-in
// fields, then metadata, then HTML attributes.
func (i *Item) Property(name string) (any, bool) {
	switch strings.ToLower(name) {
	case "id":
		return i.ID, true
	case "title":
		return i.Title, true
	case "name", "nickname":
		return i.Nickname, true
	case "parent":
		return i.ParentID, true
	case "active":
		return i.active, true
	case "raw":
		return i.raw, true
	}

	if v, ok := i.Data(name); ok {
		return v, true
	}

	return i.attributes.Get(name)
}

func (i *Item) String() string {
	return fmt.Sprintf("%s (%s)", i.Title, i.ID)
}

// nickname converts a title to lower camel case: "About us" becomes "aboutUs".
func nickname(title string) string {
	words := strings.FieldsFunc(title, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	caser := cases.Title(language.Und, cases.NoLower)
	for n, w := range words {
		words[n] = caser.String(w)
	}

	s := strings.Join(words, "")
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return ""
	}
	return string(unicode.ToLower(r)) + s[size:]
}
