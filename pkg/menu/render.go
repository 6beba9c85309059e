package menu

import (
	"errors"
	"fmt"
	"html"
	"strings"
)

// ErrParentCycle is returned when an item is its own ancestor.
var ErrParentCycle = errors.New("menu items form a parent cycle")

// Render renders the items below parentID as a sequence of child elements
// of tag: li for ul and ol, tag itself otherwise. Sub menus are wrapped in
// tag with childAttrs. An empty parentID renders the root items.
func (b *Builder) Render(tag, parentID string, childAttrs Attributes) (string, error) {
	if err := b.autoActivate(); err != nil {
		return "", err
	}

	branch := make(map[string]bool)
	if parentID != "" {
		branch[parentID] = true
	}

	var sb strings.Builder
	if err := b.render(&sb, tag, parentID, childAttrs, branch); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// render writes the items below parentID. branch holds the IDs of the items
// being rendered around them.
func (b *Builder) render(sb *strings.Builder, tag, parentID string, childAttrs Attributes, branch map[string]bool) error {
	itemTag := tag
	if tag == "ul" || tag == "ol" {
		itemTag = "li"
	}

	for _, item := range b.level(parentID) {
		sb.WriteString("<" + itemTag + item.attributes.HTML() + ">")

		if item.Link != nil {
			href, err := item.URL()
			if err != nil {
				return fmt.Errorf("resolving link of %q: %w", item.Title, err)
			}
			sb.WriteString("<a" + item.Link.Attributes.HTML() + ` href="` + html.EscapeString(href) + `">`)
			sb.WriteString(item.title())
			sb.WriteString("</a>")
		} else {
			sb.WriteString(item.title())
		}

		if item.HasChildren() {
			if branch[item.ID] {
				return fmt.Errorf("%w: %q", ErrParentCycle, item.ID)
			}
			branch[item.ID] = true

			sb.WriteString("<" + tag + childAttrs.HTML() + ">")
			if err := b.render(sb, tag, item.ID, childAttrs, branch); err != nil {
				return err
			}
			sb.WriteString("</" + tag + ">")

			delete(branch, item.ID)
		}

		sb.WriteString("</" + itemTag + ">")

		if item.Divider != nil {
			sb.WriteString("<" + itemTag + item.Divider.HTML() + "></" + itemTag + ">")
		}
	}

	return nil
}

// level returns the items rendered below parentID. Items whose parent is
// not part of the menu render at the root level.
func (b *Builder) level(parentID string) Collection {
	if parentID != "" {
		return b.Children(parentID)
	}

	ids := make(map[string]bool, len(b.items))
	for _, item := range b.items {
		ids[item.ID] = true
	}
	return b.items.Filter(func(item *Item) bool {
		return item.ParentID == "" || !ids[item.ParentID]
	})
}

func (i *Item) title() string {
	if i.raw {
		return i.Title
	}
	return html.EscapeString(i.Title)
}

// AsUL renders the menu as an unordered list.
func (b *Builder) AsUL(attrs, childAttrs Attributes) (string, error) {
	return b.wrap("ul", attrs, childAttrs)
}

// AsOL renders the menu as an ordered list.
func (b *Builder) AsOL(attrs, childAttrs Attributes) (string, error) {
	return b.wrap("ol", attrs, childAttrs)
}

// AsDiv renders the menu as nested div containers.
func (b *Builder) AsDiv(attrs, childAttrs Attributes) (string, error) {
	return b.wrap("div", attrs, childAttrs)
}

// As renders the menu as ul, ol or div.
func (b *Builder) As(tag string, attrs, childAttrs Attributes) (string, error) {
	switch tag {
	case "", "ul":
		return b.AsUL(attrs, childAttrs)
	case "ol":
		return b.AsOL(attrs, childAttrs)
	case "div":
		return b.AsDiv(attrs, childAttrs)
	}
	return "", fmt.Errorf("unsupported menu type %q", tag)
}

func (b *Builder) wrap(tag string, attrs, childAttrs Attributes) (string, error) {
	body, err := b.Render(tag, "", childAttrs)
	if err != nil {
		return "", err
	}
	return "<" + tag + attrs.HTML() + ">" + body + "</" + tag + ">", nil
}
