package menu

import (
	"fmt"
	"net/url"
	"strings"
)

// autoActivate activates the items linking to the current URL.
func (b *Builder) autoActivate() error {
	if !b.config.AutoActivate || b.current == "" {
		return nil
	}

	current, err := url.Parse(b.current)
	if err != nil {
		return fmt.Errorf("parsing current url %q: %w", b.current, err)
	}

	for _, item := range b.items {
		if item.Link == nil {
			continue
		}

		href, err := item.URL()
		if err != nil {
			return fmt.Errorf("resolving link of %q: %w", item.Title, err)
		}

		target, err := url.Parse(href)
		if err != nil {
			b.log.Debug("skipping unparsable link", "item", item.ID, "href", href, "error", err)
			continue
		}

		if b.matches(target, current) {
			b.log.Debug("activating item", "item", item.ID, "href", href)
			item.Activate()
		}
	}

	return nil
}

// matches reports whether the link target is the current page. Hosts are
// only compared when both URLs carry one.
func (b *Builder) matches(target, current *url.URL) bool {
	if target.Host != "" && current.Host != "" && !strings.EqualFold(target.Host, current.Host) {
		return false
	}

	path := strings.Trim(target.Path, "/")
	rpath := strings.Trim(current.Path, "/")

	if !b.config.Restful {
		return path == rpath
	}

	path = stripRestBase(path, b.config.RestBase)
	rpath = stripRestBase(rpath, b.config.RestBase)

	return rpath == path || (path != "" && strings.HasPrefix(rpath, path+"/"))
}

// stripRestBase removes the first base segment p starts with.
func stripRestBase(p string, bases RestBase) string {
	for _, base := range bases {
		base = strings.Trim(base, "/")
		if base != "" && strings.HasPrefix(p, base+"/") {
			return strings.TrimPrefix(p, base+"/")
		}
	}
	return p
}

// Activate marks the item as active. With ActivateParents set all of its
// ancestors are activated as well.
func (i *Item) Activate() {
	cfg := i.builder.config
	seen := make(map[*Item]bool)

	for item := i; item != nil && !seen[item]; item = item.Parent() {
		seen[item] = true
		item.markActive(cfg)

		if !cfg.ActivateParents {
			return
		}
	}
}

func (i *Item) markActive(cfg Config) {
	i.active = true
	i.SetData("active", true)

	if cfg.ActiveClass == "" {
		return
	}
	active := Attrs("class", cfg.ActiveClass)

	if cfg.ActiveElement == ActiveLink && i.Link != nil {
		class, _ := MergeClass(active, i.Link.Attributes)
		i.Link.Attributes.Set("class", class)
	} else {
		class, _ := MergeClass(active, i.attributes)
		i.attributes.Set("class", class)
	}
}
