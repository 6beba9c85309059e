package menu

// reserved options configure an item and are never rendered as attributes.
var reserved = []string{"route", "action", "url", "prefix", "parent", "secure", "raw"}

// groupStack holds the attributes of the groups currently being built.
type groupStack []Attributes

func (s *groupStack) push(attrs Attributes) {
	if top, ok := s.top(); ok {
		attrs = MergeGroup(attrs, top)
	}
	*s = append(*s, attrs)
}

func (s *groupStack) pop() {
	if n := len(*s); n > 0 {
		*s = (*s)[:n-1]
	}
}

func (s groupStack) top() (Attributes, bool) {
	if len(s) == 0 {
		return nil, false
	}
	return s[len(s)-1], true
}

// currentPrefix returns the prefix of the innermost group. It reports false
// outside of any group.
func (s groupStack) currentPrefix() (string, bool) {
	top, ok := s.top()
	if !ok {
		return "", false
	}
	return top.String("prefix"), true
}

// extract returns the attributes an item built from opts renders with.
func (s groupStack) extract(opts Attributes) Attributes {
	if top, ok := s.top(); ok {
		opts = MergeGroup(opts, top)
	}
	return opts.Without(reserved...)
}
