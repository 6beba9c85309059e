package menu

import (
	"fmt"
	"html"
	"slices"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Attr is a single attribute key/value pair.
type Attr struct {
	Key   string
	Value any
}

// Attributes is an ordered set of attributes. The order in which keys are
// first set is the order in which they are rendered. A nil Attributes is a
// valid, empty set.
type Attributes []Attr

// Attrs builds Attributes from alternating keys and values:
//
//	menu.Attrs("url", "about", "class", "nav")
//
// A trailing key without a value is stored as a boolean-style attribute
// under a numeric key, so Attrs("disabled") renders as disabled="disabled".
func Attrs(pairs ...any) Attributes {
	a := make(Attributes, 0, (len(pairs)+1)/2)
	for i := 0; i < len(pairs); i += 2 {
		if i+1 == len(pairs) {
			a = append(a, Attr{Key: strconv.Itoa(len(a)), Value: fmt.Sprint(pairs[i])})
			break
		}
		a.Set(fmt.Sprint(pairs[i]), pairs[i+1])
	}
	return a
}

func (a Attributes) index(key string) int {
	for i := range a {
		if a[i].Key == key {
			return i
		}
	}
	return -1
}

// Get returns the value stored under key.
func (a Attributes) Get(key string) (any, bool) {
	if i := a.index(key); i >= 0 {
		return a[i].Value, true
	}
	return nil, false
}

// Has reports whether key is present with a non-nil value.
func (a Attributes) Has(key string) bool {
	v, ok := a.Get(key)
	return ok && v != nil
}

// String returns the value under key formatted as a string, or "" when the
// key is absent or nil.
func (a Attributes) String(key string) string {
	v, ok := a.Get(key)
	if !ok || v == nil {
		return ""
	}
	return fmt.Sprint(v)
}

// Bool reports whether the value under key is the boolean true.
func (a Attributes) Bool(key string) bool {
	v, _ := a.Get(key)
	b, _ := v.(bool)
	return b
}

// Set stores value under key. An existing key keeps its position.
func (a *Attributes) Set(key string, value any) {
	if i := a.index(key); i >= 0 {
		(*a)[i].Value = value
		return
	}
	*a = append(*a, Attr{Key: key, Value: value})
}

// Delete removes key.
func (a *Attributes) Delete(key string) {
	if i := a.index(key); i >= 0 {
		*a = append((*a)[:i], (*a)[i+1:]...)
	}
}

// Without returns a copy of a with the given keys removed.
func (a Attributes) Without(keys ...string) Attributes {
	out := make(Attributes, 0, len(a))
	for _, attr := range a {
		if !slices.Contains(keys, attr.Key) {
			out = append(out, attr)
		}
	}
	return out
}

// Clone returns a shallow copy of a.
func (a Attributes) Clone() Attributes {
	if a == nil {
		return nil
	}
	out := make(Attributes, len(a))
	copy(out, a)
	return out
}

// Keys returns the keys in order.
func (a Attributes) Keys() []string {
	keys := make([]string, len(a))
	for i, attr := range a {
		keys[i] = attr.Key
	}
	return keys
}

// HTML renders the attributes as an HTML attribute string with a leading
// space, or "" when nothing is rendered. Nil and false values are skipped,
// true renders as the attribute name and a numeric key takes its value as
// the attribute name.
func (a Attributes) HTML() string {
	parts := make([]string, 0, len(a))
	for _, attr := range a {
		key, value, ok := attributeElement(attr.Key, attr.Value)
		if !ok {
			continue
		}
		parts = append(parts, key+`="`+html.EscapeString(value)+`"`)
	}
	if len(parts) == 0 {
		return ""
	}
	return " " + strings.Join(parts, " ")
}

func attributeElement(key string, value any) (string, string, bool) {
	if value == nil {
		return "", "", false
	}

	if _, err := strconv.Atoi(key); err == nil {
		key = fmt.Sprint(value)
	}

	switch v := value.(type) {
	case bool:
		if !v {
			return "", "", false
		}
		return key, key, true
	case string:
		return key, v, true
	case []string:
		return key, strings.Join(v, " "), true
	default:
		return key, fmt.Sprint(v), true
	}
}

// UnmarshalYAML decodes a mapping while keeping the document order of its
// keys. A sequence of scalars decodes into boolean-style attributes.
func (a *Attributes) UnmarshalYAML(value *yaml.Node) error {
	out := Attributes{}

	switch value.Kind {
	case yaml.MappingNode:
		for i := 0; i+1 < len(value.Content); i += 2 {
			var v any
			if err := value.Content[i+1].Decode(&v); err != nil {
				return fmt.Errorf("decoding attribute %q: %w", value.Content[i].Value, err)
			}
			out.Set(value.Content[i].Value, v)
		}
	case yaml.SequenceNode:
		for _, n := range value.Content {
			if n.Kind != yaml.ScalarNode {
				return fmt.Errorf("line %d: expected scalar attribute name", n.Line)
			}
			out = append(out, Attr{Key: strconv.Itoa(len(out)), Value: n.Value})
		}
	case yaml.ScalarNode:
		if value.Tag != "!!null" {
			return fmt.Errorf("line %d: expected mapping of attributes", value.Line)
		}
	default:
		return fmt.Errorf("line %d: expected mapping of attributes, got kind %d", value.Line, value.Kind)
	}

	*a = out
	return nil
}

// MergeClass combines the class of prev with the class of next. Classes of
// prev come first, duplicates keep their first occurrence. When next has no
// class the class of prev is returned unchanged.
func MergeClass(next, prev Attributes) (string, bool) {
	if !next.Has("class") {
		v, ok := prev.Get("class")
		if !ok || v == nil {
			return "", false
		}
		return fmt.Sprint(v), true
	}

	return joinUnique(prev.String("class"), next.String("class")), true
}

// MergePrefix joins the prefix of prev and next with a single slash.
func MergePrefix(next, prev Attributes) (string, bool) {
	if !next.Has("prefix") {
		v, ok := prev.Get("prefix")
		if !ok || v == nil {
			return "", false
		}
		return fmt.Sprint(v), true
	}

	parts := make([]string, 0, 2)
	for _, p := range []string{prev.String("prefix"), next.String("prefix")} {
		if p = strings.Trim(p, "/"); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, "/"), true
}

// MergeGroup merges next group attributes over prev ones. Keys of next win,
// except prefix and class which are combined.
func MergeGroup(next, prev Attributes) Attributes {
	out := prev.Without("prefix", "class")
	for _, attr := range next {
		out.Set(attr.Key, attr.Value)
	}

	if prefix, ok := MergePrefix(next, prev); ok {
		out.Set("prefix", prefix)
	} else {
		out.Delete("prefix")
	}

	if class, ok := MergeClass(next, prev); ok {
		out.Set("class", class)
	} else {
		out.Delete("class")
	}

	return out
}

// joinUnique splits every list on whitespace and joins the distinct classes.
func joinUnique(lists ...string) string {
	seen := make(map[string]bool)
	classes := make([]string, 0)
	for _, list := range lists {
		for _, c := range strings.Fields(list) {
			if !seen[c] {
				seen[c] = true
				classes = append(classes, c)
			}
		}
	}
	return strings.Join(classes, " ")
}
