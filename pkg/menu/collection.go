package menu

import (
	"cmp"
	"fmt"
	"strconv"
)

// Collection is an ordered list of items.
type Collection []*Item

// First returns the first item, nil when empty.
func (c Collection) First() *Item {
	if len(c) == 0 {
		return nil
	}
	return c[0]
}

// Last returns the last item, nil when empty.
func (c Collection) Last() *Item {
	if len(c) == 0 {
		return nil
	}
	return c[len(c)-1]
}

// Filter returns the items fn keeps, in order.
func (c Collection) Filter(fn func(*Item) bool) Collection {
	out := make(Collection, 0, len(c))
	for _, item := range c {
		if fn(item) {
			out = append(out, item)
		}
	}
	return out
}

// IDs returns the IDs of the items in order.
func (c Collection) IDs() []string {
	ids := make([]string, len(c))
	for n, item := range c {
		ids[n] = item.ID
	}
	return ids
}

// Titles returns the titles of the items in order.
func (c Collection) Titles() []string {
	titles := make([]string, len(c))
	for n, item := range c {
		titles[n] = item.Title
	}
	return titles
}

// looseEqual compares property values the way menu queries do: nil matches
// the empty string and false, everything else compares by its string form.
func looseEqual(a, b any) bool {
	if a == nil || b == nil {
		return isEmpty(a) && isEmpty(b)
	}
	return fmt.Sprint(a) == fmt.Sprint(b)
}

func isEmpty(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return t == ""
	case bool:
		return !t
	}
	return false
}

// sortKeys holds the values a sort orders items by. Keys compare
// numerically only when every one of them is a number, otherwise all of them
// compare by their string form, which keeps the order transitive.
type sortKeys struct {
	values  map[*Item]any
	numbers map[*Item]float64
}

func newSortKeys(items Collection, fn func(*Item) any) sortKeys {
	k := sortKeys{
		values:  make(map[*Item]any, len(items)),
		numbers: make(map[*Item]float64, len(items)),
	}

	numeric := true
	for _, item := range items {
		v := fn(item)
		k.values[item] = v
		if f, ok := toFloat(v); ok {
			k.numbers[item] = f
		} else {
			numeric = false
		}
	}

	if !numeric {
		k.numbers = nil
	}
	return k
}

func (k sortKeys) compare(x, y *Item) int {
	if k.numbers != nil {
		return cmp.Compare(k.numbers[x], k.numbers[y])
	}
	return cmp.Compare(toString(k.values[x]), toString(k.values[y]))
}

func toString(v any) string {
	if v == nil {
		return ""
	}
	return fmt.Sprint(v)
}

func toFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	case float64:
		return t, true
	case string:
		f, err := strconv.ParseFloat(t, 64)
		return f, err == nil
	}
	return 0, false
}
