package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestMergeClass(t *testing.T) {
	tests := []struct {
		name   string
		next   Attributes
		prev   Attributes
		want   string
		wantOK bool
	}{
		{name: "old first then new without duplicates", next: Attrs("class", "a b"), prev: Attrs("class", "b c"), want: "b c a", wantOK: true},
		{name: "no new class keeps old", next: Attrs("id", "x"), prev: Attrs("class", "b c"), want: "b c", wantOK: true},
		{name: "no class at all", next: nil, prev: nil, want: "", wantOK: false},
		{name: "no old class", next: Attrs("class", "a"), prev: nil, want: "a", wantOK: true},
		{name: "extra whitespace collapsed", next: Attrs("class", "  a \t b "), prev: Attrs("class", "a  c"), want: "a c b", wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := MergeClass(tt.next, tt.prev)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMergePrefix(t *testing.T) {
	tests := []struct {
		name   string
		next   Attributes
		prev   Attributes
		want   string
		wantOK bool
	}{
		{name: "slashes trimmed and joined", next: Attrs("prefix", "/foo/"), prev: Attrs("prefix", "/bar/"), want: "bar/foo", wantOK: true},
		{name: "no new prefix keeps old", next: nil, prev: Attrs("prefix", "bar"), want: "bar", wantOK: true},
		{name: "no old prefix", next: Attrs("prefix", "foo/"), prev: nil, want: "foo", wantOK: true},
		{name: "none", next: nil, prev: nil, want: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := MergePrefix(tt.next, tt.prev)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMergeGroup(t *testing.T) {
	prev := Attrs("target", "_self", "prefix", "p", "class", "a", "role", "nav")
	next := Attrs("id", "x", "class", "b", "target", "_blank")

	got := MergeGroup(next, prev)

	assert.Equal(t, []string{"target", "role", "id", "class", "prefix"}, got.Keys())
	assert.Equal(t, "_blank", got.String("target"))
	assert.Equal(t, "a b", got.String("class"))
	assert.Equal(t, "p", got.String("prefix"))

	// inputs are left untouched
	assert.Equal(t, []string{"target", "prefix", "class", "role"}, prev.Keys())
	assert.Equal(t, "b", next.String("class"))
}

func TestAttributesHTML(t *testing.T) {
	tests := []struct {
		name  string
		attrs Attributes
		want  string
	}{
		{name: "empty", attrs: nil, want: ""},
		{name: "only nil values", attrs: Attrs("class", nil), want: ""},
		{name: "insertion order", attrs: Attrs("id", "main", "class", "nav"), want: ` id="main" class="nav"`},
		{name: "escaped", attrs: Attrs("title", `a"b<c>&`), want: ` title="a&#34;b&lt;c&gt;&amp;"`},
		{name: "boolean style", attrs: Attrs("class", "nav", "disabled"), want: ` class="nav" disabled="disabled"`},
		{name: "bools", attrs: Attrs("checked", true, "selected", false), want: ` checked="checked"`},
		{name: "numbers", attrs: Attrs("tabindex", 3), want: ` tabindex="3"`},
		{name: "string list", attrs: Attrs("class", []string{"a", "b"}), want: ` class="a b"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.attrs.HTML())
		})
	}
}

func TestAttributesSetDelete(t *testing.T) {
	a := Attrs("a", 1, "b", 2)
	a.Set("a", 3)
	a.Set("c", 4)
	assert.Equal(t, []string{"a", "b", "c"}, a.Keys())

	v, ok := a.Get("a")
	require.True(t, ok)
	assert.Equal(t, 3, v)

	a.Delete("b")
	assert.Equal(t, []string{"a", "c"}, a.Keys())
	assert.False(t, a.Has("b"))

	var empty Attributes
	empty.Set("x", "y")
	assert.Equal(t, "y", empty.String("x"))
	assert.Equal(t, []string{"x"}, empty.Without("z").Keys())
	assert.Empty(t, empty.Without("x"))
}

func TestAttributesUnmarshalYAML(t *testing.T) {
	t.Run("mapping keeps order", func(t *testing.T) {
		var a Attributes
		require.NoError(t, yaml.Unmarshal([]byte("b: 1\na: x\nc: [p, q]\n"), &a))

		assert.Equal(t, []string{"b", "a", "c"}, a.Keys())
		v, _ := a.Get("b")
		assert.Equal(t, 1, v)
		v, _ = a.Get("c")
		assert.Equal(t, []any{"p", "q"}, v)
	})

	t.Run("sequence of flags", func(t *testing.T) {
		var a Attributes
		require.NoError(t, yaml.Unmarshal([]byte("[disabled, hidden]"), &a))
		assert.Equal(t, ` disabled="disabled" hidden="hidden"`, a.HTML())
	})

	t.Run("scalar rejected", func(t *testing.T) {
		var a Attributes
		assert.Error(t, yaml.Unmarshal([]byte("nav"), &a))
	})
}
