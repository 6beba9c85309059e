package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSet(t *testing.T) {
	shared := DefaultConfig()
	shared.ViewShare = true

	s := NewSet(WithCurrentURL("/about"))

	main := s.Make("main", func(b *Builder) {
		b.Add("Home", Attrs("url", "/"))
		b.Add("About", Attrs("url", "about"))
	}, WithConfig(shared))
	s.Make("footer", func(b *Builder) {
		b.Add("About", Attrs("url", "about"))
	})

	assert.Equal(t, []string{"main", "footer"}, s.Names())
	assert.Same(t, main, s.Get("main"))
	assert.Nil(t, s.Get("side"))
	assert.Equal(t, []*Builder{main}, s.Shared())

	got, err := main.AsUL(nil, nil)
	require.NoError(t, err)
	assert.Equal(t, `<ul><li><a href="/">Home</a></li><li class="active"><a href="/about">About</a></li></ul>`, got)

	s.Make("main", nil)
	assert.Equal(t, []string{"main", "footer"}, s.Names())
	assert.Empty(t, s.Shared())
}
