package route

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mchmarny/navmenu/pkg/menu"
)

var _ menu.Resolver = (*Table)(nil)

func newTable(t *testing.T, base string) *Table {
	t.Helper()
	tbl, err := New(base)
	require.NoError(t, err)
	return tbl.
		Handle("home", "/").
		Handle("user.show", "/users/{id}").
		Handle("user.posts", "/users/{id}/posts/{post?}").
		HandleAction("UserController@edit", "users/{id}/edit")
}

func TestTableURL(t *testing.T) {
	tests := []struct {
		name   string
		base   string
		path   string
		extra  []string
		secure bool
		want   string
	}{
		{name: "relative", path: "about", want: "/about"},
		{name: "root", path: "/", want: "/"},
		{name: "extra segments escaped", path: "files", extra: []string{"a b", "c"}, want: "/files/a%20b/c"},
		{name: "base url", base: "http://example.com/", path: "/about/", want: "http://example.com/about"},
		{name: "base path", base: "http://example.com/app", path: "about", want: "http://example.com/app/about"},
		{name: "secure", base: "http://example.com", path: "login", secure: true, want: "https://example.com/login"},
		{name: "relative base path", base: "/app", path: "about", want: "/app/about"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := newTable(t, tt.base).URL(tt.path, tt.extra, tt.secure)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTableRoute(t *testing.T) {
	tbl := newTable(t, "https://example.com")

	tests := []struct {
		name   string
		route  string
		params []string
		want   string
	}{
		{name: "static", route: "home", want: "https://example.com/"},
		{name: "placeholder", route: "user.show", params: []string{"7"}, want: "https://example.com/users/7"},
		{name: "optional omitted", route: "user.posts", params: []string{"7"}, want: "https://example.com/users/7/posts"},
		{name: "optional given", route: "user.posts", params: []string{"7", "3"}, want: "https://example.com/users/7/posts/3"},
		{name: "extra params appended", route: "user.show", params: []string{"7", "more"}, want: "https://example.com/users/7/more"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tbl.Route(tt.route, tt.params)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTableErrors(t *testing.T) {
	tbl := newTable(t, "")

	_, err := tbl.Route("nope", nil)
	assert.ErrorIs(t, err, ErrUnknownRoute)

	_, err = tbl.Route("user.show", nil)
	assert.ErrorIs(t, err, ErrMissingParameter)

	_, err = tbl.Action("nope", nil)
	assert.ErrorIs(t, err, ErrUnknownAction)

	got, err := tbl.Action("UserController@edit", []string{"9"})
	require.NoError(t, err)
	assert.Equal(t, "/users/9/edit", got)

	_, err = New("http://[::1")
	assert.Error(t, err)
}

func TestTableWithBuilder(t *testing.T) {
	b := menu.New("main", menu.WithResolver(newTable(t, "http://example.com")), menu.WithCurrentURL("http://example.com/users/7"))
	b.Add("Home", menu.Attrs("route", "home"))
	b.Add("Profile", menu.Attrs("route", []any{"user.show", 7}))

	got, err := b.AsUL(nil, nil)
	require.NoError(t, err)
	assert.Equal(t, `<ul><li><a href="http://example.com/">Home</a></li><li class="active"><a href="http://example.com/users/7">Profile</a></li></ul>`, got)
}
