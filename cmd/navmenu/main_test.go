package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestDefaultDefinitionParses(t *testing.T) {
	def, err := loadDefinition("")
	require.NoError(t, err)

	_, ok := def.Menu("main")
	assert.True(t, ok)
	_, ok = def.Menu("footer")
	assert.True(t, ok)
}

func TestRenderCommand(t *testing.T) {
	out, err := execute(t, "render", "--menu", "footer", "--path", "about")
	require.NoError(t, err)

	assert.Contains(t, out, `<div class="footer">`)
	assert.Contains(t, out, `<a href="http://localhost:9876/about">About Us</a>`)
	assert.Contains(t, out, `class="active"`)
	assert.Contains(t, out, `<strong>GitHub</strong>`)
}

func TestRenderCommandTypeOverride(t *testing.T) {
	out, err := execute(t, "render", "--menu", "main", "--type", "ol")
	require.NoError(t, err)

	assert.Contains(t, out, `<ol class="nav">`)
	assert.Contains(t, out, `<ol class="dropdown">`)
	assert.Contains(t, out, `href="http://localhost:9876/docs/start"`)
	assert.Contains(t, out, `href="http://localhost:9876/blog/2026"`)
	assert.Contains(t, out, `href="http://localhost:9876/admin/users"`)
}

func TestRenderCommandErrors(t *testing.T) {
	_, err := execute(t, "render", "--menu", "side")
	assert.ErrorContains(t, err, `menu "side" not found`)

	_, err = execute(t, "render", "--menu", "main", "--type", "table")
	assert.Error(t, err)

	_, err = execute(t, "render", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestRenderCommandWithConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "menus.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
menus:
  - name: main
    items:
      - title: Home
        options: {url: /}
`), 0o600))

	out, err := execute(t, "render", "-c", path, "--path", "/")
	require.NoError(t, err)
	assert.Equal(t, "<ul><li class=\"active\"><a href=\"/\">Home</a></li></ul>\n", out)
}

func TestCurrentURL(t *testing.T) {
	assert.Equal(t, "http://example.com/a", currentURL("http://example.com/", "a"))
	assert.Equal(t, "/a", currentURL("", "/a"))
}
