package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToHTMLRendersTables(t *testing.T) {
	text := "| a | b |\n|---|---|\n| 1 | 2 |\n"

	out, err := Renderer{}.ToHTML(text, DefaultExtensions)
	require.NoError(t, err)
	assert.Contains(t, out, "<table>")
	assert.Contains(t, out, "<td>1</td>")

	out, err = Renderer{}.ToHTML(text, nil)
	require.NoError(t, err)
	assert.NotContains(t, out, "<table>")
}

func TestToHTMLPassesRawHeaders(t *testing.T) {
	out, err := Renderer{}.ToHTML("<h2 id=\"setup\">Guides / Setup</h2>\n\nInstall steps\n", DefaultExtensions)
	require.NoError(t, err)
	assert.Equal(t, "<h2 id=\"setup\">Guides / Setup</h2>\n<p>Install steps</p>\n", out)
}

func TestToHTMLKeepsResolvedLinks(t *testing.T) {
	out, err := Renderer{}.ToHTML("See [Getting Started](#getting-started).\n", DefaultExtensions)
	require.NoError(t, err)
	assert.Equal(t, "<p>See <a href=\"#getting-started\">Getting Started</a>.</p>\n", out)
}

func TestToHTMLIsDeterministic(t *testing.T) {
	text := "# Title\n\nSome *text* and a [link](#x).\n"
	first, err := Renderer{}.ToHTML(text, DefaultExtensions)
	require.NoError(t, err)
	for range 3 {
		again, err := Renderer{}.ToHTML(text, DefaultExtensions)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestValidateExtensions(t *testing.T) {
	require.NoError(t, ValidateExtensions([]string{"Tables", " wikilinks ", "footnote", ""}))
	require.Error(t, ValidateExtensions([]string{"mermaid"}))
}

func TestCollectExtensionsDedupesAliases(t *testing.T) {
	exts, err := collectExtensions([]string{"table", "Tables", "tables", "wikilinks", "footnote"})
	require.NoError(t, err)
	assert.Len(t, exts, 2)
}

func TestAliasedTablesRenderOnce(t *testing.T) {
	src := "| a | b |\n|---|---|\n| 1 | 2 |\n"
	both, err := Renderer{}.ToHTML(src, []string{"table", "tables"})
	require.NoError(t, err)
	single, err := Renderer{}.ToHTML(src, []string{"tables"})
	require.NoError(t, err)
	assert.Equal(t, single, both)
	assert.Contains(t, both, "<table>")
}
