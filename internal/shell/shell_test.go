package shell

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/uwiki/internal/foundation/errors"
)

func TestSubstitute(t *testing.T) {
	got := Substitute("<title>{title}</title>{content}{missing}", []Var{
		{Key: "title", Value: "Docs"},
		{Key: "content", Value: "<p>{ not a key }</p>"},
	})
	assert.Equal(t, "<title>Docs</title><p>{ not a key }</p>{missing}", got)
}

func TestSubstituteKeepsOrderHazard(t *testing.T) {
	got := Substitute("{content}|{style}", []Var{
		{Key: "content", Value: "literal {style}"},
		{Key: "style", Value: "css"},
	})
	assert.Equal(t, "literal css|css", got)
}

func TestLoadDefaultBundle(t *testing.T) {
	b, err := LoadBundle("")
	require.NoError(t, err)
	for _, key := range []string{"{title}", "{content}", "{style}", "{script}", "{toc}"} {
		assert.Contains(t, b.Template, key)
	}
	assert.NotEmpty(t, b.Style)
	assert.NotEmpty(t, b.Script)
}

func TestLoadBundleFromDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, TemplateFile), []byte("<h>{title}</h>{content}<s>{style}</s>"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, StyleFile), []byte("b{}"), 0o644))

	_, err := LoadBundle(dir)
	require.Error(t, err)
	assert.Equal(t, errors.CategoryTemplate, errors.GetCategory(err))
	assert.Contains(t, err.Error(), ScriptFile)

	require.NoError(t, os.WriteFile(filepath.Join(dir, ScriptFile), []byte("js"), 0o644))
	b, err := LoadBundle(dir)
	require.NoError(t, err)
	assert.Equal(t, "<h>Docs</h><p>x</p><s>b{}</s>", b.Render(Page{Title: "Docs", Content: "<p>x</p>"}))
}

func TestRenderIsDeterministic(t *testing.T) {
	b, err := LoadBundle("")
	require.NoError(t, err)
	page := Page{Title: "Docs", Content: "<h2 id=\"a\">A</h2>", TOC: "<ul></ul>", Revision: "abc12345"}
	first := b.Render(page)
	assert.True(t, strings.Contains(first, "<title>Docs</title>"))
	assert.Contains(t, first, "abc12345")
	for range 3 {
		assert.Equal(t, first, b.Render(page))
	}
}

func TestAssetsURL(t *testing.T) {
	dir := t.TempDir()
	a := Assets{WorkDir: dir}
	assert.Equal(t, DefaultAssetBaseURL+StyleAsset, a.URL(StyleAsset))

	require.NoError(t, os.MkdirAll(filepath.Join(dir, "src"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "src", "uwiki.css"), []byte("x"), 0o644))
	assert.Equal(t, StyleAsset, a.URL(StyleAsset))

	custom := Assets{WorkDir: dir, BaseURL: "https://cdn.example.com/uwiki"}
	assert.Equal(t, "https://cdn.example.com/uwiki/"+ScriptAsset, custom.URL(ScriptAsset))
}

func TestWriteAll(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, "Docs.html")
	require.NoError(t, os.WriteFile(existing, []byte("old"), 0o644))

	written, err := WriteAll(dir, []Output{
		{Name: "Docs.html", Content: "<html></html>"},
		{Name: "Docs.md", Content: "# Docs\n"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{existing, filepath.Join(dir, "Docs.md")}, written)

	data, err := os.ReadFile(existing)
	require.NoError(t, err)
	assert.Equal(t, "<html></html>", string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2, "no temporary files are left behind")
}

func TestWriteAllFailsBeforeTouchingOutputs(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, "Docs.html")
	require.NoError(t, os.WriteFile(existing, []byte("old"), 0o644))

	_, err := WriteAll(dir, []Output{
		{Name: "Docs.html", Content: "new"},
		{Name: filepath.Join("missing", "Docs.md"), Content: "x"},
	})
	require.Error(t, err)
	assert.Equal(t, errors.CategoryFileSystem, errors.GetCategory(err))

	data, err := os.ReadFile(existing)
	require.NoError(t, err)
	assert.Equal(t, "old", string(data))
	_, err = os.Stat(existing + ".tmp")
	assert.True(t, os.IsNotExist(err))
}
