package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ferrors "git.home.luguber.info/inful/uwiki/internal/foundation/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "uwiki.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaults(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, []string{"tables", "wikilinks"}, cfg.Extensions)
	assert.EqualValues(t, "slug", cfg.Anchors)
	assert.EqualValues(t, "warn", cfg.Duplicates)
	assert.False(t, cfg.StripFrontmatter)
	assert.True(t, cfg.Outputs.HTML)
	assert.True(t, cfg.Outputs.Markdown)
	require.NoError(t, cfg.Validate())
}

func TestLoadMissingDefaultFileUsesDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadPicksUpDefaultFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, DefaultFileName), []byte("anchors: name\n"), 0o644))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.EqualValues(t, "name", cfg.Anchors)
}

func TestLoadExplicitMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Equal(t, ferrors.CategoryConfig, ferrors.GetCategory(err))
	assert.Contains(t, err.Error(), "nope.yaml")
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
log_level: DEBUG
log_format: json
extensions: [tables]
anchors: " Name "
duplicates: error
strip_frontmatter: true
template_dir: ./tpl
asset_base_url: https://cdn.example.com/uwiki/
outputs:
  markdown: false
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, []string{"tables"}, cfg.Extensions)
	assert.EqualValues(t, "name", cfg.Anchors)
	assert.EqualValues(t, "error", cfg.Duplicates)
	assert.True(t, cfg.StripFrontmatter)
	assert.Equal(t, "./tpl", cfg.TemplateDir)
	assert.Equal(t, "https://cdn.example.com/uwiki/", cfg.AssetBaseURL)
	assert.True(t, cfg.Outputs.HTML, "unset keys keep their defaults")
	assert.False(t, cfg.Outputs.Markdown)
}

func TestLoadExpandsEnvironment(t *testing.T) {
	t.Setenv("UWIKI_TEST_TEMPLATES", "/srv/templates")
	path := writeConfig(t, "template_dir: ${UWIKI_TEST_TEMPLATES}\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/srv/templates", cfg.TemplateDir)
}

func TestLoadReadsDotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("UWIKI_TEST_ASSETS=https://assets.example.com/\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, DefaultFileName), []byte("asset_base_url: ${UWIKI_TEST_ASSETS}\n"), 0o644))
	t.Cleanup(func() { _ = os.Unsetenv("UWIKI_TEST_ASSETS") })

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "https://assets.example.com/", cfg.AssetBaseURL)
}

func TestInvalidSettings(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"anchors", "anchors: hash\n", "invalid anchors setting"},
		{"duplicates", "duplicates: panic\n", "invalid duplicates setting"},
		{"extensions", "extensions: [tables, mermaid]\n", "invalid extensions setting"},
		{"outputs", "outputs: {html: false, markdown: false}\n", "at least one of"},
		{"yaml", "anchors: [\n", "failed to parse config file"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.Equal(t, ferrors.CategoryConfig, ferrors.GetCategory(err))
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestUnknownLogSettingsFallBack(t *testing.T) {
	cfg, err := Parse([]byte("log_level: chatty\nlog_format: xml\n"))
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
}

func TestLogLevelSlog(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, NormalizeLogLevel("debug").Slog())
	assert.Equal(t, slog.LevelWarn, NormalizeLogLevel("Warning").Slog())
	assert.Equal(t, slog.LevelError, NormalizeLogLevel("error").Slog())
	assert.Equal(t, slog.LevelInfo, NormalizeLogLevel("").Slog())
}
