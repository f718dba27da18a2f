package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/uwiki/internal/convert"
	"git.home.luguber.info/inful/uwiki/internal/doctree"
	ferrors "git.home.luguber.info/inful/uwiki/internal/foundation/errors"
)

// DefaultFileName is looked up in the working directory when no --config is given.
const DefaultFileName = "uwiki.yaml"

// Config represents the uwiki configuration file.
type Config struct {
	LogLevel         string                  `yaml:"log_level"`
	LogFormat        string                  `yaml:"log_format"`
	Extensions       []string                `yaml:"extensions"`
	Anchors          convert.AnchorScheme    `yaml:"anchors"`
	Duplicates       doctree.DuplicatePolicy `yaml:"duplicates"`
	StripFrontmatter bool                    `yaml:"strip_frontmatter"`
	TemplateDir      string                  `yaml:"template_dir,omitempty"`
	AssetBaseURL     string                  `yaml:"asset_base_url,omitempty"`
	OutputDir        string                  `yaml:"output_dir,omitempty"`
	Outputs          Outputs                 `yaml:"outputs"`
}

// Outputs toggles the generated documents.
type Outputs struct {
	HTML     bool `yaml:"html"`
	Markdown bool `yaml:"markdown"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		LogLevel:   string(LogLevelInfo),
		LogFormat:  string(LogFormatText),
		Extensions: []string{"tables", "wikilinks"},
		Anchors:    convert.AnchorsSlug,
		Duplicates: doctree.DuplicatesWarn,
		Outputs:    Outputs{HTML: true, Markdown: true},
	}
}

// Load reads configPath on top of the defaults. An empty configPath falls back
// to DefaultFileName and, when that is absent too, to Default().
func Load(configPath string) (*Config, error) {
	loadEnvFile()

	explicit := configPath != ""
	if !explicit {
		configPath = DefaultFileName
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return nil, ferrors.ConfigError("failed to read config file").
			WithPath(configPath).
			WithCause(err).
			Build()
	}

	cfg, err := Parse(data)
	if err != nil {
		if ferrors.IsClassified(err) {
			return nil, err
		}
		return nil, ferrors.ConfigError("failed to parse config file").
			WithPath(configPath).
			WithCause(err).
			Build()
	}
	return cfg, nil
}

// Parse decodes YAML config data over the defaults, expanding ${VAR}
// references first, then normalizes and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Normalize(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
