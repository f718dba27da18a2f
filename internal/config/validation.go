package config

import (
	"git.home.luguber.info/inful/uwiki/internal/convert"
	"git.home.luguber.info/inful/uwiki/internal/doctree"
	ferrors "git.home.luguber.info/inful/uwiki/internal/foundation/errors"
	"git.home.luguber.info/inful/uwiki/internal/foundation/normalization"
	"git.home.luguber.info/inful/uwiki/internal/markdown"
)

var (
	anchorNormalizer = normalization.NewNormalizer(map[string]convert.AnchorScheme{
		"slug": convert.AnchorsSlug,
		"name": convert.AnchorsName,
	}, convert.AnchorsSlug)

	duplicateNormalizer = normalization.NewNormalizer(map[string]doctree.DuplicatePolicy{
		"warn":   doctree.DuplicatesWarn,
		"error":  doctree.DuplicatesError,
		"ignore": doctree.DuplicatesIgnore,
	}, doctree.DuplicatesWarn)
)

// Normalize canonicalizes enum spellings. Unknown anchor or duplicate values
// are rejected; unknown log settings fall back to their defaults.
func (c *Config) Normalize() error {
	c.LogLevel = string(NormalizeLogLevel(c.LogLevel))
	c.LogFormat = string(NormalizeLogFormat(c.LogFormat))

	anchors, err := anchorNormalizer.Parse(string(c.Anchors))
	if err != nil {
		return ferrors.ConfigError("invalid anchors setting").WithCause(err).Build()
	}
	c.Anchors = anchors

	dups, err := duplicateNormalizer.Parse(string(c.Duplicates))
	if err != nil {
		return ferrors.ConfigError("invalid duplicates setting").WithCause(err).Build()
	}
	c.Duplicates = dups
	return nil
}

// Validate checks cross-field constraints after normalization.
func (c *Config) Validate() error {
	if err := markdown.ValidateExtensions(c.Extensions); err != nil {
		return ferrors.ConfigError("invalid extensions setting").WithCause(err).Build()
	}
	if !c.Outputs.HTML && !c.Outputs.Markdown {
		return ferrors.ConfigError("at least one of outputs.html and outputs.markdown must be enabled").Build()
	}
	return nil
}
