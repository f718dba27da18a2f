// Package markdown renders page markup to HTML with goldmark.
package markdown

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// Extension names understood by the renderer.
const (
	ExtTables    = "tables"
	ExtWikilinks = "wikilinks"
)

// DefaultExtensions are the extensions used when none are configured.
var DefaultExtensions = []string{ExtTables, ExtWikilinks}

// extensionRegistry maps extension names to goldmark extenders. A nil entry is
// a known name that needs no extender: wikilinks are rewritten into plain
// markdown links before the text reaches goldmark.
var extensionRegistry = map[string]goldmark.Extender{
	"table":         extension.Table,
	ExtTables:       extension.Table,
	ExtWikilinks:    nil,
	"gfm":           extension.GFM,
	"strikethrough": extension.Strikethrough,
	"tasklist":      extension.TaskList,
	"definition":    extension.DefinitionList,
	"footnote":      extension.Footnote,
	"linkify":       extension.Linkify,
}

// Renderer converts markdown to HTML. It is a pure function of its input.
type Renderer struct{}

// ToHTML renders text with the named extensions enabled. Raw HTML in the input
// (such as generated section headers) is passed through untouched.
func (Renderer) ToHTML(text string, extensions []string) (string, error) {
	exts, err := collectExtensions(extensions)
	if err != nil {
		return "", err
	}

	md := goldmark.New(
		goldmark.WithExtensions(exts...),
		goldmark.WithRendererOptions(html.WithUnsafe()),
	)

	var buf bytes.Buffer
	if err := md.Convert([]byte(text), &buf); err != nil {
		return "", fmt.Errorf("markdown render: %w", err)
	}
	return buf.String(), nil
}

// ValidateExtensions reports the first extension name the renderer does not know.
func ValidateExtensions(names []string) error {
	_, err := collectExtensions(names)
	return err
}

func collectExtensions(names []string) ([]goldmark.Extender, error) {
	var extenders []goldmark.Extender
	// Aliases share an extender; each one is registered once.
	seen := map[goldmark.Extender]struct{}{}

	for _, name := range names {
		key := strings.ToLower(strings.TrimSpace(name))
		if key == "" {
			continue
		}
		ext, ok := extensionRegistry[key]
		if !ok {
			return nil, fmt.Errorf("unknown markdown extension %q", name)
		}
		if ext == nil {
			continue
		}
		if _, dup := seen[ext]; dup {
			continue
		}
		seen[ext] = struct{}{}
		extenders = append(extenders, ext)
	}
	return extenders, nil
}
