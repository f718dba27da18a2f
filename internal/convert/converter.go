// Package convert turns a single tree node into rendered output.
package convert

import (
	"fmt"
	"html"
	"strings"

	"git.home.luguber.info/inful/uwiki/internal/doctree"
	"git.home.luguber.info/inful/uwiki/internal/foundation/errors"
)

// MaxLevel is the deepest header level emitted.
const MaxLevel = 6

// SourceReader loads the text behind a page.
type SourceReader interface {
	Read(path string) (string, error)
}

// HTMLRenderer converts markdown to HTML.
type HTMLRenderer interface {
	ToHTML(text string, extensions []string) (string, error)
}

// Converter renders nodes. It holds no per-node state and may be reused.
type Converter struct {
	anchors    AnchorScheme
	reader     SourceReader
	renderer   HTMLRenderer
	extensions []string
}

// Option configures a Converter.
type Option func(*Converter)

// WithAnchors sets the anchor scheme.
func WithAnchors(s AnchorScheme) Option {
	return func(c *Converter) {
		if s.Valid() {
			c.anchors = s
		}
	}
}

// WithExtensions sets the markdown extensions passed to the renderer.
func WithExtensions(exts []string) Option {
	return func(c *Converter) { c.extensions = exts }
}

// New creates a Converter that reads sources through reader and renders HTML
// through renderer.
func New(reader SourceReader, renderer HTMLRenderer, opts ...Option) *Converter {
	c := &Converter{anchors: AnchorsSlug, reader: reader, renderer: renderer}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Anchors returns the anchor scheme in use.
func (c *Converter) Anchors() AnchorScheme { return c.anchors }

// Emits reports whether n produces output. The root only does when it has an
// index page; it has no source file of its own.
func (c *Converter) Emits(n *doctree.Node) bool {
	return !n.IsRoot() || n.Index() != nil
}

// Level is the header level for n: depth + 1, capped at MaxLevel.
func (c *Converter) Level(n *doctree.Node) int {
	return min(n.Depth+1, MaxLevel)
}

// DisplayTitle prefixes the node title with its folder title when the folder
// is not the root and has a title. The stored title is not modified.
func (c *Converter) DisplayTitle(n *doctree.Node) string {
	parent := n.Parent()
	if parent == nil || parent.IsRoot() || parent.Title == "" {
		return n.Title
	}
	return parent.Title + " / " + n.Title
}

// Header returns the raw HTML header for n followed by a blank line, which
// closes the HTML block before the body starts.
func (c *Converter) Header(n *doctree.Node) string {
	level := c.Level(n)
	return fmt.Sprintf("<h%d id=\"%s\">%s</h%d>\n\n",
		level, html.EscapeString(c.anchors.Anchor(n.Name)), html.EscapeString(c.DisplayTitle(n)), level)
}

// Body returns the link-rewritten text of n. A folder's body is its index
// page, or empty without one.
func (c *Converter) Body(n *doctree.Node) (string, error) {
	page := n
	if n.IsFolder() {
		page = n.Index()
		if page == nil {
			return "", nil
		}
	}

	text, err := c.reader.Read(page.SourcePath)
	if err != nil {
		return "", err
	}
	return c.anchors.RewriteLinks(text), nil
}

// RenderHTML renders header and body of n to HTML.
func (c *Converter) RenderHTML(n *doctree.Node) (string, error) {
	if !c.Emits(n) {
		return "", nil
	}
	body, err := c.Body(n)
	if err != nil {
		return "", err
	}

	out, err := c.renderer.ToHTML(c.Header(n)+body, c.extensions)
	if err != nil {
		return "", errors.RenderError("cannot render page").
			WithCause(err).WithPath(n.SourcePath).Build()
	}
	return out, nil
}

// RenderMarkup renders n as an ATX heading followed by the trimmed body.
func (c *Converter) RenderMarkup(n *doctree.Node) (string, error) {
	if !c.Emits(n) {
		return "", nil
	}
	body, err := c.Body(n)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(strings.Repeat("#", c.Level(n)))
	b.WriteString(" ")
	b.WriteString(c.DisplayTitle(n))
	b.WriteString("\n\n")
	b.WriteString(strings.TrimSpace(body))
	b.WriteString("\n\n")
	return b.String(), nil
}
