// Package render concatenates converted nodes into one document.
package render

import (
	"log/slog"
	"strings"

	"git.home.luguber.info/inful/uwiki/internal/doctree"
	"git.home.luguber.info/inful/uwiki/internal/logfields"
)

// Mode selects the output format.
type Mode string

const (
	ModeHTML     Mode = "html"
	ModeMarkdown Mode = "markdown"
)

// NodeConverter renders a single node in either output format.
type NodeConverter interface {
	RenderHTML(n *doctree.Node) (string, error)
	RenderMarkup(n *doctree.Node) (string, error)
}

// TreeRenderer walks a tree in pre-order and joins the per-node output. Both
// modes share the same walk so node order is identical across formats.
type TreeRenderer struct {
	conv   NodeConverter
	logger *slog.Logger
}

// NewTreeRenderer creates a renderer on top of conv.
func NewTreeRenderer(conv NodeConverter, logger *slog.Logger) *TreeRenderer {
	if logger == nil {
		logger = slog.Default()
	}
	return &TreeRenderer{conv: conv, logger: logger}
}

// Render produces the document body for tree in the given mode.
func (r *TreeRenderer) Render(tree *doctree.Tree, mode Mode) (string, error) {
	step := r.conv.RenderHTML
	if mode == ModeMarkdown {
		step = r.conv.RenderMarkup
	}

	var b strings.Builder
	err := tree.Walk(func(n *doctree.Node) error {
		out, err := step(n)
		if err != nil {
			return err
		}
		r.logger.Debug("Rendered node", slog.String("mode", string(mode)),
			logfields.Path(n.LogicalPath), logfields.Bytes(len(out)))
		b.WriteString(out)
		return nil
	})
	if err != nil {
		return "", err
	}
	return b.String(), nil
}

// HTML renders the tree body as HTML.
func (r *TreeRenderer) HTML(tree *doctree.Tree) (string, error) {
	return r.Render(tree, ModeHTML)
}

// Markdown renders the tree as flattened markup.
func (r *TreeRenderer) Markdown(tree *doctree.Tree) (string, error) {
	return r.Render(tree, ModeMarkdown)
}
