// Package toc builds a nested table of contents from rendered section headers.
package toc

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Entry is one header in the table of contents.
type Entry struct {
	Level    int
	ID       string
	Text     string
	Children []*Entry
}

var levels = map[atom.Atom]int{
	atom.H2: 2, atom.H3: 3, atom.H4: 4, atom.H5: 5, atom.H6: 6,
}

// Parse collects h2..h6 headers that carry an id and nests them by level.
// The entry text is the part after the last " / ", dropping the folder prefix.
func Parse(body string) ([]*Entry, error) {
	context := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(body), context)
	if err != nil {
		return nil, fmt.Errorf("parse rendered body: %w", err)
	}

	var flat []*Entry
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if level, ok := levels[n.DataAtom]; ok {
				if id := getAttr(n, "id"); id != "" {
					flat = append(flat, &Entry{Level: level, ID: id, Text: shortTitle(extractText(n))})
				}
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range nodes {
		walk(n)
	}

	return nest(flat), nil
}

// Build renders the table of contents for body as nested lists. A body
// without qualifying headers yields an empty string.
func Build(body string) (string, error) {
	entries, err := Parse(body)
	if err != nil {
		return "", err
	}
	if len(entries) == 0 {
		return "", nil
	}
	var b strings.Builder
	writeList(&b, entries)
	return b.String(), nil
}

func nest(flat []*Entry) []*Entry {
	var roots []*Entry
	var stack []*Entry
	for _, e := range flat {
		for len(stack) > 0 && stack[len(stack)-1].Level >= e.Level {
			stack = stack[:len(stack)-1]
		}
		if len(stack) == 0 {
			roots = append(roots, e)
		} else {
			parent := stack[len(stack)-1]
			parent.Children = append(parent.Children, e)
		}
		stack = append(stack, e)
	}
	return roots
}

func writeList(b *strings.Builder, entries []*Entry) {
	b.WriteString("<ul>")
	for _, e := range entries {
		fmt.Fprintf(b, "<li><a href=\"#%s\">%s</a>", html.EscapeString(e.ID), html.EscapeString(e.Text))
		if len(e.Children) > 0 {
			writeList(b, e.Children)
		}
		b.WriteString("</li>")
	}
	b.WriteString("</ul>")
}

func shortTitle(text string) string {
	if i := strings.LastIndex(text, " / "); i >= 0 {
		return text[i+len(" / "):]
	}
	return text
}

func getAttr(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}

func extractText(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}

	var text strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		text.WriteString(extractText(c))
	}

	return strings.TrimSpace(text.String())
}
