package convert

import (
	"regexp"
	"strings"

	"git.home.luguber.info/inful/uwiki/internal/naming"
)

// AnchorScheme selects how header ids and link destinations are derived from
// names. Both sides always use the same scheme so links resolve.
type AnchorScheme string

const (
	// AnchorsSlug uses the lower-case hyphenated slug ("GettingStarted" -> "getting-started").
	AnchorsSlug AnchorScheme = "slug"
	// AnchorsName uses the raw name unchanged.
	AnchorsName AnchorScheme = "name"
)

// Anchor returns the anchor id for name.
func (s AnchorScheme) Anchor(name string) string {
	if s == AnchorsName {
		return name
	}
	return naming.Slugize(name)
}

// Valid reports whether s is a known scheme.
func (s AnchorScheme) Valid() bool {
	return s == AnchorsSlug || s == AnchorsName
}

var wikiLink = regexp.MustCompile(`\[\[(.+?)\]\]`)

// Link is a parsed [[target]] or [[target|text]] reference.
type Link struct {
	Target string
	Text   string
}

// ParseLink splits the inside of a double-bracket reference at the first "|".
// Without a pipe the display text is the titleized target.
func ParseLink(token string) Link {
	if target, text, ok := strings.Cut(token, "|"); ok {
		return Link{Target: target, Text: text}
	}
	return Link{Target: token, Text: naming.Titleize(token)}
}

// RewriteLinks rewrites every [[...]] reference in text, one line at a time.
func (s AnchorScheme) RewriteLinks(text string) string {
	if !strings.Contains(text, "[[") {
		return text
	}
	lines := strings.SplitAfter(text, "\n")
	var b strings.Builder
	b.Grow(len(text))
	for _, line := range lines {
		b.WriteString(s.RewriteLine(line))
	}
	return b.String()
}

// RewriteLine replaces each match by its own span, left to right, so repeated
// bracket text on one line is never substituted twice.
func (s AnchorScheme) RewriteLine(line string) string {
	return wikiLink.ReplaceAllStringFunc(line, func(match string) string {
		link := ParseLink(match[2 : len(match)-2])
		return markdownLink(link.Text, "#"+s.Anchor(link.Target))
	})
}

func markdownLink(text, dest string) string {
	if strings.ContainsAny(dest, " \t") {
		dest = "<" + dest + ">"
	}
	return "[" + text + "](" + dest + ")"
}
