// Package naming derives display titles and link slugs from file and folder names.
package naming

import (
	"strings"
	"unicode"
)

// IndexName is the literal file name that always represents its folder.
const IndexName = "index"

// Words splits a name into words at camel-case boundaries.
//
// A word starts at an uppercase letter followed by lowercase letters, or is a run
// of uppercase letters (an acronym) that stops before an uppercase letter followed
// by a lowercase one: "OpenAPISpec" yields Open, API, Spec. A leading lowercase run
// is a word of its own and digits stay with the word they follow. Letters and
// digits outside ASCII never start a word but are kept inside the current one, so
// "Café" stays one word. Any other character separates words.
func Words(name string) []string {
	var words []string
	var cur []rune

	flush := func() {
		if len(cur) > 0 {
			words = append(words, string(cur))
			cur = cur[:0]
		}
	}

	runes := []rune(name)
	for i, c := range runes {
		switch {
		case isUpper(c):
			if len(cur) > 0 {
				prev := cur[len(cur)-1]
				nextLower := i+1 < len(runes) && isLower(runes[i+1])
				// Lower-to-upper starts a word; inside an acronym only the last
				// capital before a lowercase letter does.
				if isLower(prev) || isDigit(prev) || (isUpper(prev) && nextLower) {
					flush()
				}
			}
			cur = append(cur, c)
		case isLower(c), isDigit(c):
			cur = append(cur, c)
		case c > unicode.MaxASCII && (unicode.IsLetter(c) || unicode.IsDigit(c)):
			cur = append(cur, c)
		default:
			flush()
		}
	}
	flush()

	return words
}

// Titleize joins the words of name with single spaces.
// Names without any word characters are returned unchanged.
func Titleize(name string) string {
	words := Words(name)
	if len(words) == 0 {
		return name
	}
	return strings.Join(words, " ")
}

// Slugize joins the words of name with hyphens and lower-cases the result.
// Names without any word characters are returned unchanged.
func Slugize(name string) string {
	words := Words(name)
	if len(words) == 0 {
		return name
	}
	return strings.ToLower(strings.Join(words, "-"))
}

// Singularize returns the naive English singular of a plural name.
func Singularize(name string) string {
	switch {
	case strings.HasSuffix(name, "ies"):
		return name[:len(name)-3] + "y"
	case strings.HasSuffix(name, "s"):
		return name[:len(name)-1]
	default:
		return name
	}
}

// IsIndexFor reports whether a file named file represents folder: it matches the
// folder name, its singular form, or the literal "index" (case-insensitively).
func IsIndexFor(folder, file string) bool {
	return strings.EqualFold(file, folder) ||
		strings.EqualFold(file, Singularize(folder)) ||
		strings.EqualFold(file, IndexName)
}

func isUpper(c rune) bool { return c >= 'A' && c <= 'Z' }
func isLower(c rune) bool { return c >= 'a' && c <= 'z' }
func isDigit(c rune) bool { return c >= '0' && c <= '9' }
