// Package source reads page text from disk.
package source

import (
	"io"
	"os"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"

	"git.home.luguber.info/inful/uwiki/internal/foundation/errors"
	"git.home.luguber.info/inful/uwiki/internal/frontmatter"
)

// Reader loads page sources as UTF-8 text.
type Reader struct {
	StripFrontmatter bool
}

// Read returns the text of the file at path. Bytes that are not valid UTF-8
// abort with an encoding error naming the file; a leading byte order mark is
// dropped.
func (r Reader) Read(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", errors.WrapError(err, errors.CategoryFileSystem, "cannot open source").
			Fatal().WithPath(path).Build()
	}
	defer func() {
		_ = f.Close()
	}()

	raw, err := io.ReadAll(f)
	if err != nil {
		return "", errors.WrapError(err, errors.CategoryFileSystem, "cannot read source").
			Fatal().WithPath(path).Build()
	}
	if !utf8.Valid(raw) {
		return "", errors.EncodingError("source is not valid UTF-8 text").WithPath(path).Build()
	}

	text, err := unicode.UTF8BOM.NewDecoder().Bytes(raw)
	if err != nil {
		return "", errors.WrapError(err, errors.CategoryEncoding, "cannot decode source").
			Fatal().WithPath(path).Build()
	}
	if r.StripFrontmatter {
		text, _ = frontmatter.Strip(text)
	}
	return string(text), nil
}
