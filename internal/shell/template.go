// Package shell wraps a rendered body in the HTML page shell and writes outputs.
package shell

import (
	"embed"
	"os"
	"path/filepath"
	"strings"

	"git.home.luguber.info/inful/uwiki/internal/foundation/errors"
)

// Shell file names, both embedded and in a template directory.
const (
	TemplateFile = "uwiki.html"
	StyleFile    = "uwiki.css"
	ScriptFile   = "uwiki.js"
)

//go:embed assets/*
var defaultAssets embed.FS

// Var is a single {key} substitution.
type Var struct {
	Key   string
	Value string
}

// Substitute replaces every literal {key} in template with its value, in the
// order vars are given. Values are not escaped and are not protected from
// later substitutions: a rendered body containing "{style}" is replaced when
// the style var comes after the content var.
func Substitute(template string, vars []Var) string {
	for _, v := range vars {
		template = strings.ReplaceAll(template, "{"+v.Key+"}", v.Value)
	}
	return template
}

// Bundle holds the page template and the inline style and script.
type Bundle struct {
	Template string
	Style    string
	Script   string
}

// LoadBundle reads the shell files from dir, or the embedded defaults when dir
// is empty. A missing file in dir is a template error.
func LoadBundle(dir string) (*Bundle, error) {
	read := func(name string) (string, error) {
		if dir == "" {
			data, err := defaultAssets.ReadFile("assets/" + name)
			if err != nil {
				return "", errors.WrapError(err, errors.CategoryTemplate, "embedded shell file missing").
					Fatal().WithPath(name).Build()
			}
			return string(data), nil
		}
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			return "", errors.WrapError(err, errors.CategoryTemplate, "cannot read shell file").
				Fatal().WithPath(path).Build()
		}
		return string(data), nil
	}

	tpl, err := read(TemplateFile)
	if err != nil {
		return nil, err
	}
	style, err := read(StyleFile)
	if err != nil {
		return nil, err
	}
	script, err := read(ScriptFile)
	if err != nil {
		return nil, err
	}
	return &Bundle{Template: tpl, Style: style, Script: script}, nil
}

// Page is the data substituted into the shell.
type Page struct {
	Title     string
	Content   string
	TOC       string
	Revision  string
	StyleURL  string
	ScriptURL string
}

// Render fills the template. Substitution order is fixed so repeated runs
// produce identical bytes.
func (b *Bundle) Render(p Page) string {
	return Substitute(b.Template, []Var{
		{Key: "title", Value: p.Title},
		{Key: "content", Value: p.Content},
		{Key: "style", Value: b.Style},
		{Key: "script", Value: b.Script},
		{Key: "toc", Value: p.TOC},
		{Key: "style_url", Value: p.StyleURL},
		{Key: "script_url", Value: p.ScriptURL},
		{Key: "revision", Value: p.Revision},
	})
}
