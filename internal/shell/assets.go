package shell

import (
	"os"
	"path/filepath"
	"strings"
)

// DefaultAssetBaseURL is where assets are fetched from when no local copy exists.
const DefaultAssetBaseURL = "https://hiqdev.com/assets/uwiki/"

// Local asset paths, relative to the working directory.
const (
	StyleAsset  = "src/uwiki.css"
	ScriptAsset = "src/uwiki.js"
)

// Assets resolves asset references to a local relative path or a remote URL.
type Assets struct {
	BaseURL string
	WorkDir string
}

// URL returns rel when the file exists under WorkDir, otherwise BaseURL + rel.
func (a Assets) URL(rel string) string {
	dir := a.WorkDir
	if dir == "" {
		dir = "."
	}
	if _, err := os.Stat(filepath.Join(dir, filepath.FromSlash(rel))); err == nil {
		return rel
	}
	base := a.BaseURL
	if base == "" {
		base = DefaultAssetBaseURL
	}
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	return base + rel
}
