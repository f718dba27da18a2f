package shell

import (
	"os"
	"path/filepath"

	"git.home.luguber.info/inful/uwiki/internal/foundation/errors"
)

// StagingSuffix is appended to an output name while it is being written.
const StagingSuffix = ".tmp"

// Output is a named file produced by a run.
type Output struct {
	Name    string // file name inside the output directory
	Content string
}

// WriteAll writes every output into dir, overwriting existing files. All
// contents are staged to temporary files first and only renamed into place
// once every one was written, so a failed write leaves earlier outputs alone.
func WriteAll(dir string, outputs []Output) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.WrapError(err, errors.CategoryFileSystem, "cannot create output directory").
			Fatal().WithPath(dir).Build()
	}

	staged := make([]string, 0, len(outputs))
	cleanup := func() {
		for _, tmp := range staged {
			_ = os.Remove(tmp)
		}
	}

	for _, out := range outputs {
		path := filepath.Join(dir, out.Name)
		tmp := path + StagingSuffix
		if err := os.WriteFile(tmp, []byte(out.Content), 0o644); err != nil {
			cleanup()
			return nil, errors.WrapError(err, errors.CategoryFileSystem, "cannot write output").
				Fatal().WithPath(path).Build()
		}
		staged = append(staged, tmp)
	}

	written := make([]string, 0, len(outputs))
	for i, out := range outputs {
		path := filepath.Join(dir, out.Name)
		if err := os.Rename(staged[i], path); err != nil {
			cleanup()
			return written, errors.WrapError(err, errors.CategoryFileSystem, "cannot move output into place").
				Fatal().WithPath(path).Build()
		}
		written = append(written, path)
	}
	return written, nil
}
