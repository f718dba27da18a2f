package git

import (
	"errors"
	"log/slog"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	"git.home.luguber.info/inful/uwiki/internal/logfields"
)

// ShortHashLen is the length of the abbreviated revision.
const ShortHashLen = 8

// Revision returns the abbreviated HEAD commit of the repository containing
// path. Parent directories are searched for the repository. A path outside any
// repository, or a repository without commits, yields an empty string.
func Revision(path string) (string, error) {
	repository, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: true})
	if errors.Is(err, git.ErrRepositoryNotExists) {
		slog.Debug("Source is not inside a git repository", logfields.Path(path))
		return "", nil
	}
	if err != nil {
		return "", err
	}

	ref, err := repository.Head()
	if errors.Is(err, plumbing.ErrReferenceNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}

	hash := ref.Hash().String()
	if len(hash) > ShortHashLen {
		hash = hash[:ShortHashLen]
	}
	return hash, nil
}
