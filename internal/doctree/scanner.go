package doctree

import (
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"

	ferrors "git.home.luguber.info/inful/uwiki/internal/foundation/errors"
	"git.home.luguber.info/inful/uwiki/internal/logfields"
)

// DuplicatePolicy decides what happens when two leaf pages share a name in the
// flat lookup. The later page always wins the lookup slot.
type DuplicatePolicy string

const (
	DuplicatesWarn   DuplicatePolicy = "warn"
	DuplicatesError  DuplicatePolicy = "error"
	DuplicatesIgnore DuplicatePolicy = "ignore"
)

// Scanner builds a Tree from a directory.
type Scanner struct {
	duplicates DuplicatePolicy
	logger     *slog.Logger
	exclude    map[string]struct{}
}

// Option configures a Scanner.
type Option func(*Scanner)

// WithDuplicatePolicy sets how colliding page names are reported.
func WithDuplicatePolicy(p DuplicatePolicy) Option {
	return func(s *Scanner) {
		if p != "" {
			s.duplicates = p
		}
	}
}

// WithLogger sets the scanner logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Scanner) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithRootExcludes skips the named files in the root folder only. Nested
// folders are listed in full.
func WithRootExcludes(names ...string) Option {
	return func(s *Scanner) {
		if s.exclude == nil {
			s.exclude = make(map[string]struct{}, len(names))
		}
		for _, name := range names {
			s.exclude[name] = struct{}{}
		}
	}
}

// NewScanner creates a scanner; duplicates are warned about by default.
func NewScanner(opts ...Option) *Scanner {
	s := &Scanner{duplicates: DuplicatesWarn, logger: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// entry is a directory listing item collected before any node is built.
type entry struct {
	name  string // raw file name
	stem  string // name without extension
	full  string
	isDir bool
}

// Scan walks rootPath depth-first in lexicographic order and returns the tree.
// title becomes the root folder title.
func (s *Scanner) Scan(rootPath, title string) (*Tree, error) {
	info, err := os.Stat(rootPath)
	if err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryFileSystem, "root path does not exist").
			Fatal().WithPath(rootPath).Build()
	}
	if !info.IsDir() {
		return nil, ferrors.FileSystemError("root path is not a directory").WithPath(rootPath).Build()
	}

	tree := &Tree{
		Root:  newRoot(rootPath, title),
		Pages: make(map[string]*Node),
	}
	if err := s.scanDir(tree, tree.Root); err != nil {
		return nil, err
	}

	folders, pages := tree.Stats()
	s.logger.Debug("Scan complete", logfields.Path(rootPath), slog.Int("folders", folders), slog.Int("pages", pages))
	return tree, nil
}

func (s *Scanner) scanDir(tree *Tree, folder *Node) error {
	entries, err := listDir(folder.SourcePath)
	if err != nil {
		return err
	}

	for _, e := range entries {
		if folder.IsRoot() && !e.isDir {
			if _, skip := s.exclude[e.name]; skip {
				s.logger.Debug("Skipping excluded file", logfields.File(e.full))
				continue
			}
		}
		kind := KindPage
		if e.isDir {
			kind = KindFolder
		}
		node := newNode(kind, folder, e.stem, path.Join(folder.LogicalPath, e.stem), e.full)
		if displaced := folder.attach(node); displaced != nil {
			s.logger.Warn("Sibling replaced by entry with the same name",
				logfields.Path(displaced.SourcePath), slog.String("replacement", node.SourcePath))
			tree.forget(displaced)
		}
		s.logger.Debug("Scanned node", logfields.Kind(kind.String()), logfields.Name(node.Name), logfields.Depth(node.Depth))

		if e.isDir {
			if err := s.scanDir(tree, node); err != nil {
				return err
			}
			continue
		}
		if err := s.register(tree, node); err != nil {
			return err
		}
	}
	return nil
}

func (s *Scanner) register(tree *Tree, page *Node) error {
	prev, exists := tree.Pages[page.Name]
	tree.Pages[page.Name] = page
	if !exists {
		return nil
	}

	switch s.duplicates {
	case DuplicatesError:
		return ferrors.ValidationError("duplicate page name "+page.Name).
			WithPath(page.SourcePath).
			WithContext("previous", prev.SourcePath).
			Build()
	case DuplicatesIgnore:
		return nil
	default:
		s.logger.Warn("Duplicate page name, later page wins the lookup",
			logfields.Name(page.Name), logfields.Path(page.SourcePath), slog.String("previous", prev.SourcePath))
		return nil
	}
}

// listDir returns the visible entries of dir sorted by raw file name.
func listDir(dir string) ([]entry, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryFileSystem, "cannot read directory").
			Fatal().WithPath(dir).Build()
	}

	entries := make([]entry, 0, len(dirEntries))
	for _, de := range dirEntries {
		name := de.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		full := filepath.Join(dir, name)
		isDir := de.IsDir()
		if de.Type()&os.ModeSymlink != 0 {
			info, err := os.Stat(full)
			if err != nil {
				return nil, ferrors.WrapError(err, ferrors.CategoryFileSystem, "cannot resolve symlink").
					Fatal().WithPath(full).Build()
			}
			isDir = info.IsDir()
		}
		entries = append(entries, entry{
			name:  name,
			stem:  strings.TrimSuffix(name, filepath.Ext(name)),
			full:  full,
			isDir: isDir,
		})
	}

	slices.SortFunc(entries, func(a, b entry) int { return strings.Compare(a.name, b.name) })
	return entries, nil
}
