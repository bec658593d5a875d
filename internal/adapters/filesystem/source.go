package filesystem

import (
	"os"
	"path/filepath"
	"strings"

	"noteworthy/internal/config"
	"noteworthy/internal/domain"
	"noteworthy/internal/ports"
)

const hiddenPrefix = "."

// Source implements ports.TreeSource over the local directory tree
type Source struct {
	showHidden bool
}

// Ensure Source implements TreeSource
var _ ports.TreeSource = (*Source)(nil)

// Option configures the Source
type Option func(*Source)

// WithHiddenFiles controls whether dot-files are listed
func WithHiddenFiles(show bool) Option {
	return func(s *Source) {
		s.showHidden = show
	}
}

// NewSource creates a filesystem tree source
func NewSource(opts ...Option) *Source {
	s := &Source{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Root returns the filesystem root
func (s *Source) Root() string {
	return string(filepath.Separator)
}

// Canonical expands ~ and returns the cleaned absolute form of ref.
// If the working directory is unknown the cleaned path is returned.
func (s *Source) Canonical(ref string) string {
	path := config.ExpandHome(ref)
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return filepath.Clean(path)
}

// Resolve lists the directory ref. Directories become collections, regular
// files documents; every other entry type is dropped.
func (s *Source) Resolve(ref string) ([]domain.Node, error) {
	dir := s.Canonical(ref)

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &domain.ResolveError{
			Ref: dir,
			Err: &domain.IOError{Op: "read", Path: dir, Err: err},
		}
	}

	nodes := make([]domain.Node, 0, len(entries)+1)
	for _, entry := range entries {
		name := entry.Name()
		if !s.showHidden && strings.HasPrefix(name, hiddenPrefix) {
			continue
		}

		kind := classify(entry.Type())
		if !kind.Navigable() {
			continue
		}

		nodes = append(nodes, domain.Node{
			Name: name,
			ID:   filepath.Join(dir, name),
			Kind: kind,
		})
	}

	domain.SortNodes(nodes)

	if parent, ok := ParentDir(dir); ok {
		nodes = append([]domain.Node{domain.NewParentLink(parent)}, nodes...)
	}

	return nodes, nil
}

// ParentDir returns dir with its last component removed.
// ok is false for the filesystem root.
func ParentDir(dir string) (string, bool) {
	parent := filepath.Dir(filepath.Clean(dir))
	if parent == filepath.Clean(dir) {
		return "", false
	}
	return parent, true
}

func classify(mode os.FileMode) domain.Kind {
	switch {
	case mode.IsDir():
		return domain.KindCollection
	case mode.IsRegular():
		return domain.KindDocument
	default:
		return domain.KindError
	}
}
