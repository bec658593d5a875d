package ports

import "noteworthy/internal/domain"

// TreeIndex provides parent/child queries over the remote document tree.
// An index that has never been built returns domain.ErrIndexUninitialized;
// storage failures wrap domain.ErrIndexQuery.
type TreeIndex interface {
	// ChildrenOf returns every row whose parent is id, Error rows included
	ChildrenOf(id string) ([]domain.Row, error)

	// ParentOf returns the parent row of id. ok is false when id is
	// unknown. The parent of a top-level row is domain.RootRow().
	ParentOf(id string) (parent domain.Row, ok bool, err error)
}

// IndexBuilder replaces the contents of an index with the given descriptor
// files. Readers observe either the old rows or the new ones, never a mix.
type IndexBuilder interface {
	Rebuild(paths []string) (domain.BuildStats, error)
}

// RowLookup fetches a single row by identifier
type RowLookup interface {
	Lookup(id string) (row domain.Row, ok bool, err error)
}

// TreeReader is an index that can be walked from any row
type TreeReader interface {
	TreeIndex
	RowLookup
}

// DescriptorScanner lists the descriptor files stored in a directory
type DescriptorScanner interface {
	Scan(dir string) ([]string, error)
}
