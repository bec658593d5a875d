package ports

import "noteworthy/internal/domain"

// TreeSource resolves a parent reference into its ordered child listing.
// The filesystem and the remote index are the two implementations.
type TreeSource interface {
	// Resolve returns the children of ref, sorted, with a parent link
	// prepended unless ref is the root. Results are deterministic for a
	// fixed underlying tree.
	Resolve(ref string) ([]domain.Node, error)

	// Root returns the reference above which the source cannot walk
	Root() string

	// Canonical returns the spelling of ref that Resolve uses for the
	// identifiers and parent links it produces
	Canonical(ref string) string
}
