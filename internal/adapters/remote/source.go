// Package remote lists the device's document tree from the tree index.
package remote

import (
	"noteworthy/internal/domain"
	"noteworthy/internal/ports"
)

// Source implements ports.TreeSource over a ports.TreeIndex
type Source struct {
	index ports.TreeIndex
}

// Ensure Source implements TreeSource
var _ ports.TreeSource = (*Source)(nil)

// NewSource creates an index-backed tree source
func NewSource(index ports.TreeIndex) *Source {
	return &Source{index: index}
}

// Root returns the identifier of the top collection
func (s *Source) Root() string {
	return domain.RootID
}

// Canonical maps a blank reference to the root. Object ids are opaque
// and otherwise returned unchanged.
func (s *Source) Canonical(ref string) string {
	if ref == "" {
		return domain.RootID
	}
	return ref
}

// Resolve lists the children of the object ref, skipping rows whose
// descriptor type could not be classified
func (s *Source) Resolve(ref string) ([]domain.Node, error) {
	if s.index == nil {
		return nil, &domain.ResolveError{Ref: ref, Err: domain.ErrIndexUninitialized}
	}

	rows, err := s.index.ChildrenOf(ref)
	if err != nil {
		return nil, &domain.ResolveError{Ref: ref, Err: err}
	}

	nodes := make([]domain.Node, 0, len(rows)+1)
	for _, row := range rows {
		if row.Kind != domain.KindCollection && row.Kind != domain.KindDocument {
			continue
		}
		nodes = append(nodes, row.Node())
	}

	domain.SortNodes(nodes)

	if ref == domain.RootID {
		return nodes, nil
	}

	parentID := domain.RootID
	parent, ok, err := s.index.ParentOf(ref)
	if err != nil {
		return nil, &domain.ResolveError{Ref: ref, Err: err}
	}
	if ok {
		parentID = parent.ID
	}

	return append([]domain.Node{domain.NewParentLink(parentID)}, nodes...), nil
}
