package domain

import (
	"cmp"
	"slices"
	"strings"
)

// Kind classifies a listing entry. The declaration order is the sort rank.
type Kind int

const (
	KindParentLink Kind = iota
	KindCollection
	KindDocument
	KindError
	KindUnclassified
)

// String returns the descriptor spelling of the kind
func (k Kind) String() string {
	switch k {
	case KindParentLink:
		return "ReturnType"
	case KindCollection:
		return "CollectionType"
	case KindDocument:
		return "DocumentType"
	case KindError:
		return "ErrorType"
	default:
		return "DefaultType"
	}
}

// ParseKind maps a descriptor "type" value to a Kind.
// Anything other than a collection or a document is KindError.
func ParseKind(s string) Kind {
	switch s {
	case "CollectionType":
		return KindCollection
	case "DocumentType":
		return KindDocument
	default:
		return KindError
	}
}

// Navigable reports whether entries of this kind appear in listings
func (k Kind) Navigable() bool {
	return k == KindParentLink || k == KindCollection || k == KindDocument
}

// Node is one entry in a resolved listing
type Node struct {
	Name        string // Display name, empty for the parent link
	ID          string // Filesystem path or remote object id
	Kind        Kind
	Highlighted bool
}

// NewParentLink returns the synthetic "go up" entry pointing at parentID
func NewParentLink(parentID string) Node {
	return Node{ID: parentID, Kind: KindParentLink}
}

// Equal reports whether two nodes refer to the same entity
func (n Node) Equal(other Node) bool {
	return n.ID == other.ID
}

// CompareNodes orders by kind rank, then case-insensitive name.
// The identifier breaks remaining ties so the order is total.
func CompareNodes(a, b Node) int {
	if c := cmp.Compare(a.Kind, b.Kind); c != 0 {
		return c
	}
	if c := strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name)); c != 0 {
		return c
	}
	return strings.Compare(a.ID, b.ID)
}

// SortNodes sorts a listing in place
func SortNodes(nodes []Node) {
	slices.SortStableFunc(nodes, CompareNodes)
}
