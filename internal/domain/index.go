package domain

import (
	"strconv"
	"time"
)

// RootID is the identifier of the remote tree's root collection.
// Descriptors with a blank parent are children of it.
const RootID = "root"

// Row is one object of the remote document tree as recorded in the index
type Row struct {
	ID           string // Descriptor file name without extension (primary key)
	Name         string // visibleName
	ParentID     string // RootID for top-level objects
	LastModified string // Raw lastModified value (milliseconds since epoch)
	Pinned       bool
	Kind         Kind // KindCollection, KindDocument or KindError
}

// RootRow returns the synthetic row representing the tree root
func RootRow() Row {
	return Row{ID: RootID, Kind: KindCollection}
}

// Node converts a row into a listing entry
func (r Row) Node() Node {
	return Node{Name: r.Name, ID: r.ID, Kind: r.Kind}
}

// ModTime parses LastModified. The zero time is returned if it is not a number.
func (r Row) ModTime() time.Time {
	ms, err := strconv.ParseInt(r.LastModified, 10, 64)
	if err != nil {
		return time.Time{}
	}
	return time.UnixMilli(ms)
}

// Modified renders ModTime in UTC for listings, or "-" when it is unknown
func (r Row) Modified() string {
	t := r.ModTime()
	if t.IsZero() {
		return "-"
	}
	return t.UTC().Format(time.DateTime)
}

// BuildStats holds statistics from an index build
type BuildStats struct {
	FilesScanned int
	FilesSkipped int
	RowsInserted int
	ErrorRows    int
	Duration     time.Duration
}

// TreeNode is one object of the remote tree with its descendants attached
type TreeNode struct {
	Row      Row
	Children []*TreeNode
	Depth    int
}

// Count returns the number of nodes in the subtree, n included
func (n *TreeNode) Count() int {
	total := 1
	for _, c := range n.Children {
		total += c.Count()
	}
	return total
}
