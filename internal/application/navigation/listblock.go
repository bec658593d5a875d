// Package navigation holds the per-pane cursor state machine and the
// controller that routes input between the local and remote panes.
package navigation

import (
	"errors"
	"slices"

	"noteworthy/internal/domain"
	"noteworthy/internal/ports"
)

// Direction is a cursor movement request
type Direction int

const (
	Up Direction = iota
	Down
	PageUp
	PageDown
)

// PageStep is the number of rows PageUp and PageDown move
const PageStep = 15

// DefaultViewportHeight is used until the pane learns its drawable height
const DefaultViewportHeight = 20

func (d Direction) delta() int {
	switch d {
	case Up:
		return -1
	case Down:
		return 1
	case PageUp:
		return -PageStep
	case PageDown:
		return PageStep
	default:
		return 0
	}
}

// DisplayRow is one visible, labelled entry of a pane
type DisplayRow struct {
	Index       int // Position in the resolved listing
	Label       string
	Kind        domain.Kind
	Cursor      bool // Only set while the block is focused
	Highlighted bool
}

// ListBlock tracks one pane: the listed parent, its children, the cursor,
// the scroll offset and the highlighted entries.
//
// Invariants: cursor is a valid index into children (0 when empty) and
// offset <= cursor < offset+height.
type ListBlock struct {
	title       string
	source      ports.TreeSource
	parent      string
	children    []domain.Node
	cursor      int
	offset      int
	height      int
	focused     bool
	highlighted map[string]domain.Node
}

// NewListBlock binds a block to source, starting at parent.
// An empty parent starts at the source's root. The reference is stored in
// the source's canonical form so parent links lead back to it exactly.
func NewListBlock(title string, source ports.TreeSource, parent string) *ListBlock {
	if parent == "" {
		parent = source.Root()
	}
	return &ListBlock{
		title:       title,
		source:      source,
		parent:      source.Canonical(parent),
		height:      DefaultViewportHeight,
		highlighted: make(map[string]domain.Node),
	}
}

// Title returns the pane title
func (b *ListBlock) Title() string { return b.title }

// Parent returns the reference currently listed
func (b *ListBlock) Parent() string { return b.parent }

// Cursor returns the cursor index
func (b *ListBlock) Cursor() int { return b.cursor }

// Offset returns the index of the first visible row
func (b *ListBlock) Offset() int { return b.offset }

// Focused reports whether the block receives input
func (b *ListBlock) Focused() bool { return b.focused }

// SetFocused updates the focus flag
func (b *ListBlock) SetFocused(focused bool) { b.focused = focused }

// Children returns a copy of the resolved listing
func (b *ListBlock) Children() []domain.Node {
	return slices.Clone(b.children)
}

// Selected returns the node under the cursor
func (b *ListBlock) Selected() (domain.Node, bool) {
	if b.cursor < 0 || b.cursor >= len(b.children) {
		return domain.Node{}, false
	}
	return b.children[b.cursor], true
}

// Highlighted returns the highlighted nodes in listing order
func (b *ListBlock) Highlighted() []domain.Node {
	nodes := make([]domain.Node, 0, len(b.highlighted))
	for _, n := range b.highlighted {
		nodes = append(nodes, n)
	}
	domain.SortNodes(nodes)
	return nodes
}

// SetViewportHeight sets the number of rows the pane can draw
func (b *ListBlock) SetViewportHeight(height int) {
	b.height = max(height, 1)
	b.trackViewport()
}

// Resolve replaces the listing with a fresh one from the source.
// On failure the previous listing is kept.
func (b *ListBlock) Resolve() error {
	nodes, err := b.source.Resolve(b.parent)
	if err != nil {
		return err
	}

	for i := range nodes {
		_, ok := b.highlighted[nodes[i].ID]
		nodes[i].Highlighted = ok
	}

	b.children = nodes
	if b.cursor >= len(b.children) {
		b.cursor = max(len(b.children)-1, 0)
	}
	b.trackViewport()
	return nil
}

// CursorMove moves the cursor, clamping at both ends of the listing
func (b *ListBlock) CursorMove(d Direction) {
	if len(b.children) == 0 {
		b.cursor = 0
		b.offset = 0
		return
	}

	b.cursor = min(max(b.cursor+d.delta(), 0), len(b.children)-1)
	b.trackViewport()
}

// ExpandSelection drills into the collection or parent link under the
// cursor. Documents are left alone. If the new listing cannot be resolved
// the block returns to the reference it showed before.
func (b *ListBlock) ExpandSelection() error {
	selected, ok := b.Selected()
	if !ok {
		return &domain.AccessError{Index: b.cursor, Len: len(b.children)}
	}

	target, err := b.expandTarget(selected)
	if errors.Is(err, domain.ErrParentLinkAtRoot) {
		return nil
	}
	if err != nil {
		return err
	}
	if target == "" {
		return nil
	}

	prevParent, prevCursor, prevOffset := b.parent, b.cursor, b.offset

	b.parent = target
	b.cursor = 0
	b.offset = 0

	if err := b.Resolve(); err != nil {
		b.parent, b.cursor, b.offset = prevParent, prevCursor, prevOffset
		// The previous reference listed fine before the attempt
		_ = b.Resolve()
		return err
	}
	return nil
}

// expandTarget returns the reference to list for n, or "" for a no-op
func (b *ListBlock) expandTarget(n domain.Node) (string, error) {
	switch n.Kind {
	case domain.KindCollection:
		return n.ID, nil
	case domain.KindParentLink:
		if b.parent == b.source.Root() {
			return "", domain.ErrParentLinkAtRoot
		}
		return n.ID, nil
	default:
		return "", nil
	}
}

// ToggleHighlightSelection flips the highlight of the node under the cursor.
// The parent link cannot be highlighted.
func (b *ListBlock) ToggleHighlightSelection() error {
	if b.cursor < 0 || b.cursor >= len(b.children) {
		return &domain.AccessError{Index: b.cursor, Len: len(b.children)}
	}

	n := &b.children[b.cursor]
	if n.Kind == domain.KindParentLink {
		return nil
	}

	n.Highlighted = !n.Highlighted
	if n.Highlighted {
		b.highlighted[n.ID] = *n
	} else {
		delete(b.highlighted, n.ID)
	}
	return nil
}

// ClearHighlights empties the highlighted set
func (b *ListBlock) ClearHighlights() {
	clear(b.highlighted)
	for i := range b.children {
		b.children[i].Highlighted = false
	}
}

// Display returns the rows inside the viewport with their labels.
// Unclassified and error entries are never shown.
func (b *ListBlock) Display() []DisplayRow {
	end := min(b.offset+b.height, len(b.children))
	if b.offset >= end {
		return nil
	}

	rows := make([]DisplayRow, 0, end-b.offset)
	for i := b.offset; i < end; i++ {
		n := b.children[i]
		label, ok := Label(n)
		if !ok {
			continue
		}
		rows = append(rows, DisplayRow{
			Index:       i,
			Label:       label,
			Kind:        n.Kind,
			Cursor:      b.focused && i == b.cursor,
			Highlighted: n.Highlighted,
		})
	}
	return rows
}

// Label returns the text shown for n. ok is false for kinds that are not drawn.
func Label(n domain.Node) (label string, ok bool) {
	switch n.Kind {
	case domain.KindParentLink:
		return "../", true
	case domain.KindCollection:
		return "/" + n.Name, true
	case domain.KindDocument:
		return n.Name, true
	default:
		return "", false
	}
}

// trackViewport scrolls the minimum number of rows that brings the cursor
// back on screen. Moving inside the visible window never scrolls, and
// crossing the bottom edge leaves the cursor on the last visible row.
func (b *ListBlock) trackViewport() {
	if b.cursor < b.offset {
		b.offset = b.cursor
	}
	if b.cursor >= b.offset+b.height {
		b.offset = b.cursor - b.height + 1
	}
	if b.offset < 0 {
		b.offset = 0
	}
}
