package commands

import (
	"context"
	"fmt"
	"slices"

	"noteworthy/internal/application"
	"noteworthy/internal/domain"
	"noteworthy/internal/ports"
)

// ListChildrenCommand resolves one listing from a tree source
type ListChildrenCommand struct {
	source ports.TreeSource
	Ref    string
}

// NewListChildrenCommand creates a new ListChildrenCommand.
// An empty ref lists the source's root.
func NewListChildrenCommand(source ports.TreeSource, ref string) *ListChildrenCommand {
	return &ListChildrenCommand{
		source: source,
		Ref:    ref,
	}
}

// Execute runs the list children command
func (c *ListChildrenCommand) Execute(ctx context.Context) ([]domain.Node, error) {
	ref := c.Ref
	if ref == "" {
		ref = c.source.Root()
	}
	return c.source.Resolve(c.source.Canonical(ref))
}

// DefaultTreeDepth bounds BuildTreeCommand when no depth is given
const DefaultTreeDepth = 32

// BuildTreeCommand builds the remote tree below a row
type BuildTreeCommand struct {
	index    ports.TreeReader
	RootID   string
	MaxDepth int
}

// NewBuildTreeCommand creates a new BuildTreeCommand.
// An empty rootID starts at the tree root.
func NewBuildTreeCommand(index ports.TreeReader, rootID string, maxDepth int) *BuildTreeCommand {
	if rootID == "" {
		rootID = domain.RootID
	}
	if maxDepth <= 0 {
		maxDepth = DefaultTreeDepth
	}
	return &BuildTreeCommand{
		index:    index,
		RootID:   rootID,
		MaxDepth: maxDepth,
	}
}

// Execute runs the build tree command
func (c *BuildTreeCommand) Execute(ctx context.Context) (*domain.TreeNode, error) {
	root := domain.RootRow()
	if c.RootID != domain.RootID {
		row, ok, err := c.index.Lookup(c.RootID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, &application.LookupError{Source: "remote index", Ref: c.RootID}
		}
		root = row
	}

	node := &domain.TreeNode{Row: root}
	visited := map[string]bool{root.ID: true}
	if err := c.expand(ctx, node, visited); err != nil {
		return nil, err
	}
	return node, nil
}

// expand attaches the collections and documents below n. Rows already
// placed elsewhere in the tree are skipped, which breaks parent cycles.
func (c *BuildTreeCommand) expand(ctx context.Context, n *domain.TreeNode, visited map[string]bool) error {
	if n.Depth >= c.MaxDepth {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	rows, err := c.index.ChildrenOf(n.Row.ID)
	if err != nil {
		return fmt.Errorf("failed to list %s: %w", n.Row.ID, err)
	}
	slices.SortStableFunc(rows, func(a, b domain.Row) int {
		return domain.CompareNodes(a.Node(), b.Node())
	})

	for _, row := range rows {
		if visited[row.ID] || row.Kind == domain.KindError {
			continue
		}
		visited[row.ID] = true

		child := &domain.TreeNode{Row: row, Depth: n.Depth + 1}
		if row.Kind == domain.KindCollection {
			if err := c.expand(ctx, child, visited); err != nil {
				return err
			}
		}
		n.Children = append(n.Children, child)
	}
	return nil
}
