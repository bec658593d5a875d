package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"noteworthy/internal/application/commands"
	"noteworthy/internal/application/navigation"
	"noteworthy/internal/domain"
	"noteworthy/internal/ports"
)

// IndexStatus reports on the published index snapshot
type IndexStatus interface {
	Stats() (domain.BuildStats, bool)
	Generation() uint64
	ErrorRows() ([]domain.Row, error)
}

// ReadDeps are the collaborators used by the read-only tools
type ReadDeps struct {
	Local  ports.TreeSource
	Remote ports.TreeSource
	Index  ports.TreeReader
	Status IndexStatus
}

// RegisterReadTools adds all read-only listing tools to the MCP server.
func RegisterReadTools(s *server.MCPServer, deps ReadDeps) {
	s.AddTool(listLocalTool(), listHandler(deps.Local, "path"))
	s.AddTool(listRemoteTool(), listHandler(deps.Remote, "id"))
	s.AddTool(treeTool(), treeHandler(deps.Index))
	s.AddTool(indexStatsTool(), indexStatsHandler(deps.Status))
}

// --- list_local / list_remote ---

func listLocalTool() mcp.Tool {
	return mcp.NewTool("list_local",
		mcp.WithDescription("List a local directory the way the left pane shows it: parent link first, then directories, then files."),
		mcp.WithString("path",
			mcp.Description("Directory to list. Omit to list the filesystem root."),
		),
	)
}

func listRemoteTool() mcp.Tool {
	return mcp.NewTool("list_remote",
		mcp.WithDescription("List a collection on the device from the descriptor index. Returns each child's kind, id and name."),
		mcp.WithString("id",
			mcp.Description("Collection id to list. Omit to list the top level."),
		),
	)
}

func listHandler(source ports.TreeSource, arg string) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		nodes, err := commands.NewListChildrenCommand(source, req.GetString(arg, "")).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return formatEntities(nodes, formatNode)
	}
}

// --- tree ---

func treeTool() mcp.Tool {
	return mcp.NewTool("tree",
		mcp.WithDescription("Display the device's document tree, collections before documents."),
		mcp.WithString("id",
			mcp.Description("Collection id to start from. Omit for the whole tree."),
		),
		mcp.WithNumber("depth",
			mcp.Description("Maximum depth to descend"),
		),
	)
}

func treeHandler(index ports.TreeReader) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewBuildTreeCommand(index, req.GetString("id", ""), req.GetInt("depth", 0))
		root, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		var sb strings.Builder
		renderTree(&sb, root, "")
		return mcp.NewToolResultText(sb.String()), nil
	}
}

func renderTree(sb *strings.Builder, node *domain.TreeNode, prefix string) {
	if node.Row.ID != domain.RootID {
		label, _ := navigation.Label(node.Row.Node())
		fmt.Fprintf(sb, "%s%s  [%s]\n", prefix, label, node.Row.ID)
		prefix += "  "
	}
	for _, child := range node.Children {
		renderTree(sb, child, prefix)
	}
}

// --- index_stats ---

func indexStatsTool() mcp.Tool {
	return mcp.NewTool("index_stats",
		mcp.WithDescription("Report statistics of the current descriptor index and list descriptors with an unrecognized type."),
	)
}

func indexStatsHandler(status IndexStatus) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		stats, ok := status.Stats()
		if !ok {
			return toolError(domain.ErrIndexUninitialized)
		}

		var sb strings.Builder
		fmt.Fprintf(&sb, "generation: %d\n", status.Generation())
		fmt.Fprintf(&sb, "files scanned: %d\n", stats.FilesScanned)
		fmt.Fprintf(&sb, "files skipped: %d\n", stats.FilesSkipped)
		fmt.Fprintf(&sb, "rows: %d\n", stats.RowsInserted)
		fmt.Fprintf(&sb, "unrecognized: %d\n", stats.ErrorRows)
		fmt.Fprintf(&sb, "build time: %s\n", stats.Duration)

		rows, err := status.ErrorRows()
		if err != nil {
			return toolError(err)
		}
		for _, r := range rows {
			fmt.Fprintf(&sb, "  %s  %s  %s\n", r.ID, r.Name, r.Modified())
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

func formatEntities[T any](entities []T, format func(T) string) (*mcp.CallToolResult, error) {
	if len(entities) == 0 {
		return mcp.NewToolResultText("No results."), nil
	}
	var sb strings.Builder
	for _, e := range entities {
		sb.WriteString(format(e))
		sb.WriteByte('\n')
	}
	return mcp.NewToolResultText(sb.String()), nil
}

func formatNode(n domain.Node) string {
	if n.Kind == domain.KindParentLink {
		return fmt.Sprintf("%-10s  %s  ../", "parent", n.ID)
	}
	return fmt.Sprintf("%-10s  %s  %s", kindName(n.Kind), n.ID, n.Name)
}

func kindName(k domain.Kind) string {
	switch k {
	case domain.KindCollection:
		return "collection"
	case domain.KindDocument:
		return "document"
	default:
		return "other"
	}
}
