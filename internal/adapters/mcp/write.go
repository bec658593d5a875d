package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"noteworthy/internal/application/commands"
	"noteworthy/internal/ports"
)

// IndexDeps are the collaborators used by the tools that replace the index
type IndexDeps struct {
	Builder       ports.IndexBuilder
	Scanner       ports.DescriptorScanner
	Syncer        ports.Syncer
	DescriptorDir string
}

// RegisterIndexTools adds the rebuild and sync tools to the MCP server.
func RegisterIndexTools(s *server.MCPServer, deps IndexDeps) {
	s.AddTool(rebuildTool(), rebuildHandler(deps))
	s.AddTool(syncTool(), syncHandler(deps))
}

// --- rebuild_index ---

func rebuildTool() mcp.Tool {
	return mcp.NewTool("rebuild_index",
		mcp.WithDescription("Re-read every descriptor file and atomically replace the index."),
	)
}

func rebuildHandler(deps IndexDeps) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := commands.NewBuildIndexCommand(deps.Builder, deps.Scanner, deps.DescriptorDir).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- sync ---

func syncTool() mcp.Tool {
	return mcp.NewTool("sync",
		mcp.WithDescription("Copy descriptor files from the device with the configured sync command, then rebuild the index."),
	)
}

func syncHandler(deps IndexDeps) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		synced, err := commands.NewSyncCommand(deps.Syncer, deps.Scanner, deps.DescriptorDir).Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		stats, err := deps.Builder.Rebuild(synced.Paths)
		if err != nil {
			return toolError(fmt.Errorf("failed to build index: %w", err))
		}
		return mcp.NewToolResultText(fmt.Sprintf("Synced in %s. %s", synced.Duration.Round(time.Millisecond), commands.FormatStats(stats))), nil
	}
}
