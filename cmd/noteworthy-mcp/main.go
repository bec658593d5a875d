package main

import (
	"context"
	"flag"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"noteworthy/internal/adapters/descriptor"
	"noteworthy/internal/adapters/filesystem"
	mcpadapter "noteworthy/internal/adapters/mcp"
	"noteworthy/internal/adapters/remote"
	"noteworthy/internal/adapters/sqlite"
	"noteworthy/internal/adapters/transport"
	"noteworthy/internal/application/commands"
	"noteworthy/internal/config"
	"noteworthy/internal/logging"
)

func main() {
	settings := config.Load()

	descriptorsFlag := flag.String("descriptors", settings.DescriptorDir, "directory holding the device's descriptor files")
	hiddenFlag := flag.Bool("hidden", settings.ShowHiddenFiles, "include hidden files in local listings")
	flag.Parse()

	// stdout carries the protocol, so logs only go to a file
	logger := logging.OrNop(logging.Config{
		Level:      settings.LogLevel,
		OutputPath: settings.LogPath,
	})
	defer logger.Sync()

	index := sqlite.NewIndex(sqlite.WithLogger(logger))
	defer index.Close()

	scanner := descriptor.Scanner{}
	if result, err := commands.NewBuildIndexCommand(index, scanner, *descriptorsFlag).Execute(context.Background()); err != nil {
		logger.Warn("initial index build failed", zap.Error(err))
	} else {
		logger.Info("initial index built", zap.String("summary", result.Message))
	}

	mcpServer := server.NewMCPServer(
		"noteworthy-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check, returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterReadTools(mcpServer, mcpadapter.ReadDeps{
		Local:  filesystem.NewSource(filesystem.WithHiddenFiles(*hiddenFlag)),
		Remote: remote.NewSource(index),
		Index:  index,
		Status: index,
	})
	mcpadapter.RegisterIndexTools(mcpServer, mcpadapter.IndexDeps{
		Builder:       index,
		Scanner:       scanner,
		Syncer:        transport.NewCommandSyncer(settings.SyncCommand, transport.WithLogger(logger)),
		DescriptorDir: *descriptorsFlag,
	})

	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatalf("noteworthy-mcp: %v", err)
	}
}
