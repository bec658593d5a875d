package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"noteworthy/internal/adapters/descriptor"
	"noteworthy/internal/adapters/editor"
	"noteworthy/internal/adapters/filesystem"
	"noteworthy/internal/adapters/remote"
	"noteworthy/internal/adapters/sqlite"
	"noteworthy/internal/adapters/transport"
	"noteworthy/internal/adapters/tui"
	"noteworthy/internal/application/commands"
	"noteworthy/internal/application/navigation"
	"noteworthy/internal/config"
	"noteworthy/internal/logging"
)

func main() {
	settings := config.Load()

	log := logging.OrNop(logging.Config{
		Level:      settings.LogLevel,
		OutputPath: settings.LogPath,
	})
	defer log.Sync()

	index := sqlite.NewIndex(sqlite.WithLogger(log))
	defer index.Close()

	scanner := descriptor.Scanner{}

	// A missing descriptor directory is not fatal: the device pane reports
	// the unbuilt index and a later sync can fill it
	var startupErrs []error
	result, err := commands.NewBuildIndexCommand(index, scanner, settings.DescriptorDir).Execute(context.Background())
	if err != nil {
		log.Warn("initial index build failed", zap.Error(err))
		startupErrs = append(startupErrs, err)
	} else {
		log.Info("initial index built", zap.String("summary", result.Message))
	}

	controller, err := navigation.NewController(
		navigation.NewListBlock("Local", filesystem.NewSource(filesystem.WithHiddenFiles(settings.ShowHiddenFiles)), settings.LocalRoot),
		navigation.NewListBlock("Device", remote.NewSource(index), ""),
	)
	if err != nil {
		startupErrs = append(startupErrs, err)
	}

	app := tui.NewApp(controller, index, scanner, settings,
		tui.WithLogger(log),
		tui.WithEditor(editor.NewOpener()),
		tui.WithSyncer(transport.NewCommandSyncer(settings.SyncCommand, transport.WithLogger(log))),
	)
	for _, e := range startupErrs {
		app.NotifyError(e)
	}

	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		log.Error("program exited", zap.Error(err))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
