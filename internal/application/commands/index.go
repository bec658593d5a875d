package commands

import (
	"context"
	"fmt"

	"noteworthy/internal/application"
	"noteworthy/internal/domain"
	"noteworthy/internal/ports"
)

// BuildIndexResult contains the outcome of an index build
type BuildIndexResult struct {
	Stats   domain.BuildStats
	Message string
}

// BuildIndexCommand rebuilds the remote index from a descriptor directory
type BuildIndexCommand struct {
	builder       ports.IndexBuilder
	scanner       ports.DescriptorScanner
	DescriptorDir string
}

// NewBuildIndexCommand creates a new BuildIndexCommand
func NewBuildIndexCommand(builder ports.IndexBuilder, scanner ports.DescriptorScanner, descriptorDir string) *BuildIndexCommand {
	return &BuildIndexCommand{
		builder:       builder,
		scanner:       scanner,
		DescriptorDir: descriptorDir,
	}
}

// Validate checks that the descriptor directory exists
func (c *BuildIndexCommand) Validate() error {
	return application.ValidateDirectory("descriptorDir", c.DescriptorDir)
}

// Execute runs the build index command
func (c *BuildIndexCommand) Execute(ctx context.Context) (*BuildIndexResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	paths, err := c.scanner.Scan(c.DescriptorDir)
	if err != nil {
		return nil, fmt.Errorf("failed to scan descriptors: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	stats, err := c.builder.Rebuild(paths)
	if err != nil {
		return nil, fmt.Errorf("failed to build index: %w", err)
	}

	return &BuildIndexResult{
		Stats:   stats,
		Message: FormatStats(stats),
	}, nil
}

// FormatStats renders build statistics as a one-line summary
func FormatStats(s domain.BuildStats) string {
	msg := fmt.Sprintf("Indexed %d objects from %d descriptors", s.RowsInserted, s.FilesScanned)
	if s.FilesSkipped > 0 {
		msg += fmt.Sprintf(", skipped %d", s.FilesSkipped)
	}
	if s.ErrorRows > 0 {
		msg += fmt.Sprintf(", %d unrecognized", s.ErrorRows)
	}
	return msg
}
