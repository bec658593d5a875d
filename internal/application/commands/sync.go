package commands

import (
	"context"
	"fmt"
	"time"

	"noteworthy/internal/domain"
	"noteworthy/internal/ports"
)

// SyncResult contains the descriptor files present after a sync
type SyncResult struct {
	Paths    []string
	Duration time.Duration
}

// SyncCommand pulls descriptor files from the device and lists what arrived.
// Building the index from the result is left to the caller so the swap can
// happen on the caller's goroutine.
type SyncCommand struct {
	syncer        ports.Syncer
	scanner       ports.DescriptorScanner
	DescriptorDir string
}

// NewSyncCommand creates a new SyncCommand
func NewSyncCommand(syncer ports.Syncer, scanner ports.DescriptorScanner, descriptorDir string) *SyncCommand {
	return &SyncCommand{
		syncer:        syncer,
		scanner:       scanner,
		DescriptorDir: descriptorDir,
	}
}

// Execute runs the sync command
func (c *SyncCommand) Execute(ctx context.Context) (*SyncResult, error) {
	if c.syncer == nil || !c.syncer.IsAvailable() {
		return nil, domain.ErrSyncUnavailable
	}

	start := time.Now()
	if err := c.syncer.Sync(ctx); err != nil {
		return nil, fmt.Errorf("sync failed: %w", err)
	}

	paths, err := c.scanner.Scan(c.DescriptorDir)
	if err != nil {
		return nil, fmt.Errorf("failed to scan descriptors: %w", err)
	}

	return &SyncResult{
		Paths:    paths,
		Duration: time.Since(start),
	}, nil
}
