package ports

import "context"

// Syncer copies the remote device's descriptor files to local storage
type Syncer interface {
	// Sync blocks until the transfer finishes
	Sync(ctx context.Context) error

	// IsAvailable returns true if a transfer can be attempted
	IsAvailable() bool
}
