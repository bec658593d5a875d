// Package transport moves descriptor files from the device to local
// storage by running an external command.
package transport

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"go.uber.org/zap"

	"noteworthy/internal/domain"
)

// DefaultTimeout bounds a single sync run
const DefaultTimeout = 5 * time.Minute

// CommandSyncer implements ports.Syncer by running a shell-free command line,
// e.g. "rsync -a tablet:/home/root/.local/share/remarkable/xochitl/ ./raw-files"
type CommandSyncer struct {
	args    []string
	dir     string
	timeout time.Duration
	log     *zap.Logger
}

// Option configures the CommandSyncer
type Option func(*CommandSyncer)

// WithWorkDir runs the command inside dir
func WithWorkDir(dir string) Option {
	return func(s *CommandSyncer) {
		s.dir = dir
	}
}

// WithTimeout overrides DefaultTimeout. Zero disables the timeout.
func WithTimeout(d time.Duration) Option {
	return func(s *CommandSyncer) {
		s.timeout = d
	}
}

// WithLogger sets the logger used for command output
func WithLogger(log *zap.Logger) Option {
	return func(s *CommandSyncer) {
		s.log = log
	}
}

// NewCommandSyncer creates a syncer for commandLine. Arguments are split on
// whitespace; an empty command line yields a syncer that is never available.
func NewCommandSyncer(commandLine string, opts ...Option) *CommandSyncer {
	s := &CommandSyncer{
		args:    strings.Fields(commandLine),
		timeout: DefaultTimeout,
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// IsAvailable reports whether a command is configured
func (s *CommandSyncer) IsAvailable() bool {
	return len(s.args) > 0
}

// Sync runs the command and waits for it to finish
func (s *CommandSyncer) Sync(ctx context.Context) error {
	if !s.IsAvailable() {
		return domain.ErrSyncUnavailable
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, s.args[0], s.args[1:]...)
	cmd.Dir = s.dir

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	start := time.Now()
	s.log.Info("sync started", zap.Strings("args", s.args))

	output, err := cmd.Output()
	if err != nil {
		s.log.Error("sync failed",
			zap.Error(err),
			zap.String("stderr", strings.TrimSpace(stderr.String())),
		)

		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && stderr.Len() > 0 {
			return fmt.Errorf("%s: %s", s.args[0], strings.TrimSpace(stderr.String()))
		}
		return fmt.Errorf("%s: %w", s.args[0], err)
	}

	s.log.Info("sync finished",
		zap.Duration("duration", time.Since(start)),
		zap.Int("output_bytes", len(output)),
	)
	return nil
}
