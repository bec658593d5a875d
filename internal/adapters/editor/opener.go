// Package editor hands local documents to the user's editor.
package editor

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// ErrNoEditor is returned when neither $VISUAL nor $EDITOR is set and no
// fallback editor is installed
var ErrNoEditor = errors.New("no editor found: set $EDITOR")

// Opener implements ports.EditorOpener
type Opener struct {
	lookup    func(string) (string, bool)
	fallbacks []string
}

// Option configures the Opener
type Option func(*Opener)

// WithLookup replaces os.LookupEnv for reading $VISUAL and $EDITOR
func WithLookup(lookup func(string) (string, bool)) Option {
	return func(o *Opener) {
		o.lookup = lookup
	}
}

// WithFallbacks sets the editors tried when no variable is set
func WithFallbacks(names ...string) Option {
	return func(o *Opener) {
		o.fallbacks = names
	}
}

// NewOpener creates a new editor opener
func NewOpener(opts ...Option) *Opener {
	o := &Opener{
		lookup:    os.LookupEnv,
		fallbacks: []string{"nvim", "vim", "vi", "nano"},
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// OpenFile runs the editor on path and waits for it to exit
func (o *Opener) OpenFile(path string) error {
	cmd, err := o.Command(path)
	if err != nil {
		return err
	}
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// Command returns the editor process for path. Only regular files can be
// opened. The terminal is wired up by the caller (tea.ExecProcess does it).
func (o *Opener) Command(path string) (*exec.Cmd, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open %s: %w", path, err)
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("cannot open %s: not a regular file", path)
	}

	argv := o.editorArgs()
	if len(argv) == 0 {
		return nil, ErrNoEditor
	}

	args := append(argv[1:], path)
	return exec.Command(argv[0], args...), nil
}

// editorArgs returns the editor command split into words, so values such
// as "code --wait" work
func (o *Opener) editorArgs() []string {
	for _, key := range []string{"VISUAL", "EDITOR"} {
		if v, ok := o.lookup(key); ok {
			if fields := strings.Fields(v); len(fields) > 0 {
				return fields
			}
		}
	}

	for _, name := range o.fallbacks {
		if path, err := exec.LookPath(name); err == nil {
			return []string{path}
		}
	}
	return nil
}
