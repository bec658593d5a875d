package navigation

import "errors"

// Pane identifies one side of the controller
type Pane int

const (
	PaneLocal Pane = iota
	PaneRemote
)

func (p Pane) String() string {
	if p == PaneRemote {
		return "remote"
	}
	return "local"
}

// Controller owns the local and remote blocks and forwards input to the
// focused one
type Controller struct {
	local  *ListBlock
	remote *ListBlock
	focus  Pane
}

// NewController resolves both blocks with the local pane focused.
// The controller is returned even if a resolve fails so the caller can
// report the error and keep running.
func NewController(local, remote *ListBlock) (*Controller, error) {
	c := &Controller{local: local, remote: remote, focus: PaneLocal}
	c.syncFocus()
	return c, c.RefreshViews()
}

// Local returns the filesystem pane
func (c *Controller) Local() *ListBlock { return c.local }

// Remote returns the device pane
func (c *Controller) Remote() *ListBlock { return c.remote }

// Focus returns the pane receiving input
func (c *Controller) Focus() Pane { return c.focus }

// Focused returns the block receiving input
func (c *Controller) Focused() *ListBlock {
	if c.focus == PaneRemote {
		return c.remote
	}
	return c.local
}

// ToggleFocus moves input to the other pane
func (c *Controller) ToggleFocus() {
	if c.focus == PaneLocal {
		c.focus = PaneRemote
	} else {
		c.focus = PaneLocal
	}
	c.syncFocus()
}

// CursorMove moves the cursor of the focused block
func (c *Controller) CursorMove(d Direction) {
	c.Focused().CursorMove(d)
	c.syncFocus()
}

// ExpandSelection drills into the selection of the focused block
func (c *Controller) ExpandSelection() error {
	defer c.syncFocus()
	return c.Focused().ExpandSelection()
}

// ToggleHighlightSelection toggles the highlight in the focused block
func (c *Controller) ToggleHighlightSelection() error {
	defer c.syncFocus()
	return c.Focused().ToggleHighlightSelection()
}

// RefreshViews re-resolves both blocks, e.g. after a sync completes.
// Both are attempted even if the first fails.
func (c *Controller) RefreshViews() error {
	return errors.Join(c.local.Resolve(), c.remote.Resolve())
}

// SetViewportHeight applies the drawable height to both blocks
func (c *Controller) SetViewportHeight(height int) {
	c.local.SetViewportHeight(height)
	c.remote.SetViewportHeight(height)
}

func (c *Controller) syncFocus() {
	c.local.SetFocused(c.focus == PaneLocal)
	c.remote.SetFocused(c.focus == PaneRemote)
}
