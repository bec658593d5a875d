package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"noteworthy/internal/adapters/tui/styles"
	"noteworthy/internal/application/navigation"
)

// PaneChrome is the number of rows a pane uses besides its listing:
// the top and bottom border plus the title line
const PaneChrome = 3

// ScreenChrome is the number of rows outside the panes: status and help lines
const ScreenChrome = 2

// ViewportHeight returns the listing rows available for a terminal height
func ViewportHeight(termHeight int) int {
	return max(termHeight-ScreenChrome-PaneChrome, 1)
}

// RenderPane draws one list block inside a bordered box of the given outer size
func RenderPane(st *styles.Styles, b *navigation.ListBlock, width, height int) string {
	box := st.Pane
	if b.Focused() {
		box = st.PaneFocused
	}

	inner := max(width-box.GetHorizontalFrameSize(), 1)
	rows := max(height-PaneChrome, 1)

	lines := make([]string, 0, rows+1)
	lines = append(lines, st.PaneTitle.Render(Truncate(paneTitle(b), inner)))

	for _, row := range b.Display() {
		lines = append(lines, renderRow(st, row, inner))
	}
	for len(lines) < rows+1 {
		lines = append(lines, "")
	}

	return box.
		Width(inner).
		Height(rows + 1).
		Render(strings.Join(lines, "\n"))
}

func paneTitle(b *navigation.ListBlock) string {
	if n := len(b.Highlighted()); n > 0 {
		return fmt.Sprintf("%s (%d marked)", b.Title(), n)
	}
	return b.Title()
}

func renderRow(st *styles.Styles, row navigation.DisplayRow, width int) string {
	style := st.Node(row.Kind)
	if row.Highlighted {
		style = style.Foreground(st.Highlight)
	}
	if row.Cursor {
		style = style.Inherit(st.NodeCursor)
	}
	return style.Render(PadRight(Truncate(row.Label, width), width))
}

// RenderPanes lays the local and remote panes out side by side
func RenderPanes(st *styles.Styles, c *navigation.Controller, width, height int) string {
	left := width / 2
	right := width - left
	return lipgloss.JoinHorizontal(lipgloss.Top,
		RenderPane(st, c.Local(), left, height),
		RenderPane(st, c.Remote(), right, height),
	)
}

// RenderStatus draws the status line: focused pane, its parent reference
// and the number of marked entries. extra is appended when non-empty.
func RenderStatus(st *styles.Styles, c *navigation.Controller, width int, extra string) string {
	focused := c.Focused()

	text := fmt.Sprintf("%s  %d marked", focused.Parent(), len(focused.Highlighted()))
	if extra != "" {
		text += "  " + extra
	}

	keyPart := st.StatusKey.Render(focused.Title())
	avail := max(width-lipgloss.Width(keyPart)-st.StatusBar.GetHorizontalFrameSize(), 0)

	return lipgloss.JoinHorizontal(lipgloss.Top,
		keyPart,
		st.StatusBar.Render(PadRight(Truncate(text, avail), avail)),
	)
}
