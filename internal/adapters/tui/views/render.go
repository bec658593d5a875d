package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"noteworthy/internal/adapters/tui/styles"
)

// RenderKeyHelp formats a key binding as help text (key + description)
func RenderKeyHelp(st *styles.Styles, b key.Binding) string {
	help := b.Help()
	return fmt.Sprintf("%s %s",
		st.HelpKey.Render(help.Key),
		st.HelpDesc.Render(help.Desc),
	)
}

// RenderHelpLine renders multiple key bindings as a help line separated by bullets
func RenderHelpLine(st *styles.Styles, bindings ...key.Binding) string {
	var parts []string
	for _, b := range bindings {
		parts = append(parts, RenderKeyHelp(st, b))
	}
	return strings.Join(parts, st.HelpSeparator.String())
}

// Truncate shortens s to at most width terminal cells, marking the cut with
// an ellipsis
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}

// PadRight pads s with spaces to width terminal cells
func PadRight(s string, width int) string {
	return runewidth.FillRight(s, width)
}

// ViewBuilder accumulates styled lines for full-screen views
type ViewBuilder struct {
	st *styles.Styles
	b  strings.Builder
}

// NewViewBuilder creates a new view builder
func NewViewBuilder(st *styles.Styles) *ViewBuilder {
	return &ViewBuilder{st: st}
}

func (v *ViewBuilder) styled(style lipgloss.Style, text string, newlines int) *ViewBuilder {
	v.b.WriteString(style.Render(text))
	v.b.WriteString(strings.Repeat("\n", newlines))
	return v
}

// Title writes the view heading
func (v *ViewBuilder) Title(title string) *ViewBuilder {
	return v.styled(v.st.Title, title, 1)
}

// Subtitle writes a line under the heading followed by a gap
func (v *ViewBuilder) Subtitle(subtitle string) *ViewBuilder {
	return v.styled(v.st.Subtitle, subtitle, 2)
}

// Section starts a labelled group
func (v *ViewBuilder) Section(label string) *ViewBuilder {
	return v.styled(v.st.SectionLabel, label, 1)
}

// Line writes pre-rendered text
func (v *ViewBuilder) Line(text string) *ViewBuilder {
	v.b.WriteString(text + "\n")
	return v
}

func (v *ViewBuilder) BlankLine() *ViewBuilder {
	v.b.WriteString("\n")
	return v
}

// Muted writes dimmed text
func (v *ViewBuilder) Muted(text string) *ViewBuilder {
	return v.styled(v.st.MutedText, text, 1)
}

func (v *ViewBuilder) String() string {
	return v.b.String()
}
