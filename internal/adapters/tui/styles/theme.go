package styles

import (
	"github.com/charmbracelet/lipgloss"

	"noteworthy/internal/config"
	"noteworthy/internal/domain"
)

var (
	// Fixed colors not covered by the configurable theme
	Muted = lipgloss.Color("#6B7280") // Gray
	Black = lipgloss.Color("#000000")
)

// Styles holds every style derived from a theme. It is built once at
// startup and passed to the views.
type Styles struct {
	Foreground lipgloss.Color
	Background lipgloss.Color
	Highlight  lipgloss.Color
	Success    lipgloss.Color
	Alert      lipgloss.Color

	// Panes
	Pane        lipgloss.Style
	PaneFocused lipgloss.Style
	PaneTitle   lipgloss.Style

	// Listing entries
	NodeParentLink lipgloss.Style
	NodeCollection lipgloss.Style
	NodeDocument   lipgloss.Style
	NodeCursor     lipgloss.Style
	NodeHighlight  lipgloss.Style

	// Status bar
	StatusBar  lipgloss.Style
	StatusKey  lipgloss.Style
	StatusText lipgloss.Style

	// Help
	Title         lipgloss.Style
	Subtitle      lipgloss.Style
	SectionLabel  lipgloss.Style
	HelpKey       lipgloss.Style
	HelpDesc      lipgloss.Style
	HelpSeparator lipgloss.Style
	MutedText     lipgloss.Style

	// Notifications
	Notification lipgloss.Style
	SuccessText  lipgloss.Style
	ErrorText    lipgloss.Style
}

// New derives the styles from theme
func New(theme config.Theme) *Styles {
	fg := lipgloss.Color(theme.Foreground)
	bg := lipgloss.Color(theme.Background)
	hl := lipgloss.Color(theme.Highlight)
	ok := lipgloss.Color(theme.Success)
	alert := lipgloss.Color(theme.Alert)

	return &Styles{
		Foreground: fg,
		Background: bg,
		Highlight:  hl,
		Success:    ok,
		Alert:      alert,

		Pane: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Muted),
		PaneFocused: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(hl),
		PaneTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(fg),

		NodeParentLink: lipgloss.NewStyle().
			Bold(true).
			Foreground(fg),
		NodeCollection: lipgloss.NewStyle().
			Bold(true).
			Foreground(fg),
		NodeDocument: lipgloss.NewStyle().
			Italic(true).
			Foreground(fg),
		NodeCursor: lipgloss.NewStyle().
			Reverse(true),
		NodeHighlight: lipgloss.NewStyle().
			Foreground(hl),

		StatusBar: lipgloss.NewStyle().
			Background(bg).
			Foreground(fg).
			Padding(0, 1),
		StatusKey: lipgloss.NewStyle().
			Background(hl).
			Foreground(Black).
			Padding(0, 1).
			MarginRight(1),
		StatusText: lipgloss.NewStyle().
			Foreground(Muted),

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(hl).
			MarginBottom(1),
		Subtitle: lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true),
		SectionLabel: lipgloss.NewStyle().
			Foreground(ok).
			Bold(true),
		HelpKey: lipgloss.NewStyle().
			Foreground(hl).
			Bold(true),
		HelpDesc: lipgloss.NewStyle().
			Foreground(Muted),
		HelpSeparator: lipgloss.NewStyle().
			Foreground(Muted).
			SetString(" • "),
		MutedText: lipgloss.NewStyle().
			Foreground(Muted),

		Notification: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Background(bg).
			Padding(0, 2).
			Align(lipgloss.Center),
		SuccessText: lipgloss.NewStyle().
			Foreground(ok).
			Bold(true),
		ErrorText: lipgloss.NewStyle().
			Foreground(alert).
			Bold(true),
	}
}

// Node returns the base style for an entry of kind k
func (s *Styles) Node(k domain.Kind) lipgloss.Style {
	switch k {
	case domain.KindParentLink:
		return s.NodeParentLink
	case domain.KindCollection:
		return s.NodeCollection
	default:
		return s.NodeDocument
	}
}
