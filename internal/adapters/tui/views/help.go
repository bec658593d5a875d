package views

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"noteworthy/internal/adapters/tui/styles"
)

// HelpKeyMap defines key bindings for the help view
type HelpKeyMap struct {
	Close key.Binding
}

var HelpKeys = HelpKeyMap{
	Close: key.NewBinding(
		key.WithKeys("esc", "q", "?"),
		key.WithHelp("esc/q/?", "close"),
	),
}

// CloseHelpMsg asks the app to return to the panes
type CloseHelpMsg struct{}

var helpSections = []string{"Navigation", "Selection", "Device", "General"}

// HelpModel is the model for the help view
type HelpModel struct {
	ViewState
	st *styles.Styles
}

// NewHelpModel creates a new help view model
func NewHelpModel(st *styles.Styles) *HelpModel {
	return &HelpModel{st: st}
}

// Init initializes the help view
func (m *HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the help view
func (m *HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, HelpKeys.Close) {
			return m, func() tea.Msg {
				return CloseHelpMsg{}
			}
		}
	}

	return m, nil
}

// View renders the help view
func (m *HelpModel) View() string {
	v := NewViewBuilder(m.st).
		Title("Noteworthy Help").
		Subtitle("Local files on the left, device documents on the right")

	for i, group := range Keys.FullHelp() {
		if i < len(helpSections) {
			v.Section(helpSections[i])
		}
		for _, b := range group {
			v.Line(m.helpLine(b))
		}
		v.BlankLine()
	}

	v.Muted("Press esc or ? to close")

	return lipgloss.NewStyle().Padding(1, 2).Render(v.String())
}

func (m *HelpModel) helpLine(b key.Binding) string {
	h := b.Help()
	return "  " + m.st.HelpKey.Render(PadRight(h.Key, 12)) + m.st.HelpDesc.Render(h.Desc)
}
