// Package tui is the dual-pane terminal interface.
package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"noteworthy/internal/adapters/sqlite"
	"noteworthy/internal/adapters/tui/styles"
	"noteworthy/internal/adapters/tui/views"
	"noteworthy/internal/application/commands"
	"noteworthy/internal/application/navigation"
	"noteworthy/internal/config"
	"noteworthy/internal/domain"
	"noteworthy/internal/ports"
)

// ViewState represents the current view
type ViewState int

const (
	ViewPanes ViewState = iota
	ViewHelp
)

// App is the main TUI application model
type App struct {
	views.ViewState

	settings   config.Settings
	controller *navigation.Controller
	index      *sqlite.Index
	scanner    ports.DescriptorScanner
	syncer     ports.Syncer
	editor     ports.EditorOpener
	copy       func(string) error
	log        *zap.Logger

	ctx    context.Context
	cancel context.CancelFunc

	st            *styles.Styles
	state         ViewState
	help          *views.HelpModel
	notifications views.NotificationQueue
	spinner       spinner.Model
	busy          string // Non-empty while a sync or rebuild runs
}

// Option configures the App
type Option func(*App)

// WithSyncer sets the collaborator used by the sync key
func WithSyncer(s ports.Syncer) Option {
	return func(a *App) {
		a.syncer = s
	}
}

// WithEditor sets the opener used for local documents
func WithEditor(e ports.EditorOpener) Option {
	return func(a *App) {
		a.editor = e
	}
}

// WithScanner replaces the descriptor scanner used by sync and reload
func WithScanner(s ports.DescriptorScanner) Option {
	return func(a *App) {
		a.scanner = s
	}
}

// WithClipboard replaces the system clipboard writer
func WithClipboard(write func(string) error) Option {
	return func(a *App) {
		a.copy = write
	}
}

// WithLogger sets the application logger
func WithLogger(log *zap.Logger) Option {
	return func(a *App) {
		a.log = log
	}
}

// NewApp creates a new TUI application around a resolved controller.
// Startup errors can be handed over with Notify before the program runs.
func NewApp(controller *navigation.Controller, index *sqlite.Index, scanner ports.DescriptorScanner, settings config.Settings, opts ...Option) *App {
	st := styles.New(settings.Theme)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = st.HelpKey

	ctx, cancel := context.WithCancel(context.Background())

	a := &App{
		settings:   settings,
		controller: controller,
		index:      index,
		scanner:    scanner,
		copy:       clipboard.WriteAll,
		log:        zap.NewNop(),
		ctx:        ctx,
		cancel:     cancel,
		st:         st,
		state:      ViewPanes,
		help:       views.NewHelpModel(st),
		spinner:    sp,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Notify queues a notification
func (a *App) Notify(level views.Level, text string) {
	a.notifications.Push(views.Notification{Text: text, Level: level})
}

// NotifyError queues err as a low-severity error and logs it
func (a *App) NotifyError(err error) {
	if err == nil {
		return
	}
	a.log.Warn("operation failed", zap.Error(err))
	a.Notify(views.LevelErrorLow, err.Error())
}

// Notifications returns the number of pending notifications
func (a *App) Notifications() int {
	return a.notifications.Len()
}

// Controller returns the pane controller
func (a *App) Controller() *navigation.Controller {
	return a.controller
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return nil
}

// indexBuiltMsg carries a finished background build to the UI goroutine
type indexBuiltMsg struct {
	op   string
	snap *sqlite.Snapshot
	err  error
}

type editorFinishedMsg struct{ err error }

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetSize(msg.Width, msg.Height)
		a.help.SetSize(msg.Width, msg.Height)
		a.controller.SetViewportHeight(views.ViewportHeight(msg.Height))
		return a, nil

	case spinner.TickMsg:
		if a.busy == "" {
			return a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd

	case indexBuiltMsg:
		a.finishBuild(msg)
		return a, nil

	case editorFinishedMsg:
		if msg.err != nil {
			a.NotifyError(fmt.Errorf("editor: %w", msg.err))
		}
		a.NotifyError(a.controller.Local().Resolve())
		return a, nil

	case views.CloseHelpMsg:
		a.state = ViewPanes
		return a, nil

	case tea.KeyMsg:
		if a.state == ViewHelp {
			_, cmd := a.help.Update(msg)
			return a, cmd
		}
		return a, a.handleKey(msg)
	}

	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, views.Keys.Quit):
		a.cancel()
		return tea.Quit

	case key.Matches(msg, views.Keys.Dismiss):
		a.notifications.Pop()
		return nil
	}

	// Pane keys wait until every notification has been dismissed
	if a.notifications.Len() > 0 {
		return nil
	}

	switch {
	case key.Matches(msg, views.Keys.Up):
		a.controller.CursorMove(navigation.Up)
	case key.Matches(msg, views.Keys.Down):
		a.controller.CursorMove(navigation.Down)
	case key.Matches(msg, views.Keys.PageUp):
		a.controller.CursorMove(navigation.PageUp)
	case key.Matches(msg, views.Keys.PageDown):
		a.controller.CursorMove(navigation.PageDown)
	case key.Matches(msg, views.Keys.Focus):
		a.controller.ToggleFocus()
	case key.Matches(msg, views.Keys.Expand):
		a.NotifyError(a.controller.ExpandSelection())
	case key.Matches(msg, views.Keys.Highlight):
		a.NotifyError(a.controller.ToggleHighlightSelection())
	case key.Matches(msg, views.Keys.Clear):
		a.controller.Focused().ClearHighlights()
	case key.Matches(msg, views.Keys.Sync):
		return a.startBuild("sync")
	case key.Matches(msg, views.Keys.Reload):
		return a.startBuild("reload")
	case key.Matches(msg, views.Keys.Open):
		return a.openSelected()
	case key.Matches(msg, views.Keys.Yank):
		a.yankSelected()
	case key.Matches(msg, views.Keys.Help):
		a.state = ViewHelp
	}
	return nil
}

// startBuild runs op ("sync" or "reload") off the UI goroutine. Only the
// build happens there; the snapshot is published in finishBuild.
func (a *App) startBuild(op string) tea.Cmd {
	if a.busy != "" {
		a.Notify(views.LevelMessage, fmt.Sprintf("%s already in progress", a.busy))
		return nil
	}
	if op == "sync" && (a.syncer == nil || !a.syncer.IsAvailable()) {
		a.NotifyError(fmt.Errorf("set %s to enable sync: %w", config.EnvSyncCommand, domain.ErrSyncUnavailable))
		return nil
	}

	a.busy = op
	a.log.Info("index build started", zap.String("op", op))

	ctx, index, scanner, syncer, dir := a.ctx, a.index, a.scanner, a.syncer, a.settings.DescriptorDir
	build := func() tea.Msg {
		var paths []string
		if op == "sync" {
			res, err := commands.NewSyncCommand(syncer, scanner, dir).Execute(ctx)
			if err != nil {
				return indexBuiltMsg{op: op, err: err}
			}
			paths = res.Paths
		} else {
			var err error
			if paths, err = scanner.Scan(dir); err != nil {
				return indexBuiltMsg{op: op, err: err}
			}
		}

		snap, err := index.Build(paths)
		return indexBuiltMsg{op: op, snap: snap, err: err}
	}

	return tea.Batch(a.spinner.Tick, build)
}

func (a *App) finishBuild(msg indexBuiltMsg) {
	a.busy = ""

	if msg.err != nil {
		a.log.Error("index build failed", zap.String("op", msg.op), zap.Error(msg.err))
		a.Notify(views.LevelErrorMid, fmt.Sprintf("%s failed: %v", msg.op, msg.err))
		return
	}

	a.index.Publish(msg.snap)
	stats := msg.snap.Stats()
	a.log.Info("index published",
		zap.String("op", msg.op),
		zap.Uint64("generation", msg.snap.Generation()),
		zap.Int("rows", stats.RowsInserted),
	)

	if err := a.controller.RefreshViews(); err != nil {
		a.NotifyError(err)
		return
	}
	a.Notify(views.LevelSuccess, commands.FormatStats(stats))
}

// openSelected opens the local document under the cursor in the editor
func (a *App) openSelected() tea.Cmd {
	if a.controller.Focus() != navigation.PaneLocal {
		a.Notify(views.LevelMessage, "Only local documents can be opened")
		return nil
	}
	node, ok := a.controller.Focused().Selected()
	if !ok || node.Kind != domain.KindDocument {
		return nil
	}
	if a.editor == nil {
		a.NotifyError(errors.New("no editor configured"))
		return nil
	}

	cmd, err := a.editor.Command(node.ID)
	if err != nil {
		a.NotifyError(err)
		return nil
	}

	a.log.Debug("opening editor", zap.String("path", node.ID))
	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return editorFinishedMsg{err: err}
	})
}

// yankSelected copies the identifier under the cursor
func (a *App) yankSelected() {
	node, ok := a.controller.Focused().Selected()
	if !ok || node.Kind == domain.KindParentLink {
		return
	}
	if err := a.copy(node.ID); err != nil {
		a.NotifyError(fmt.Errorf("clipboard: %w", err))
		return
	}
	a.Notify(views.LevelSuccess, "Copied "+node.ID)
}

// View renders the current view
func (a *App) View() string {
	if a.Width == 0 {
		return "Loading..."
	}
	if a.state == ViewHelp {
		return a.help.View()
	}

	extra := ""
	if a.busy != "" {
		extra = a.spinner.View() + " " + a.busy + "ing"
	}
	status := views.RenderStatus(a.st, a.controller, a.Width, extra)
	footer := views.RenderHelpLine(a.st, views.Keys.ShortHelp()...)

	bodyHeight := max(a.Height-views.ScreenChrome, views.PaneChrome+1)
	body := views.RenderPanes(a.st, a.controller, a.Width, bodyHeight)
	if n, ok := a.notifications.Peek(); ok {
		body = views.RenderNotification(a.st, n, a.Width, bodyHeight)
	}

	return status + "\n" + body + "\n" + footer
}
