package views

import (
	"github.com/charmbracelet/lipgloss"

	"noteworthy/internal/adapters/tui/styles"
)

// Level is the severity of a notification
type Level int

const (
	LevelMessage Level = iota
	LevelSuccess
	LevelErrorLow
	LevelErrorMid
	LevelErrorHigh
)

// Title returns the heading shown above a notification of this level
func (l Level) Title() string {
	switch l {
	case LevelSuccess:
		return "Success"
	case LevelErrorLow, LevelErrorMid, LevelErrorHigh:
		return "Error"
	default:
		return "Message"
	}
}

// IsError reports whether the level is one of the error levels
func (l Level) IsError() bool {
	return l >= LevelErrorLow
}

// DismissHint is drawn under every notification
const DismissHint = "[press space to dismiss]"

// Notification is one dismissible message
type Notification struct {
	Text  string
	Level Level
}

// NotificationQueue is a LIFO stack: the newest notification is drawn
// and dismissed first
type NotificationQueue struct {
	items []Notification
}

// Push adds a notification on top
func (q *NotificationQueue) Push(n Notification) {
	q.items = append(q.items, n)
}

// Pop removes the newest notification. ok is false when the queue is empty.
func (q *NotificationQueue) Pop() (n Notification, ok bool) {
	if len(q.items) == 0 {
		return Notification{}, false
	}
	n = q.items[len(q.items)-1]
	q.items = q.items[:len(q.items)-1]
	return n, true
}

// Peek returns the newest notification without removing it
func (q *NotificationQueue) Peek() (Notification, bool) {
	if len(q.items) == 0 {
		return Notification{}, false
	}
	return q.items[len(q.items)-1], true
}

// Len returns the number of pending notifications
func (q *NotificationQueue) Len() int {
	return len(q.items)
}

// RenderNotification draws n as a box centered in an area of width x height
func RenderNotification(st *styles.Styles, n Notification, width, height int) string {
	boxWidth := min(max(width/3, 30), max(width-4, 1))

	text := st.Foreground
	border := st.Foreground
	switch {
	case n.Level == LevelSuccess:
		text, border = st.Success, st.Success
	case n.Level.IsError():
		text, border = st.Alert, st.Alert
	}

	body := lipgloss.JoinVertical(lipgloss.Center,
		lipgloss.NewStyle().Bold(true).Foreground(border).Render(n.Level.Title()),
		"",
		lipgloss.NewStyle().Foreground(text).Width(boxWidth-6).Align(lipgloss.Center).Render(n.Text),
		"",
		st.MutedText.Render(DismissHint),
	)

	box := st.Notification.
		BorderForeground(border).
		Width(boxWidth - 2).
		Render(body)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
