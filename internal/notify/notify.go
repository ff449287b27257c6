// Package notify prints short toast-style notifications.
package notify

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/Paintersrp/cheats/internal/sheet"
)

var (
	successStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#0C8"))
	failureStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F55"))
	warningStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FA0"))
	messageStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#999999"))
)

// Notifier writes toasts, one per line, as "✔ Title  message".
type Notifier struct {
	w io.Writer
}

func New(w io.Writer) *Notifier {
	return &Notifier{w: w}
}

func (n *Notifier) Success(title, message string) {
	n.toast(successStyle, "✔", title, message)
}

func (n *Notifier) Failure(title, message string) {
	n.toast(failureStyle, "✖", title, message)
}

func (n *Notifier) Warning(title, message string) {
	n.toast(warningStyle, "!", title, message)
}

// Fallback warns that content for name did not come from the network.
// It prints nothing for a successful fetch.
func (n *Notifier) Fallback(name string, reason sheet.FallbackReason) {
	if reason == sheet.ReasonNone {
		return
	}
	n.Warning(reason.Message(), fmt.Sprintf("%q could not be fetched", name))
}

func (n *Notifier) toast(style lipgloss.Style, icon, title, message string) {
	line := style.Render(icon + " " + title)
	if message != "" {
		line += "  " + messageStyle.Render(message)
	}
	fmt.Fprintln(n.w, line)
}
