package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/Paintersrp/cheats/internal/catalog"
	"github.com/Paintersrp/cheats/internal/remote"
	"github.com/Paintersrp/cheats/internal/render"
	"github.com/Paintersrp/cheats/internal/sheet"
	"github.com/Paintersrp/cheats/internal/state"
)

var (
	favoriteStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FC0"))
	titleStyle    = lipgloss.NewStyle().Bold(true)
	customStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#0AF"))
	offlineStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#0C8"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#999999"))
)

// FormatEntry renders one list row. width <= 0 disables truncation.
func FormatEntry(e catalog.Entry, width int) string {
	var b strings.Builder
	if e.IsFavorite {
		b.WriteString(favoriteStyle.Render("★") + " ")
	} else {
		b.WriteString("  ")
	}
	b.WriteString(titleStyle.Render(e.Title()))

	if ref, ok := e.Ref.(sheet.CustomRef); ok {
		b.WriteString(" " + customStyle.Render("[custom]"))
		if len(ref.Sheet.Tags) > 0 {
			b.WriteString(" " + dimStyle.Render("#"+strings.Join(ref.Sheet.Tags, " #")))
		}
		if ref.Sheet.Description != "" {
			b.WriteString(" " + dimStyle.Render(ref.Sheet.Description))
		}
	}
	if e.IsOffline {
		b.WriteString(" " + offlineStyle.Render("[offline]"))
	}

	if width <= 0 {
		return b.String()
	}
	return truncate.StringWithTail(b.String(), uint(width), "…")
}

// WriteEntries prints entries one per line, fitted to the terminal.
func WriteEntries(w io.Writer, entries []catalog.Entry) {
	width, _ := render.TerminalWidth(w)
	for _, e := range entries {
		fmt.Fprintln(w, FormatEntry(e, width))
	}
}

// WarnSampleListing tells the user the listing did not come from GitHub.
func WarnSampleListing(s *state.State, source remote.Source) {
	if source == remote.SourceSample {
		s.Notify.Warning(sheet.ReasonSampleData.Message(), "The cheatsheet repository could not be reached")
	}
}

// AutoUpdate refreshes the offline cache when the preferences say it is
// due. Failures never abort the calling command.
func AutoUpdate(ctx context.Context, s *state.State) {
	summary, ran, err := s.Offline.AutoUpdate(ctx, s.Remote)
	if err != nil {
		s.Log.Warn(ctx, "offline auto-update failed", "error", err)
		s.Notify.Warning("Offline update failed", err.Error())
		return
	}
	if !ran {
		return
	}
	if summary.Failed > 0 {
		s.Notify.Warning(
			"Offline update incomplete",
			fmt.Sprintf("%d downloaded, %d failed", summary.Succeeded, summary.Failed),
		)
		return
	}
	s.Log.Info(ctx, "offline cache refreshed", "sheets", summary.Succeeded)
}
