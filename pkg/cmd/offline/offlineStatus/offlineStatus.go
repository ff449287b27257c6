package offlineStatus

import (
	"fmt"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/cheats/internal/prefs"
	"github.com/Paintersrp/cheats/internal/state"
)

func NewCmdOfflineStatus(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show how many cheatsheets are stored offline and when they were updated.",
		Long: heredoc.Doc(`
			Prints the offline storage setting, the number and total size of the
			stored cheatsheets, their age range and whether an update is due.
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			p, err := s.Prefs.Get(ctx)
			if err != nil {
				s.Notify.Failure("Failed to read preferences", err.Error())
				return nil
			}
			st, err := s.Offline.Stats(ctx)
			if err != nil {
				s.Notify.Failure("Failed to read offline cheatsheets", err.Error())
				return nil
			}
			now := s.Prefs.Now()

			fmt.Fprintf(s.Out, "Offline storage: %s\n", onOff(p.EnableOfflineStorage))
			fmt.Fprintf(s.Out, "Stored sheets:   %d (%s)\n", st.Count, humanize.Bytes(uint64(st.TotalSize)))
			if st.Count > 0 {
				fmt.Fprintf(s.Out, "Newest copy:     %s\n", humanize.RelTime(st.Newest, now, "ago", "from now"))
				fmt.Fprintf(s.Out, "Oldest copy:     %s\n", humanize.RelTime(st.Oldest, now, "ago", "from now"))
			}
			fmt.Fprintf(s.Out, "Last check:      %s\n", lastCheck(p, now))
			fmt.Fprintf(s.Out, "Auto update:     %s (%s)\n", onOff(p.AutoUpdate), p.UpdateFrequency.Label())
			if prefs.IsUpdateDue(p, now) && p.EnableOfflineStorage {
				fmt.Fprintln(s.Out, "An update is due and will run with the next list.")
			}
			return nil
		},
	}

	return cmd
}

func lastCheck(p prefs.Preferences, now time.Time) string {
	if p.LastUpdateCheck.IsZero() {
		return "never"
	}
	return humanize.RelTime(p.LastUpdateCheck.Time, now, "ago", "from now")
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
