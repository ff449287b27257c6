package prefsShow

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Paintersrp/cheats/internal/state"
)

func NewCmdPrefsShow(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the current preferences.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := s.Prefs.Get(cmd.Context())
			if err != nil {
				s.Notify.Failure("Failed to read preferences", err.Error())
				return nil
			}

			last := "never"
			if !p.LastUpdateCheck.IsZero() {
				last = p.LastUpdateCheck.Local().Format("2006-01-02 15:04")
			}

			fmt.Fprintf(s.Out, "offline:     %t\n", p.EnableOfflineStorage)
			fmt.Fprintf(s.Out, "auto-update: %t\n", p.AutoUpdate)
			fmt.Fprintf(s.Out, "frequency:   %s\n", p.UpdateFrequency)
			fmt.Fprintf(s.Out, "last-check:  %s\n", last)
			return nil
		},
	}

	return cmd
}
