package prefs

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/cheats/internal/state"
	"github.com/Paintersrp/cheats/pkg/cmd/prefs/prefsSet"
	"github.com/Paintersrp/cheats/pkg/cmd/prefs/prefsShow"
)

func NewCmdPrefs(s *state.State) *cobra.Command {
	showCmd := prefsShow.NewCmdPrefsShow(s)

	cmd := &cobra.Command{
		Use:     "prefs",
		Aliases: []string{"preferences", "settings"},
		Short:   "Show or change offline and update preferences.",
		Long: heredoc.Doc(`
			Preferences control whether remote cheatsheets are stored for offline
			use and how often the stored copies are refreshed.
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			showCmd.SetContext(cmd.Context())
			return showCmd.RunE(showCmd, args)
		},
	}

	cmd.AddCommand(showCmd, prefsSet.NewCmdPrefsSet(s))

	return cmd
}
