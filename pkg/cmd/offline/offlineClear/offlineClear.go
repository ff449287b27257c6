package offlineClear

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/cheats/internal/state"
	cmdpkg "github.com/Paintersrp/cheats/pkg/cmd"
	"github.com/Paintersrp/cheats/pkg/shared/flags"
)

func NewCmdOfflineClear(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove every cheatsheet stored for offline use.",
		Long: heredoc.Doc(`
			Deletes all offline copies. Custom cheatsheets and favorites are not
			affected.
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if !flags.HandleYes(cmd) {
				ok, err := cmdpkg.Confirm("Remove all offline cheatsheets?")
				if err != nil {
					return fmt.Errorf("error reading confirmation: %w", err)
				}
				if !ok {
					fmt.Fprintln(s.Out, "Nothing removed.")
					return nil
				}
			}

			if err := s.Offline.Clear(ctx); err != nil {
				s.Notify.Failure("Failed to clear offline cheatsheets", err.Error())
				return nil
			}
			s.Notify.Success("Offline cheatsheets removed", "")
			return nil
		},
	}

	flags.AddYes(cmd)

	return cmd
}
