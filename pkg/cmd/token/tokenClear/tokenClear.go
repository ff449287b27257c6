package tokenClear

import (
	"github.com/spf13/cobra"

	"github.com/Paintersrp/cheats/internal/state"
)

func NewCmdTokenClear(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "clear",
		Aliases: []string{"rm"},
		Short:   "Remove the GitHub token from the system keyring.",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := s.Tokens.Clear(); err != nil {
				s.Notify.Failure("Failed to remove token", err.Error())
				return nil
			}
			s.Notify.Success("Token removed", "")
			return nil
		},
	}

	return cmd
}
