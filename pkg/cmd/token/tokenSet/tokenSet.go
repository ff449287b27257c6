package tokenSet

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/cheats/internal/state"
)

func NewCmdTokenSet(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set [token]",
		Short: "Store a GitHub token in the system keyring.",
		Long: heredoc.Doc(`
			Stores the token given as an argument, or the first line of stdin
			when none is given.
		`),
		Example: heredoc.Doc(`
			cheats token set ghp_xxx
			gh auth token | cheats token set
		`),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var token string
			if len(args) == 1 {
				token = args[0]
			} else {
				line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				if err != nil && line == "" {
					return fmt.Errorf("no token given")
				}
				token = line
			}

			if err := s.Tokens.Set(strings.TrimSpace(token)); err != nil {
				return err
			}
			s.Notify.Success("Token saved", "Stored in the system keyring")
			return nil
		},
	}

	return cmd
}
