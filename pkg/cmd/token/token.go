package token

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/cheats/internal/state"
	"github.com/Paintersrp/cheats/pkg/cmd/token/tokenClear"
	"github.com/Paintersrp/cheats/pkg/cmd/token/tokenSet"
)

func NewCmdToken(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Manage the GitHub token used to list cheatsheets.",
		Long: heredoc.Doc(`
			Listing the cheatsheet repository goes through the GitHub API, which
			limits anonymous clients. A personal access token raises the limit. It
			is kept in the system keyring; GITHUB_TOKEN or remote.token in the
			config take precedence.
		`),
	}

	cmd.AddCommand(
		tokenSet.NewCmdTokenSet(s),
		tokenClear.NewCmdTokenClear(s),
	)

	return cmd
}
