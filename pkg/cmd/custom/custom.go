package custom

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/cheats/internal/state"
	"github.com/Paintersrp/cheats/pkg/cmd/custom/customCreate"
	"github.com/Paintersrp/cheats/pkg/cmd/custom/customDelete"
	"github.com/Paintersrp/cheats/pkg/cmd/custom/customEdit"
	"github.com/Paintersrp/cheats/pkg/cmd/custom/customList"
)

func NewCmdCustom(s *state.State) *cobra.Command {
	listCmd := customList.NewCmdCustomList(s)

	cmd := &cobra.Command{
		Use:     "custom",
		Aliases: []string{"cu", "mine"},
		Short:   "Manage your own cheatsheets.",
		Long: heredoc.Doc(`
			Create, edit, list and delete custom cheatsheets. Custom sheets live in
			the local data directory and are searched by title, content, tags and
			description.
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			listCmd.SetContext(cmd.Context())
			return listCmd.RunE(listCmd, args)
		},
	}

	cmd.AddCommand(
		listCmd,
		customCreate.NewCmdCustomCreate(s),
		customEdit.NewCmdCustomEdit(s),
		customDelete.NewCmdCustomDelete(s),
	)

	return cmd
}
