package customCreate

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/cheats/internal/custom"
	"github.com/Paintersrp/cheats/internal/scratch"
	"github.com/Paintersrp/cheats/internal/sheet"
	"github.com/Paintersrp/cheats/internal/state"
	cmdpkg "github.com/Paintersrp/cheats/pkg/cmd"
	"github.com/Paintersrp/cheats/pkg/shared/flags"
)

func NewCmdCustomCreate(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "create",
		Aliases: []string{"new", "add"},
		Short:   "Create a custom cheatsheet.",
		Long: heredoc.Doc(`
			Creates a custom cheatsheet. Title and content are required. Content
			can come from --content, a file (--file, - for stdin) or the clipboard
			(--paste).

			When the sheet is rejected the values given are kept as a draft and
			reused by the next create.
		`),
		Example: heredoc.Doc(`
			cheats custom create --title "Git Notes" --file notes.md --tags git,vcs
			pbpaste | cheats custom create --title "Snippets" --file -
			cheats custom create --title "Copied" --paste
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			in, err := flags.HandleSheet(cmd)
			if err != nil {
				return err
			}

			sh, err := cmdpkg.SubmitSheet(ctx, s, scratch.NewSheet, custom.Input{}, in, s.Custom.Create)
			if sheet.IsValidation(err) {
				return err
			}
			if err != nil {
				s.Notify.Failure("Failed to create cheatsheet", err.Error())
				return nil
			}

			s.Notify.Success("Cheatsheet created", fmt.Sprintf("%s (%s)", sh.Title, sh.ID))
			return nil
		},
	}

	flags.AddSheet(cmd)

	return cmd
}
