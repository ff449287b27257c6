package customEdit

import (
	"context"
	"errors"
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/cheats/internal/custom"
	"github.com/Paintersrp/cheats/internal/sheet"
	"github.com/Paintersrp/cheats/internal/state"
	cmdpkg "github.com/Paintersrp/cheats/pkg/cmd"
	"github.com/Paintersrp/cheats/pkg/shared/flags"
)

func NewCmdCustomEdit(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "edit [id|title]",
		Aliases: []string{"update", "e"},
		Short:   "Edit a custom cheatsheet.",
		Long: heredoc.Doc(`
			Updates a custom cheatsheet. Fields not given keep their current
			values. As with create, rejected values are kept as a draft for the
			next edit of the same sheet.
		`),
		Example: heredoc.Doc(`
			cheats custom edit "Git Notes" --tags git,cheats
			cheats custom edit custom-1b9d6bcd --file notes.md
		`),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ref, err := cmdpkg.ResolveRef(ctx, s, args[0], true)
			if err != nil {
				return err
			}
			current := ref.(sheet.CustomRef).Sheet

			in, err := flags.HandleSheet(cmd)
			if err != nil {
				return err
			}

			base := custom.Input{
				Title:       current.Title,
				Content:     current.Content,
				Tags:        current.Tags,
				Description: current.Description,
			}
			update := func(ctx context.Context, in custom.Input) (sheet.CustomCheatsheet, error) {
				return s.Custom.Update(ctx, current.ID, in)
			}

			sh, err := cmdpkg.SubmitSheet(ctx, s, current.ID, base, in, update)
			switch {
			case sheet.IsValidation(err):
				return err
			case errors.Is(err, sheet.ErrNotFound):
				return fmt.Errorf("custom cheatsheet %q no longer exists", current.ID)
			case err != nil:
				s.Notify.Failure("Failed to update cheatsheet", err.Error())
				return nil
			}

			s.Notify.Success("Cheatsheet updated", sh.Title)
			return nil
		},
	}

	flags.AddSheet(cmd)

	return cmd
}
