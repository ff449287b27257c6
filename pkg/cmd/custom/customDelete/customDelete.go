package customDelete

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/cheats/internal/sheet"
	"github.com/Paintersrp/cheats/internal/state"
	cmdpkg "github.com/Paintersrp/cheats/pkg/cmd"
	"github.com/Paintersrp/cheats/pkg/shared/flags"
)

func NewCmdCustomDelete(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "delete [id|title]",
		Aliases: []string{"rm", "remove"},
		Short:   "Delete a custom cheatsheet.",
		Long: heredoc.Doc(`
			Deletes a custom cheatsheet and its usage history after confirmation.
			Pass --yes to skip the prompt.
		`),
		Example: heredoc.Doc(`
			cheats custom delete "Git Notes"
			cheats custom delete --yes custom-1b9d6bcd
		`),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ref, err := cmdpkg.ResolveRef(ctx, s, args[0], true)
			if err != nil {
				return err
			}
			sh := ref.(sheet.CustomRef).Sheet

			if !flags.HandleYes(cmd) {
				ok, err := cmdpkg.Confirm(fmt.Sprintf("Delete %q?", sh.Title))
				if err != nil {
					return fmt.Errorf("error reading confirmation: %w", err)
				}
				if !ok {
					fmt.Fprintln(s.Out, "Nothing deleted.")
					return nil
				}
			}

			removed, err := s.Catalog.DeleteCustom(ctx, sh.ID)
			if err != nil {
				s.Notify.Failure("Failed to delete cheatsheet", err.Error())
				return nil
			}
			if !removed {
				return fmt.Errorf("custom cheatsheet %q no longer exists", sh.ID)
			}

			s.Notify.Success("Cheatsheet deleted", sh.Title)
			return nil
		},
	}

	flags.AddYes(cmd)

	return cmd
}
