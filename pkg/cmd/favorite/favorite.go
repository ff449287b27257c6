package favorite

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/cheats/internal/state"
	cmdpkg "github.com/Paintersrp/cheats/pkg/cmd"
	"github.com/Paintersrp/cheats/pkg/shared/flags"
)

func NewCmdFavorite(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "favorite [name]",
		Aliases: []string{"fav", "star"},
		Short:   "Toggle a cheatsheet as a favorite.",
		Long: heredoc.Doc(`
			Marks a cheatsheet as a favorite, or unmarks it when it already is one.
			Favorites are listed before other sheets with the same usage score.
		`),
		Example: heredoc.Doc(`
			cheats favorite docker
			cheats favorite --custom "Git Notes"
		`),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ref, err := cmdpkg.ResolveRef(ctx, s, args[0], flags.HandleCustom(cmd))
			if err != nil {
				return err
			}

			on, err := s.Catalog.ToggleFavorite(ctx, ref)
			if err != nil {
				s.Notify.Failure("Favorite failed", err.Error())
				return nil
			}
			if on {
				s.Notify.Success("Added to favorites", ref.Title())
			} else {
				s.Notify.Success("Removed from favorites", ref.Title())
			}
			return nil
		},
	}

	flags.AddCustom(cmd)

	return cmd
}
