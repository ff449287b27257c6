package copy

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/cheats/internal/clip"
	"github.com/Paintersrp/cheats/internal/sheet"
	"github.com/Paintersrp/cheats/internal/state"
	"github.com/Paintersrp/cheats/pkg/shared/arg"
	"github.com/Paintersrp/cheats/pkg/shared/flags"
)

func NewCmdCopy(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "copy [query]",
		Aliases: []string{"cp", "c"},
		Short:   "Copy the first matching cheatsheet to the clipboard.",
		Long: heredoc.Doc(`
			Copies the content of the first cheatsheet matching the query. Custom
			sheets are checked first, in the order they were created, then remote
			sheets by name.
		`),
		Example: heredoc.Doc(`
			cheats copy "git notes"
			cheats copy --type default docker
		`),
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			query, err := arg.HandleQuery(args)
			if err != nil {
				return err
			}
			filter, err := flags.HandleType(cmd)
			if err != nil {
				return err
			}

			match, ok, err := s.Catalog.QuickMatch(ctx, query, filter)
			if err != nil {
				s.Notify.Failure("Copy failed", err.Error())
				return nil
			}
			if !ok {
				s.Notify.Failure("No match", fmt.Sprintf("No cheatsheet matches %q", query))
				return nil
			}

			ref := match.Entry.Ref
			content, err := s.Catalog.Resolve(ctx, ref)
			if err != nil {
				s.Notify.Failure("Copy failed", err.Error())
				return nil
			}
			if content.Status == sheet.StatusFailed {
				s.Notify.Failure("Copy failed", fmt.Sprintf("%q has no content", ref.Title()))
				return nil
			}
			s.Notify.Fallback(ref.Title(), content.Reason)

			if err := clip.Write(content.Markdown); err != nil {
				s.Notify.Failure("Copy failed", err.Error())
				return nil
			}
			if err := s.Catalog.RecordVisit(ctx, ref); err != nil {
				s.Log.Warn(ctx, "could not record visit", "error", err)
			}

			s.Notify.Success("Copied", fmt.Sprintf("%q copied to the clipboard", ref.Title()))
			return nil
		},
	}

	flags.AddType(cmd)

	return cmd
}
