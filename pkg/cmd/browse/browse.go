package browse

import (
	"context"
	"errors"
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/cheats/internal/catalog"
	"github.com/Paintersrp/cheats/internal/clip"
	"github.com/Paintersrp/cheats/internal/content"
	"github.com/Paintersrp/cheats/internal/fzf"
	"github.com/Paintersrp/cheats/internal/sheet"
	"github.com/Paintersrp/cheats/internal/state"
	cmdpkg "github.com/Paintersrp/cheats/pkg/cmd"
	"github.com/Paintersrp/cheats/pkg/shared/flags"
)

func NewCmdBrowse(s *state.State) *cobra.Command {
	var (
		copyOut  bool
		favorite bool
	)

	cmd := &cobra.Command{
		Use:     "browse [query]",
		Aliases: []string{"b", "pick"},
		Short:   "Pick a cheatsheet with a fuzzy finder.",
		Long: heredoc.Doc(`
			Opens a fuzzy finder over the unified list with a rendered preview of
			custom and offline sheets. The chosen sheet is shown, copied with
			--copy, or toggled as a favorite with --favorite.
		`),
		Example: heredoc.Doc(`
			cheats browse
			cheats browse --type custom
			cheats browse --copy react
		`),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			filter, err := flags.HandleType(cmd)
			if err != nil {
				return err
			}

			entries, source, err := s.Catalog.UnifiedList(ctx)
			if err != nil {
				s.Notify.Failure("Failed to load cheatsheets", err.Error())
				return nil
			}
			cmdpkg.WarnSampleListing(s, source)

			query := ""
			if len(args) == 1 {
				query = args[0]
			}

			finder := fzf.NewFuzzyFinder(
				catalog.Filter(entries, filter),
				"Select a cheatsheet",
				s.Renderer,
				previewer(ctx, s),
			)
			picked, err := finder.Run(query)
			if errors.Is(err, fzf.ErrNoSelection) {
				return nil
			}
			if err != nil {
				return fmt.Errorf("error selecting cheatsheet: %w", err)
			}

			ref := picked.Ref
			if favorite {
				on, err := s.Catalog.ToggleFavorite(ctx, ref)
				if err != nil {
					s.Notify.Failure("Favorite failed", err.Error())
					return nil
				}
				s.Notify.Success(favoriteTitle(on), ref.Title())
				return nil
			}

			c, err := s.Catalog.Resolve(ctx, ref)
			if err != nil {
				s.Notify.Failure("Failed to load cheatsheet", err.Error())
				return nil
			}
			s.Notify.Fallback(ref.Title(), c.Reason)
			if err := s.Catalog.RecordVisit(ctx, ref); err != nil {
				s.Log.Warn(ctx, "could not record visit", "error", err)
			}

			if copyOut {
				if err := clip.Write(c.Markdown); err != nil {
					s.Notify.Failure("Copy failed", err.Error())
					return nil
				}
				s.Notify.Success("Copied", fmt.Sprintf("%q copied to the clipboard", ref.Title()))
				return nil
			}
			return s.Renderer.Write(s.Out, c.Markdown)
		},
	}

	flags.AddType(cmd)
	cmd.Flags().BoolVar(&copyOut, "copy", false, "Copy the chosen sheet instead of showing it")
	cmd.Flags().BoolVar(&favorite, "favorite", false, "Toggle the chosen sheet as a favorite")
	cmd.MarkFlagsMutuallyExclusive("copy", "favorite")

	return cmd
}

// previewer shows content that is available without a network round trip.
func previewer(ctx context.Context, s *state.State) fzf.PreviewFunc {
	return func(e catalog.Entry) string {
		switch ref := e.Ref.(type) {
		case sheet.CustomRef:
			return ref.Sheet.Content
		case sheet.DefaultRef:
			if e.IsOffline {
				if entry, ok, err := s.Offline.Get(ctx, ref.Name); err == nil && ok {
					return content.Process(entry.Content)
				}
			}
			return "# " + ref.Name + "\n\n" + s.Catalog.URLFor(ref.Name)
		default:
			return ""
		}
	}
}

func favoriteTitle(on bool) string {
	if on {
		return "Added to favorites"
	}
	return "Removed from favorites"
}
