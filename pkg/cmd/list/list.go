package list

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/cheats/internal/catalog"
	"github.com/Paintersrp/cheats/internal/state"
	cmdpkg "github.com/Paintersrp/cheats/pkg/cmd"
	"github.com/Paintersrp/cheats/pkg/shared/flags"
)

func NewCmdList(s *state.State) *cobra.Command {
	var (
		query    string
		noUpdate bool
	)

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls", "l"},
		Short:   "List every cheatsheet, custom and remote.",
		Long: heredoc.Doc(`
			Lists custom and remote cheatsheets as one list. Recently used sheets
			come first, then favorites (★), then custom sheets, then the rest by
			title. Sheets stored for offline use carry an [offline] badge.

			The offline cache is refreshed first when an update is due, unless
			--no-update is given.
		`),
		Example: heredoc.Doc(`
			cheats list
			cheats list --type custom
			cheats list --query docker
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			filter, err := flags.HandleType(cmd)
			if err != nil {
				return err
			}

			if !noUpdate {
				cmdpkg.AutoUpdate(ctx, s)
			}

			entries, source, err := s.Catalog.UnifiedList(ctx)
			if err != nil {
				s.Notify.Failure("Failed to load cheatsheets", err.Error())
				return nil
			}
			cmdpkg.WarnSampleListing(s, source)

			entries = catalog.Filter(entries, filter)
			if query != "" {
				results := catalog.Search(entries, query)
				entries = entries[:0]
				for _, r := range results {
					entries = append(entries, r.Entry)
				}
			}

			if len(entries) == 0 {
				fmt.Fprintln(s.Out, "No cheatsheets found.")
				return nil
			}
			cmdpkg.WriteEntries(s.Out, entries)
			return nil
		},
	}

	flags.AddType(cmd)
	cmd.Flags().StringVarP(&query, "query", "q", "", "Only show sheets matching the query")
	cmd.Flags().BoolVar(&noUpdate, "no-update", false, "Skip the offline auto-update check")

	return cmd
}
