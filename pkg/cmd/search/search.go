package search

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/cheats/internal/catalog"
	"github.com/Paintersrp/cheats/internal/state"
	cmdpkg "github.com/Paintersrp/cheats/pkg/cmd"
	"github.com/Paintersrp/cheats/pkg/shared/arg"
	"github.com/Paintersrp/cheats/pkg/shared/flags"
)

var matchStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#999999"))

func NewCmdSearch(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "search [query]",
		Aliases: []string{"s", "find"},
		Short:   "Search cheatsheets by title, content, tags or description.",
		Long: heredoc.Doc(`
			Searches the unified list. Remote sheets match on their name; custom
			sheets also match on content, tags and description. At most ten
			results are shown, each with the field that matched.
		`),
		Example: heredoc.Doc(`
			cheats search git
			cheats search --type custom "rebase onto"
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

			entries, source, err := s.Catalog.UnifiedList(ctx)
			if err != nil {
				s.Notify.Failure("Search failed", err.Error())
				return nil
			}
			cmdpkg.WarnSampleListing(s, source)

			filtered := catalog.Filter(entries, filter)
			results := catalog.Search(filtered, query)
			if len(results) == 0 {
				fmt.Fprintf(s.Out, "No cheatsheets match %q.\n", query)
				if suggestions := catalog.Suggest(filtered, query, 3); len(suggestions) > 0 {
					fmt.Fprintln(s.Out, "Did you mean:")
					cmdpkg.WriteEntries(s.Out, suggestions)
				}
				return nil
			}

			for _, r := range results {
				fmt.Fprintf(s.Out, "%s %s\n",
					cmdpkg.FormatEntry(r.Entry, 0),
					matchStyle.Render("("+string(r.Match)+")"),
				)
			}
			return nil
		},
	}

	flags.AddType(cmd)

	return cmd
}
