package customList

import (
	"fmt"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/cheats/internal/state"
)

func NewCmdCustomList(s *state.State) *cobra.Command {
	var query string

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List custom cheatsheets with their ids.",
		Long: heredoc.Doc(`
			Lists custom cheatsheets in the order they were created. With --query,
			only sheets whose title, content, tags or description match are shown,
			along with the field that matched.
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if query != "" {
				matches, err := s.Custom.Search(ctx, query)
				if err != nil {
					s.Notify.Failure("Search failed", err.Error())
					return nil
				}
				if len(matches) == 0 {
					fmt.Fprintf(s.Out, "No custom cheatsheets match %q.\n", query)
					return nil
				}
				for _, m := range matches {
					fmt.Fprintf(s.Out, "%s\t%s\t(%s)\n", m.Sheet.ID, m.Sheet.Title, m.Type)
				}
				return nil
			}

			sheets, err := s.Custom.List(ctx)
			if err != nil {
				s.Notify.Failure("Failed to load custom cheatsheets", err.Error())
				return nil
			}
			if len(sheets) == 0 {
				fmt.Fprintln(s.Out, "No custom cheatsheets yet. Create one with: cheats custom create")
				return nil
			}
			for _, sh := range sheets {
				line := sh.ID + "\t" + sh.Title
				if len(sh.Tags) > 0 {
					line += "\t[" + strings.Join(sh.Tags, ", ") + "]"
				}
				fmt.Fprintln(s.Out, line)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&query, "query", "q", "", "Only show sheets matching the query")

	return cmd
}
