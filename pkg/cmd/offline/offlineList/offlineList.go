package offlineList

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/cheats/internal/state"
)

func NewCmdOfflineList(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List cheatsheets stored for offline use.",
		Long: heredoc.Doc(`
			Lists every stored cheatsheet with its size and the time it was last
			downloaded.
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			entries, err := s.Offline.List(ctx)
			if err != nil {
				s.Notify.Failure("Failed to read offline cheatsheets", err.Error())
				return nil
			}
			if len(entries) == 0 {
				fmt.Fprintln(s.Out, "No cheatsheets stored offline.")
				return nil
			}

			now := s.Prefs.Now()
			for _, e := range entries {
				fmt.Fprintf(s.Out, "%s\t%s\t%s\n",
					e.Slug,
					humanize.Bytes(uint64(e.Size)),
					humanize.RelTime(e.LastUpdated.Time, now, "ago", "from now"),
				)
			}
			return nil
		},
	}

	return cmd
}
