package offlineDownload

import (
	"errors"
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/cheats/internal/sheet"
	"github.com/Paintersrp/cheats/internal/state"
	cmdpkg "github.com/Paintersrp/cheats/pkg/cmd"
)

func NewCmdOfflineDownload(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "download",
		Aliases: []string{"dl", "sync"},
		Short:   "Download every remote cheatsheet for offline use.",
		Long: heredoc.Doc(`
			Fetches every listed remote cheatsheet and stores the ones that
			downloaded. Sheets that fail are skipped and counted. Requires offline
			storage to be enabled (see: cheats prefs set --offline).
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			summary, err := s.Offline.DownloadAll(ctx, s.Remote)
			if errors.Is(err, sheet.ErrOfflineDisabled) {
				return fmt.Errorf("%w. Enable it with: cheats prefs set --offline", err)
			}
			if err != nil {
				s.Notify.Failure("Download failed", err.Error())
				return nil
			}
			cmdpkg.WarnSampleListing(s, summary.Listing)

			msg := fmt.Sprintf("%d cheatsheets stored", summary.Succeeded)
			if summary.Failed > 0 {
				s.Notify.Warning("Download incomplete", fmt.Sprintf("%s, %d failed", msg, summary.Failed))
				return nil
			}
			s.Notify.Success("Download complete", msg)
			return nil
		},
	}

	return cmd
}
