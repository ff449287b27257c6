package offline

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/cheats/internal/state"
	"github.com/Paintersrp/cheats/pkg/cmd/offline/offlineClear"
	"github.com/Paintersrp/cheats/pkg/cmd/offline/offlineDownload"
	"github.com/Paintersrp/cheats/pkg/cmd/offline/offlineList"
	"github.com/Paintersrp/cheats/pkg/cmd/offline/offlineStatus"
)

func NewCmdOffline(s *state.State) *cobra.Command {
	statusCmd := offlineStatus.NewCmdOfflineStatus(s)

	cmd := &cobra.Command{
		Use:     "offline",
		Aliases: []string{"off"},
		Short:   "Manage cheatsheets stored for offline use.",
		Long: heredoc.Doc(`
			Remote cheatsheets are stored locally when they are opened and offline
			storage is enabled. They can also be downloaded all at once. The stored
			copy is used whenever the network is unavailable.
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			statusCmd.SetContext(cmd.Context())
			return statusCmd.RunE(statusCmd, args)
		},
	}

	cmd.AddCommand(
		statusCmd,
		offlineDownload.NewCmdOfflineDownload(s),
		offlineClear.NewCmdOfflineClear(s),
		offlineList.NewCmdOfflineList(s),
	)

	return cmd
}
