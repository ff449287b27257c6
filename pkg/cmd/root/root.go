package root

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Paintersrp/cheats/internal/constants"
	"github.com/Paintersrp/cheats/internal/state"
	"github.com/Paintersrp/cheats/pkg/cmd/browse"
	"github.com/Paintersrp/cheats/pkg/cmd/copy"
	"github.com/Paintersrp/cheats/pkg/cmd/custom"
	"github.com/Paintersrp/cheats/pkg/cmd/favorite"
	"github.com/Paintersrp/cheats/pkg/cmd/list"
	"github.com/Paintersrp/cheats/pkg/cmd/offline"
	"github.com/Paintersrp/cheats/pkg/cmd/prefs"
	"github.com/Paintersrp/cheats/pkg/cmd/search"
	"github.com/Paintersrp/cheats/pkg/cmd/show"
	"github.com/Paintersrp/cheats/pkg/cmd/token"
)

func NewCmdRoot(s *state.State) *cobra.Command {
	var opts state.Options
	listCmd := list.NewCmdList(s)

	cmd := &cobra.Command{
		Use:     "cheats",
		Aliases: []string{"cs"},
		Short:   "Browse, search and copy developer cheatsheets from the terminal.",
		Long: heredoc.Doc(`
			Browse the devhints.io cheatsheet collection alongside your own custom
			cheatsheets. Remote sheets can be stored for offline use, favorites are
			pinned to the top and recently used sheets rank higher.

			  cheats list
			  cheats show git
			  cheats copy "git notes"
		`),
		Version:      constants.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if s.Out == nil {
				s.Out = cmd.OutOrStdout()
			}
			if s.Err == nil {
				s.Err = cmd.ErrOrStderr()
			}
			return s.Load(opts)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return s.Close()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			listCmd.SetContext(cmd.Context())
			return listCmd.RunE(listCmd, args)
		},
	}

	cmd.PersistentFlags().
		StringVar(&opts.ConfigPath, "config", "", "Config file (default is ~/.cheats/cfg.yaml)")
	cmd.PersistentFlags().
		String("log-level", "", "Log level: debug, info, warn or error")
	cmd.PersistentFlags().
		BoolVar(&opts.Ephemeral, "ephemeral", false, "Keep all data in memory for this run only")
	viper.BindPFlag("log_level", cmd.PersistentFlags().Lookup("log-level"))

	cmd.AddCommand(
		listCmd,
		search.NewCmdSearch(s),
		copy.NewCmdCopy(s),
		show.NewCmdShow(s),
		browse.NewCmdBrowse(s),
		custom.NewCmdCustom(s),
		favorite.NewCmdFavorite(s),
		offline.NewCmdOffline(s),
		prefs.NewCmdPrefs(s),
		token.NewCmdToken(s),
	)

	return cmd
}
