package flags

import (
	"github.com/spf13/cobra"

	"github.com/Paintersrp/cheats/internal/sheet"
)

func AddType(cmd *cobra.Command) {
	cmd.Flags().
		StringP("type", "t", string(sheet.FilterAll), "Limit results to all, custom or default cheatsheets.")
}

func HandleType(cmd *cobra.Command) (sheet.FilterType, error) {
	raw, err := cmd.Flags().GetString("type")
	if err != nil {
		return "", err
	}
	return sheet.ParseFilterType(raw)
}
