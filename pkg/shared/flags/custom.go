package flags

import (
	"github.com/spf13/cobra"
)

func AddCustom(cmd *cobra.Command) {
	cmd.Flags().BoolP("custom", "c", false, "Treat the argument as a custom cheatsheet id or title")
}

func HandleCustom(cmd *cobra.Command) bool {
	custom, _ := cmd.Flags().GetBool("custom")
	return custom
}

func AddYes(cmd *cobra.Command) {
	cmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
}

func HandleYes(cmd *cobra.Command) bool {
	yes, _ := cmd.Flags().GetBool("yes")
	return yes
}
