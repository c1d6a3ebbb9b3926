// internal/cli/browse.go
package cli

import (
	"github.com/spf13/cobra"

	"github.com/mwiater/mealdb/internal/tui"
)

// browseCmd opens the interactive tool browser.
var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Interactively run MealDB tools in the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		return tui.RunBrowser(cmd.Context(), newDispatcher())
	},
}

func init() {
	rootCmd.AddCommand(browseCmd)
}
