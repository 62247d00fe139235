package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/livp123/logsift/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long:  `Show the current version of logsift`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("logsift %s\n", version.Version)
	},
}
