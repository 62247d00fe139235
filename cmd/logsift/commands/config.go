package commands

import (
	"os"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configuration management commands",
	Long:  `Configuration management commands for logsift`,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize configuration file",
	Long:  `Write the default configuration template, keeping an existing file untouched`,
	Run: func(cmd *cobra.Command, args []string) {
		if InitConfiguration == nil {
			cmd.PrintErrln("❌ InitConfiguration function not initialized")
			os.Exit(1)
		}
		if err := InitConfiguration(); err != nil {
			cmd.PrintErrln("❌", err)
			os.Exit(1)
		}
	},
}

var configTestCmd = &cobra.Command{
	Use:   "test",
	Short: "Test configuration validity",
	Long:  `Test configuration validity`,
	Run: func(cmd *cobra.Command, args []string) {
		if TestConfiguration == nil {
			cmd.PrintErrln("❌ TestConfiguration function not initialized")
			os.Exit(1)
		}
		if err := TestConfiguration(); err != nil {
			cmd.PrintErrln("❌", err)
			os.Exit(1)
		}
	},
}

func init() {
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configTestCmd)
}
