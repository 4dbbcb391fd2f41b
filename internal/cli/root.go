package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	appVersion = "dev"
	appCommit  = "none"
	appDate    = "unknown"
)

// SetVersionInfo sets the version information injected via ldflags.
func SetVersionInfo(version, commit, date string) {
	appVersion = version
	appCommit = commit
	appDate = date
}

var rootCmd = &cobra.Command{
	Use:   "dra",
	Short: "driveralert - alert arbitration for driver-assistance control loops",
	Long: `driveralert (dra) replays the alert arbitration of an openpilot-style
driver-assistance stack: events raised by the car platform on every control
cycle are resolved into the prioritized alerts a driver would see and hear.

It provides CLI commands for browsing the alert catalog, simulating drive
scenarios, watching a live alert HUD, and publishing frames over WebSocket.`,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("dra %s\ncommit: %s\nbuilt:  %s\n", appVersion, appCommit, appDate)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
