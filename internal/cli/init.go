package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/agegold/driveralert/internal/core"
)

// WorkspaceInit is the WorkspaceInitializer used by the init command.
// Set during application wiring.
var WorkspaceInit core.WorkspaceInitializer

var initCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Initialize a driveralert workspace",
	Long: `Initialize a new or existing directory as a driveralert workspace:
the driveralert.yaml configuration, a scenarios directory with a starter
drive, and a runs directory for cycle logs.

Safe to run on existing workspaces -- files and directories that already
exist are skipped and not overwritten.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if WorkspaceInit == nil {
			return fmt.Errorf("workspace initializer not initialized")
		}

		basePath := "."
		if len(args) > 0 {
			basePath = args[0]
		}
		absPath, err := filepath.Abs(basePath)
		if err != nil {
			return fmt.Errorf("resolving path: %w", err)
		}

		car, _ := cmd.Flags().GetString("car")
		period, _ := cmd.Flags().GetString("period")

		result, err := WorkspaceInit.Init(core.InitConfig{
			BasePath: absPath,
			Car:      car,
			Period:   period,
		})
		if err != nil {
			return fmt.Errorf("initializing workspace: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(result.Created) > 0 {
			fmt.Fprintln(out, "Created:")
			for _, p := range result.Created {
				rel, _ := filepath.Rel(absPath, p)
				fmt.Fprintf(out, "  %s\n", rel)
			}
		}
		if len(result.Skipped) > 0 {
			fmt.Fprintln(out, "Skipped (already exist):")
			for _, p := range result.Skipped {
				rel, _ := filepath.Rel(absPath, p)
				fmt.Fprintf(out, "  %s\n", rel)
			}
		}

		fmt.Fprintf(out, "\nWorkspace initialized at %s\n", absPath)
		return nil
	},
}

func init() {
	initCmd.Flags().String("car", "hyundai", "Car name written into the starter config")
	initCmd.Flags().String("period", "10ms", "Cycle period written into the starter config")
	rootCmd.AddCommand(initCmd)
}
