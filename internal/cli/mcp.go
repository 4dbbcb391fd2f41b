package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	dramcp "github.com/agegold/driveralert/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  "Commands for running the dra MCP (Model Context Protocol) server.",
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the dra MCP server on stdio",
	Long: `Start the dra MCP server on stdio transport.

The server exposes the alert catalog and arbitration engine as MCP tools
that AI assistants can call: list_events, get_event, resolve_alerts,
run_scenario.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if Registry == nil || Scenarios == nil || Cfg == nil {
			return fmt.Errorf("services not initialized")
		}

		srv := dramcp.NewServer(Registry, Scenarios, Cfg, appVersion)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		if err := srv.Run(ctx); err != nil {
			return fmt.Errorf("running MCP server: %w", err)
		}

		return nil
	},
}

func init() {
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}
