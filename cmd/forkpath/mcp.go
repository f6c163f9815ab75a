package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	mcpAdapter "github.com/forkpath-dev/forkpath/pkg/adapters/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Expose the engine as an MCP server",
	Long:  `Serves the conversation engine over the Model Context Protocol, on stdio by default or SSE with --sse.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		graphPath, _ := cmd.Flags().GetString("graph")
		useSSE, _ := cmd.Flags().GetBool("sse")
		port, _ := cmd.Flags().GetInt("port")

		engine, err := buildEngine(graphPath, nil)
		if err != nil {
			return fmt.Errorf("initializing forkpath: %w", err)
		}

		srv := mcpAdapter.NewServer(engine)

		if !useSSE {
			return srv.ServeStdio()
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return srv.ServeSSE(ctx, port)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
	mcpCmd.Flags().Bool("sse", false, "Serve over SSE instead of stdio")
	mcpCmd.Flags().Int("port", 8090, "Port for SSE mode")
}
