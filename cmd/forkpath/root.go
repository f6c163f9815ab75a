package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "forkpath",
	Short: "Forkpath is a branching conversational-form engine",
	Long: `Forkpath walks a user through a decision tree of questions and
produces a summary of the answers. It serves the tree over HTTP, MCP, or an
interactive terminal session.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("graph", "", "Path to a YAML question graph (empty = built-in menu)")
}
