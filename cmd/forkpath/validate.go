package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate [graph.yaml]",
	Short: "Check a question graph for consistency",
	Long:  `Loads a graph document and runs construction-time validation: the root and every branch target must resolve to a known question or the terminal marker.`,
	Run: func(cmd *cobra.Command, args []string) {
		graphPath, _ := cmd.Flags().GetString("graph")
		if len(args) > 0 {
			graphPath = args[0]
		}

		engine, err := buildEngine(graphPath, nil)
		if err != nil {
			fmt.Printf("Validation failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Graph is valid (%d questions)\n", engine.Graph().Len())
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
