package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/forkpath-dev/forkpath"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of forkpath",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("forkpath version %s\n", strings.TrimSpace(forkpath.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
