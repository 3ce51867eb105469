package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/steer"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of steer",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "steer version %s\n", strings.TrimSpace(steer.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
