package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/notatehq/notate"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of notate",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("notate version %s\n", notate.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
