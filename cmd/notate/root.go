package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "notate",
	Short: "Notate renders symbolic notation to plain text, Unicode, HTML and LaTeX",
	Long: `Notate parses expressions like "$greek(alpha) decay emits He$sup(2+)"
and renders them simultaneously to plain ASCII, Unicode, HTML and LaTeX.`,
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
	rootCmd.PersistentFlags().StringSlice("pack", nil, "Extra symbol pack files (YAML)")
}
