package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/notatehq/notate/internal/cli"
	"github.com/notatehq/notate/internal/presentation/tui"
)

var tablesCmd = &cobra.Command{
	Use:   "tables [table-id]",
	Short: "List or print symbol lookup tables",
	Long: `Without arguments, lists the lookup tables installed for the chosen
format. With a table id, prints that table's key/code mapping.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		format, _ := cmd.Flags().GetString("format")
		ascii, _ := cmd.Flags().GetBool("ascii")
		markdown, _ := cmd.Flags().GetBool("markdown")
		packs, _ := cmd.Flags().GetStringSlice("pack")

		opts := cli.TablesOptions{
			Format:   format,
			ASCII:    ascii,
			Markdown: markdown,
			Packs:    packs,
			Out:      os.Stdout,
		}
		if len(args) > 0 {
			opts.Table = args[0]
		}
		if markdown {
			opts.RenderMarkdown = tui.NewRenderer()
		}

		if err := cli.Tables(opts); err != nil {
			tui.NewColorWriter(os.Stderr).Error("%v", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(tablesCmd)
	tablesCmd.Flags().StringP("format", "f", "unicode", "Format namespace to inspect")
	tablesCmd.Flags().Bool("ascii", false, "Show codes as ASCII escape sequences")
	tablesCmd.Flags().Bool("markdown", false, "Render the table as styled markdown")
}
