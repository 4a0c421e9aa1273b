package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/notatehq/notate/internal/cli"
	"github.com/notatehq/notate/internal/presentation/tui"
	"github.com/notatehq/notate/pkg/symbol"
)

var renderCmd = &cobra.Command{
	Use:   "render [expression...]",
	Short: "Render notation expressions",
	Long: `Renders each expression in the requested output formats.
With no --format flag every format is shown, labeled.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		formats, _ := cmd.Flags().GetStringSlice("format")
		strict, _ := cmd.Flags().GetBool("strict")
		packs, _ := cmd.Flags().GetStringSlice("pack")

		err := cli.Render(cli.RenderOptions{
			Formats: formats,
			Strict:  strict,
			Packs:   packs,
			Out:     os.Stdout,
		}, args)
		if err != nil {
			reportRenderError(err)
			os.Exit(1)
		}
	},
}

// reportRenderError shows parse failures with the caret diagram instead
// of a bare message.
func reportRenderError(err error) {
	w := tui.NewColorWriter(os.Stderr)
	var perr *symbol.ParseError
	if errors.As(err, &perr) {
		w.Error("%s", perr.Msg)
		fmt.Fprintln(os.Stderr, perr.Caret())
		return
	}
	w.Error("%v", err)
}

func init() {
	rootCmd.AddCommand(renderCmd)
	renderCmd.Flags().StringSliceP("format", "f", nil, "Output formats (plain, unicode, html, latex)")
	renderCmd.Flags().Bool("strict", false, "Fail on unknown calls instead of degrading")
}
