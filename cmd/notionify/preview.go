package main

import (
	"fmt"

	"github.com/spf13/cobra"

	notionify "github.com/riverfjs/notionify-go"
	"github.com/riverfjs/notionify-go/internal/render"
)

var flagFormat string

var previewCmd = &cobra.Command{
	Use:   "preview [file]",
	Short: "Render the scanned blocks as Markdown, HTML or plain text",
	Long: `Preview shows how the input is understood by the scanner. The markdown format
writes the blocks back as normalized Markdown, html renders that through
goldmark, and text prints a plain-text view with Unicode math.

Examples:
  notionify preview notes.md --format text
  notionify preview notes.md --format html > notes.html`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPreview,
}

func init() {
	rootCmd.AddCommand(previewCmd)
	previewCmd.Flags().StringVar(&flagFormat, "format", "text", "Output format: markdown, html, text")
}

func runPreview(cmd *cobra.Command, args []string) error {
	opts, err := convertOptions()
	if err != nil {
		return err
	}
	doc, err := loadInput(cmd, args)
	if err != nil {
		return err
	}
	blocks := notionify.Convert(doc.Markdown, opts...)

	var out string
	switch flagFormat {
	case "markdown", "md":
		out = render.Markdown(blocks)
	case "html":
		if out, err = render.HTML(blocks); err != nil {
			return fmt.Errorf("rendering html: %w", err)
		}
	case "text", "txt":
		out = render.Text(blocks)
	default:
		return fmt.Errorf("invalid --format %q (want markdown, html or text)", flagFormat)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
	return err
}
