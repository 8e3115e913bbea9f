package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	notionify "github.com/riverfjs/notionify-go"
)

var flagCompact bool

var convertCmd = &cobra.Command{
	Use:   "convert [file]",
	Short: "Print the Notion block JSON for a Markdown file",
	Long: `Convert scans the input and prints the Notion "children" array that would be
appended to a page. Reads standard input when no file (or "-") is given.

Examples:
  notionify convert notes.md
  cat notes.md | notionify convert --blank-lines skip
  notionify convert page.html --compact`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)
	convertCmd.Flags().BoolVar(&flagCompact, "compact", false, "Print JSON without indentation")
}

func runConvert(cmd *cobra.Command, args []string) error {
	opts, err := convertOptions()
	if err != nil {
		return err
	}
	doc, err := loadInput(cmd, args)
	if err != nil {
		return err
	}

	children, err := notionify.ToNotion(doc.Markdown, opts...)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	if !flagCompact {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(children)
}
