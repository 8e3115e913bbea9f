package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	notionify "github.com/riverfjs/notionify-go"
	"github.com/riverfjs/notionify-go/internal/notion"
)

var (
	flagToken   string
	flagParent  string
	flagBaseURL string
	flagTimeout time.Duration
)

var publishCmd = &cobra.Command{
	Use:   "publish [file]",
	Short: "Create a Notion page from a Markdown file",
	Long: `Publish converts the input and creates a new page under the given parent page,
appending the content in batches of at most 100 blocks.

The token defaults to $NOTION_TOKEN and the parent to $NOTION_PARENT_PAGE_ID.

Examples:
  notionify publish notes.md --parent https://www.notion.so/Inbox-1f2e3d4c5b6a49788a9b0c1d2e3f4a5b
  notionify publish notes.md --title "Weekly notes" --token secret_...`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPublish,
}

func init() {
	rootCmd.AddCommand(publishCmd)
	publishCmd.Flags().StringVar(&flagToken, "token", os.Getenv("NOTION_TOKEN"), "Notion integration token")
	publishCmd.Flags().StringVar(&flagParent, "parent", os.Getenv("NOTION_PARENT_PAGE_ID"), "Parent page id or url")
	publishCmd.Flags().StringVar(&flagBaseURL, "api-url", notion.DefaultBaseURL, "Notion API base url")
	publishCmd.Flags().DurationVar(&flagTimeout, "timeout", 2*time.Minute, "Overall publish timeout")
}

func runPublish(cmd *cobra.Command, args []string) error {
	if flagToken == "" {
		return errors.New("missing Notion token (--token or NOTION_TOKEN)")
	}
	opts, err := convertOptions()
	if err != nil {
		return err
	}
	doc, err := loadInput(cmd, args)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), flagTimeout)
	defer cancel()

	client := notion.NewClient(flagToken,
		notion.WithBaseURL(flagBaseURL),
		notion.WithLogger(logProvider.GetLogger("notion")),
	)
	result, err := notionify.Publish(ctx, client, notionify.PublishRequest{
		Title:    doc.Title,
		Markdown: doc.Markdown,
		ParentID: flagParent,
	}, opts...)
	if err != nil {
		if result != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "page %s created, %d blocks appended before failure\n", result.PageID, result.Blocks)
		}
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✓ Published %q: %s (%d blocks)\n", doc.Title, result.URL, result.Blocks)
	return nil
}
