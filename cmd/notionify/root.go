package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	notionify "github.com/riverfjs/notionify-go"
	"github.com/riverfjs/notionify-go/internal/document"
	"github.com/riverfjs/notionify-go/internal/logging"
)

// Global flag variables.
var (
	flagLogLevel        string
	flagLogFormat       string
	flagBlankLines      string
	flagNoLatex         bool
	flagDefaultLanguage string
	flagTitle           string
	flagHTML            bool
)

var logProvider *logging.Provider

var rootCmd = &cobra.Command{
	Use:   "notionify",
	Short: "Convert Markdown into Notion blocks",
	Long: `notionify scans Markdown line by line into Notion blocks (headings, lists,
quotes, code, equations, dividers, paragraphs) with inline bold, italic,
code, links and math, and can publish the result as a new Notion page.

Usage:
  notionify convert <file> [flags]
  notionify preview <file> --format text
  notionify publish <file> --parent <page id or url>
  notionify serve --addr :8080`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		provider, err := logging.NewProvider(logging.Config{Level: flagLogLevel, Format: flagLogFormat})
		if err != nil {
			return err
		}
		logProvider = provider
		notionify.SetLogger(provider.GetLogger("notionify"))
		return nil
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	pf.StringVar(&flagLogFormat, "log-format", "console", "Log format: console, json, pretty")
	pf.StringVar(&flagBlankLines, "blank-lines", "paragraph", "Blank line handling: paragraph or skip")
	pf.BoolVar(&flagNoLatex, "no-latex-delimiters", false, `Keep \( \) and \[ \] delimiters as plain text`)
	pf.StringVar(&flagDefaultLanguage, "default-language", "plain text", "Language for code fences without a tag")
	pf.StringVar(&flagTitle, "title", "", "Page title (default: front matter, first heading or file name)")
	pf.BoolVar(&flagHTML, "html", false, "Treat input as HTML regardless of extension")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// convertOptions 将全局 flag 转换为转换选项
func convertOptions() ([]notionify.Option, error) {
	var policy notionify.BlankLinePolicy
	switch strings.ToLower(flagBlankLines) {
	case "paragraph":
		policy = notionify.BlankLineParagraph
	case "skip":
		policy = notionify.BlankLineSkip
	default:
		return nil, fmt.Errorf("invalid --blank-lines %q (want paragraph or skip)", flagBlankLines)
	}
	return []notionify.Option{
		notionify.WithBlankLines(policy),
		notionify.WithLatexDelimiters(!flagNoLatex),
		notionify.WithDefaultLanguage(flagDefaultLanguage),
	}, nil
}

// loadInput 读取文件参数，缺省或 "-" 时读取标准输入
func loadInput(cmd *cobra.Command, args []string) (*document.Document, error) {
	opts := document.LoadOptions{Title: flagTitle}
	if flagHTML {
		opts.Format = document.FormatHTML
	}

	if len(args) == 0 || args[0] == "-" {
		source, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		doc, err := document.Parse(source, opts)
		if err != nil {
			return nil, err
		}
		if doc.Title == "" {
			doc.Title = "Untitled"
		}
		return doc, nil
	}
	return document.Load(args[0], opts)
}
