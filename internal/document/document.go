// Package document 读取待发布的 Markdown 或 HTML 文件
//
// Markdown 文件的 front matter 中的 title 作为页面标题；HTML 文件先用 goquery
// 去除导航、脚本等噪声元素，再转换为 Markdown。
package document

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/frontmatter"
)

// Format 文档格式
type Format string

const (
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
)

// Document 读取后的文档
type Document struct {
	Title    string
	Markdown string
	Format   Format
	Meta     map[string]any
}

// LoadOptions 读取选项
type LoadOptions struct {
	// Title 非空时覆盖从文档中推断的标题
	Title string
	// Format 为空时按扩展名判断
	Format Format
}

type frontMatter struct {
	Title  string         `yaml:"title" toml:"title" json:"title"`
	Custom map[string]any `yaml:",inline"`
}

// Load 读取文件并推断标题
//
// 标题优先级：LoadOptions.Title → front matter / <title> → 第一个一级标题 → 文件名。
func Load(path string, opts LoadOptions) (*Document, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if opts.Format == "" {
		opts.Format = DetectFormat(path)
	}
	doc, err := Parse(source, opts)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	if doc.Title == "" {
		doc.Title = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return doc, nil
}

// Parse 解析内存中的文档内容，Format 为空时视为 Markdown
func Parse(source []byte, opts LoadOptions) (*Document, error) {
	var doc *Document
	var err error
	switch opts.Format {
	case FormatHTML:
		doc, err = parseHTML(string(source))
	default:
		doc, err = parseMarkdown(source)
	}
	if err != nil {
		return nil, err
	}
	if doc.Title == "" {
		doc.Title = FirstHeading(doc.Markdown)
	}
	if title := strings.TrimSpace(opts.Title); title != "" {
		doc.Title = title
	}
	return doc, nil
}

// DetectFormat 按扩展名判断格式
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm", ".xhtml":
		return FormatHTML
	}
	return FormatMarkdown
}

func parseMarkdown(source []byte) (*Document, error) {
	var meta frontMatter
	body, err := frontmatter.Parse(bytes.NewReader(source), &meta)
	if err != nil {
		return nil, fmt.Errorf("parse frontmatter: %w", err)
	}
	if meta.Custom == nil {
		meta.Custom = map[string]any{}
	}
	return &Document{
		Title:    strings.TrimSpace(meta.Title),
		Markdown: string(body),
		Format:   FormatMarkdown,
		Meta:     meta.Custom,
	}, nil
}
