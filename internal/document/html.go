package document

import (
	"fmt"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/PuerkitoBio/goquery"
)

// noiseSelectors are HTML elements removed before conversion.
var noiseSelectors = []string{
	"script", "style", "noscript",
	"nav", "footer", "header",
	"iframe", "video", "audio",
	"svg", "canvas",
	"form", "button", "input", "select", "textarea",
	".sidebar", ".menu", ".navigation", ".ads", ".advertisement",
}

func parseHTML(html string) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	title := strings.TrimSpace(doc.Find("title").First().Text())

	for _, sel := range noiseSelectors {
		doc.Find(sel).Remove()
	}

	// <main> → <article> → <body>
	var content *goquery.Selection
	for _, tag := range []string{"main", "article", "body"} {
		if sel := doc.Find(tag); sel.Length() > 0 {
			content = sel.First()
			break
		}
	}
	if content == nil {
		return nil, fmt.Errorf("no content container found in HTML")
	}

	fragment, err := goquery.OuterHtml(content)
	if err != nil {
		return nil, fmt.Errorf("serializing content: %w", err)
	}

	markdown, err := htmltomarkdown.ConvertString(fragment)
	if err != nil {
		return nil, fmt.Errorf("converting HTML to markdown: %w", err)
	}

	return &Document{
		Title:    title,
		Markdown: markdown,
		Format:   FormatHTML,
		Meta:     map[string]any{},
	}, nil
}
