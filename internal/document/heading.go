package document

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// FirstHeading 返回文档中第一个一级标题的纯文本，没有时返回空串
func FirstHeading(markdown string) string {
	source := []byte(markdown)
	root := goldmark.New().Parser().Parse(text.NewReader(source))

	var title strings.Builder
	found := false
	_ = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering || found {
			return ast.WalkContinue, nil
		}
		heading, ok := n.(*ast.Heading)
		if !ok || heading.Level != 1 {
			return ast.WalkContinue, nil
		}
		found = true
		writeText(&title, heading, source)
		return ast.WalkStop, nil
	})
	return strings.TrimSpace(title.String())
}

func writeText(b *strings.Builder, n ast.Node, source []byte) {
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch v := c.(type) {
		case *ast.Text:
			b.Write(v.Segment.Value(source))
			if v.SoftLineBreak() || v.HardLineBreak() {
				b.WriteByte(' ')
			}
		case *ast.String:
			b.Write(v.Value)
		default:
			writeText(b, c, source)
		}
	}
}
