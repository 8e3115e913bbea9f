package render

import (
	"strings"

	"github.com/riverfjs/notionify-go/internal/types"
)

// Markdown 将块序列写回 Markdown
//
// 输出可以被 parser.Scan 重新扫描：有序列表统一写作 "1. "，
// 公式块的 $$ 各占一行，空段落写作空行。
func Markdown(blocks []types.Block) string {
	lines := make([]string, 0, len(blocks))
	for _, b := range blocks {
		lines = append(lines, markdownBlock(b))
	}
	out := strings.Join(lines, "\n")
	// 末尾换行不产生空段落，结尾的空段落需要多写一个换行
	if p, ok := last(blocks).(types.Paragraph); ok && len(p.Text) == 0 {
		out += "\n"
	}
	return out
}

func last(blocks []types.Block) types.Block {
	if len(blocks) == 0 {
		return nil
	}
	return blocks[len(blocks)-1]
}

func markdownBlock(b types.Block) string {
	switch v := b.(type) {
	case types.Equation:
		return "$$\n" + v.Expression + "\n$$"
	case types.Code:
		lang := v.Language
		if lang == types.DefaultLanguage {
			lang = ""
		}
		if v.Content == "" {
			return "```" + lang + "\n```"
		}
		return "```" + lang + "\n" + v.Content + "\n```"
	case types.Divider:
		return "---"
	case types.Heading:
		return strings.Repeat("#", v.Level) + " " + Inline(v.Text)
	case types.BulletItem:
		return "- " + Inline(v.Text)
	case types.NumberedItem:
		return "1. " + Inline(v.Text)
	case types.Quote:
		return "> " + Inline(v.Text)
	case types.Paragraph:
		return Inline(v.Text)
	}
	return ""
}

// Inline 将行内片段写回 Markdown 标记
func Inline(segments []types.Segment) string {
	var b strings.Builder
	for _, s := range segments {
		switch v := s.(type) {
		case types.PlainText:
			b.WriteString(v.Content)
		case types.InlineEquation:
			b.WriteString("$" + v.Expression + "$")
		case types.AnnotatedText:
			b.WriteString(annotate(v))
		case types.Link:
			b.WriteString("[" + v.Content + "](" + v.URL + ")")
		}
	}
	return b.String()
}

func annotate(t types.AnnotatedText) string {
	text := t.Content
	if t.Code {
		text = "`" + text + "`"
	}
	if t.Italic {
		text = "*" + text + "*"
	}
	if t.Bold {
		text = "**" + text + "**"
	}
	return text
}
