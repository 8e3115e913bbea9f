package render

import (
	"strconv"
	"strings"

	"github.com/riverfjs/notionify-go/internal/buffer"
	"github.com/riverfjs/notionify-go/internal/latex"
	"github.com/riverfjs/notionify-go/internal/types"
)

const dividerLine = "────────────"

// Text 将块序列渲染为纯文本，公式转为 Unicode 近似
func Text(blocks []types.Block) string {
	r := &textRenderer{
		buf:   buffer.New(),
		latex: latex.NewParser(),
	}
	for _, b := range blocks {
		r.block(b)
	}
	return strings.TrimRight(r.buf.String(), "\n")
}

type textRenderer struct {
	buf    *buffer.TextBuffer
	latex  *latex.Parser
	number int // 当前有序列表序号
	prev   types.Block
}

func (r *textRenderer) block(b types.Block) {
	if _, ok := b.(types.NumberedItem); !ok {
		r.number = 0
	}
	r.ensureBlockSpacing(b)

	switch v := b.(type) {
	case types.Equation:
		r.buf.Write(r.latex.Convert(v.Expression))
	case types.Code:
		r.buf.Write(v.Content)
	case types.Divider:
		r.buf.Write(dividerLine)
	case types.Heading:
		r.buf.Write(r.inline(v.Text))
	case types.BulletItem:
		r.buf.Write("• " + r.inline(v.Text))
	case types.NumberedItem:
		r.number++
		r.buf.Write(strconv.Itoa(r.number) + ". " + r.inline(v.Text))
	case types.Quote:
		r.buf.Write("│ " + r.inline(v.Text))
	case types.Paragraph:
		r.buf.Write(r.inline(v.Text))
	}
	r.prev = b
}

// ensureBlockSpacing 块之间空一行；连续的列表项之间只换行
func (r *textRenderer) ensureBlockSpacing(b types.Block) {
	if r.prev == nil {
		return
	}
	if isListItem(r.prev) && isListItem(b) && r.prev.BlockType() == b.BlockType() {
		r.buf.EnsureNewlines(1)
		return
	}
	r.buf.EnsureNewlines(2)
}

func (r *textRenderer) inline(segments []types.Segment) string {
	var b strings.Builder
	for _, s := range segments {
		switch v := s.(type) {
		case types.InlineEquation:
			b.WriteString(r.latex.Convert(v.Expression))
		case types.Link:
			b.WriteString(v.Content)
			if v.URL != "" && v.URL != v.Content {
				b.WriteString(" (" + v.URL + ")")
			}
		default:
			b.WriteString(types.SegmentText(s))
		}
	}
	return b.String()
}

func isListItem(b types.Block) bool {
	switch b.(type) {
	case types.BulletItem, types.NumberedItem:
		return true
	}
	return false
}
