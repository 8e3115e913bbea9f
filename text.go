package notionify

import (
	"strings"

	"github.com/riverfjs/notionify-go/internal/types"
	"github.com/riverfjs/notionify-go/internal/util"
)

// UTF16Len returns the length of text measured in UTF-16 code units.
//
// Notion limits rich text content by UTF-16 code units, not Go string bytes
// or runes. Characters outside the BMP take 2 units; all others take 1.
func UTF16Len(text string) int {
	return util.UTF16Len(text)
}

// SegmentText returns the visible text of a segment; equations yield their expression.
func SegmentText(s Segment) string {
	return types.SegmentText(s)
}

// PlainTextOf 拼接行内片段的文本
func PlainTextOf(segments []Segment) string {
	var b strings.Builder
	for _, s := range segments {
		b.WriteString(types.SegmentText(s))
	}
	return b.String()
}
