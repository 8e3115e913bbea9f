package notionify

import (
	"github.com/riverfjs/notionify-go/internal/notion"
	"github.com/riverfjs/notionify-go/internal/types"
)

// 导出类型别名
type (
	Block     = types.Block
	BlockType = types.BlockType

	Equation     = types.Equation
	Code         = types.Code
	Divider      = types.Divider
	Heading      = types.Heading
	BulletItem   = types.BulletItem
	NumberedItem = types.NumberedItem
	Quote        = types.Quote
	Paragraph    = types.Paragraph

	Segment     = types.Segment
	SegmentType = types.SegmentType

	PlainText      = types.PlainText
	InlineEquation = types.InlineEquation
	AnnotatedText  = types.AnnotatedText
	Link           = types.Link

	// NotionBlock Notion API 的 block 对象
	NotionBlock = notion.Block
)

// RichText returns the inline segments of a text-bearing block.
func RichText(b Block) ([]Segment, bool) {
	return types.RichText(b)
}
