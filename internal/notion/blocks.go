// Package notion 将块序列序列化为 Notion API 的 block 对象，并提供最小的 API 客户端
package notion

import (
	"github.com/riverfjs/notionify-go/internal/mermaid"
	"github.com/riverfjs/notionify-go/internal/types"
	"github.com/riverfjs/notionify-go/internal/util"
)

// Block Notion block 对象。每个 block 只有与 Type 同名的字段非空。
type Block struct {
	Object           string      `json:"object"`
	Type             string      `json:"type"`
	Paragraph        *TextBlock  `json:"paragraph,omitempty"`
	Heading1         *TextBlock  `json:"heading_1,omitempty"`
	Heading2         *TextBlock  `json:"heading_2,omitempty"`
	Heading3         *TextBlock  `json:"heading_3,omitempty"`
	BulletedListItem *TextBlock  `json:"bulleted_list_item,omitempty"`
	NumberedListItem *TextBlock  `json:"numbered_list_item,omitempty"`
	Quote            *TextBlock  `json:"quote,omitempty"`
	Code             *CodeBlock  `json:"code,omitempty"`
	Equation         *Expression `json:"equation,omitempty"`
	Divider          *struct{}   `json:"divider,omitempty"`
}

// TextBlock 只含富文本的 block 内容
type TextBlock struct {
	RichText []RichText `json:"rich_text"`
}

// CodeBlock 代码块内容
type CodeBlock struct {
	RichText []RichText `json:"rich_text"`
	Language string     `json:"language"`
	Caption  []RichText `json:"caption,omitempty"`
}

// Expression 公式内容，块级与行内共用
type Expression struct {
	Expression string `json:"expression"`
}

// RichText 富文本对象，type 为 text 或 equation
type RichText struct {
	Type        string       `json:"type"`
	Text        *Text        `json:"text,omitempty"`
	Equation    *Expression  `json:"equation,omitempty"`
	Annotations *Annotations `json:"annotations,omitempty"`
}

// Text 文本内容
type Text struct {
	Content string `json:"content"`
	Link    *Link  `json:"link,omitempty"`
}

// Link 链接
type Link struct {
	URL string `json:"url"`
}

// Annotations 文本样式
type Annotations struct {
	Bold   bool `json:"bold"`
	Italic bool `json:"italic"`
	Code   bool `json:"code"`
}

// Serialize 将块序列转换为 Notion block 对象
//
// 超过 config.TextLimit() 个 UTF-16 单元的文本拆成多个样式相同的富文本对象；
// 代码语言规范化为 Notion 支持的语言。
func Serialize(blocks []types.Block, config *types.Config) []Block {
	limit := config.TextLimit()
	out := make([]Block, 0, len(blocks))
	for _, b := range blocks {
		out = append(out, serializeBlock(b, limit))
	}
	return out
}

func serializeBlock(b types.Block, limit int) Block {
	block := Block{Object: "block", Type: string(b.BlockType())}

	switch v := b.(type) {
	case types.Equation:
		block.Equation = &Expression{Expression: v.Expression}
	case types.Code:
		block.Code = codeBlock(v, limit)
	case types.Divider:
		block.Divider = &struct{}{}
	case types.Heading:
		content := &TextBlock{RichText: RichTexts(v.Text, limit)}
		switch v.Level {
		case 1:
			block.Type, block.Heading1 = "heading_1", content
		case 2:
			block.Type, block.Heading2 = "heading_2", content
		default:
			block.Type, block.Heading3 = "heading_3", content
		}
	case types.BulletItem:
		block.BulletedListItem = &TextBlock{RichText: RichTexts(v.Text, limit)}
	case types.NumberedItem:
		block.NumberedListItem = &TextBlock{RichText: RichTexts(v.Text, limit)}
	case types.Quote:
		block.Quote = &TextBlock{RichText: RichTexts(v.Text, limit)}
	case types.Paragraph:
		block.Paragraph = &TextBlock{RichText: RichTexts(v.Text, limit)}
	}
	return block
}

func codeBlock(c types.Code, limit int) *CodeBlock {
	code := &CodeBlock{
		RichText: textObjects(c.Content, nil, nil, limit),
		Language: util.NotionLanguage(c.Language),
	}
	if code.Language == "mermaid" && c.Content != "" {
		if url, err := mermaid.EditorURL(c.Content); err == nil {
			code.Caption = textObjects("Open in Mermaid Live", &Link{URL: url}, nil, limit)
		}
	}
	return code
}

// RichTexts 将行内片段转换为富文本对象，结果非 nil
func RichTexts(segments []types.Segment, limit int) []RichText {
	out := make([]RichText, 0, len(segments))
	for _, s := range segments {
		switch v := s.(type) {
		case types.PlainText:
			out = append(out, textObjects(v.Content, nil, nil, limit)...)
		case types.InlineEquation:
			out = append(out, RichText{Type: "equation", Equation: &Expression{Expression: v.Expression}})
		case types.AnnotatedText:
			ann := &Annotations{Bold: v.Bold, Italic: v.Italic, Code: v.Code}
			out = append(out, textObjects(v.Content, nil, ann, limit)...)
		case types.Link:
			out = append(out, linkObjects(v, limit)...)
		}
	}
	return out
}

// linkObjects Notion 不接受空 URL 的链接；空文本的链接以 URL 作为文本
func linkObjects(l types.Link, limit int) []RichText {
	if l.URL == "" {
		return textObjects(l.Content, nil, nil, limit)
	}
	content := l.Content
	if content == "" {
		content = l.URL
	}
	return textObjects(content, &Link{URL: l.URL}, nil, limit)
}

// textObjects 按 UTF-16 长度拆分文本，每段携带相同的链接与样式
func textObjects(content string, link *Link, ann *Annotations, limit int) []RichText {
	chunks := util.SplitUTF16(content, limit)
	out := make([]RichText, 0, len(chunks))
	for _, chunk := range chunks {
		out = append(out, RichText{
			Type:        "text",
			Text:        &Text{Content: chunk, Link: link},
			Annotations: ann,
		})
	}
	return out
}

// Title 页面标题属性的富文本
func Title(title string, limit int) []RichText {
	return textObjects(title, nil, nil, limit)
}
