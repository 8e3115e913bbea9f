package types

// BlockType 标识块的变体
type BlockType string

const (
	BlockEquation     BlockType = "equation"
	BlockCode         BlockType = "code"
	BlockDivider      BlockType = "divider"
	BlockHeading      BlockType = "heading"
	BlockBulletItem   BlockType = "bulleted_list_item"
	BlockNumberedItem BlockType = "numbered_list_item"
	BlockQuote        BlockType = "quote"
	BlockParagraph    BlockType = "paragraph"
)

// Block 是文档的一个结构单元。只有本包中定义的变体实现该接口。
type Block interface {
	BlockType() BlockType
	isBlock()
}

// Equation 块级公式（$$...$$）
type Equation struct {
	Expression string
}

// Code 围栏代码块
type Code struct {
	Content  string
	Language string
}

// Divider 水平分割线
type Divider struct{}

// Heading 标题，Level 取值 1..3
type Heading struct {
	Level int
	Text  []Segment
}

// BulletItem 无序列表项
type BulletItem struct {
	Text []Segment
}

// NumberedItem 有序列表项，编号由顺序隐含
type NumberedItem struct {
	Text []Segment
}

// Quote 引用
type Quote struct {
	Text []Segment
}

// Paragraph 段落。空行产生 Text 为空的段落。
type Paragraph struct {
	Text []Segment
}

func (Equation) BlockType() BlockType     { return BlockEquation }
func (Code) BlockType() BlockType         { return BlockCode }
func (Divider) BlockType() BlockType      { return BlockDivider }
func (Heading) BlockType() BlockType      { return BlockHeading }
func (BulletItem) BlockType() BlockType   { return BlockBulletItem }
func (NumberedItem) BlockType() BlockType { return BlockNumberedItem }
func (Quote) BlockType() BlockType        { return BlockQuote }
func (Paragraph) BlockType() BlockType    { return BlockParagraph }

func (Equation) isBlock()     {}
func (Code) isBlock()         {}
func (Divider) isBlock()      {}
func (Heading) isBlock()      {}
func (BulletItem) isBlock()   {}
func (NumberedItem) isBlock() {}
func (Quote) isBlock()        {}
func (Paragraph) isBlock()    {}

// RichText returns the segments of a text-bearing block.
// The second result is false for Equation, Code and Divider.
func RichText(b Block) ([]Segment, bool) {
	switch v := b.(type) {
	case Heading:
		return v.Text, true
	case BulletItem:
		return v.Text, true
	case NumberedItem:
		return v.Text, true
	case Quote:
		return v.Text, true
	case Paragraph:
		return v.Text, true
	default:
		return nil, false
	}
}

// SegmentType 标识行内片段的变体
type SegmentType string

const (
	SegmentPlainText SegmentType = "text"
	SegmentEquation  SegmentType = "equation"
	SegmentAnnotated SegmentType = "annotated"
	SegmentLink      SegmentType = "link"
)

// Segment 是一行内统一格式的一段文本或一个行内公式
type Segment interface {
	SegmentType() SegmentType
	isSegment()
}

// PlainText 无格式文本
type PlainText struct {
	Content string
}

// InlineEquation 行内公式（$...$）
type InlineEquation struct {
	Expression string
}

// AnnotatedText 带粗体、斜体或行内代码标记的文本
type AnnotatedText struct {
	Content string
	Bold    bool
	Italic  bool
	Code    bool
}

// Link 链接
type Link struct {
	Content string
	URL     string
}

func (PlainText) SegmentType() SegmentType      { return SegmentPlainText }
func (InlineEquation) SegmentType() SegmentType { return SegmentEquation }
func (AnnotatedText) SegmentType() SegmentType  { return SegmentAnnotated }
func (Link) SegmentType() SegmentType           { return SegmentLink }

func (PlainText) isSegment()      {}
func (InlineEquation) isSegment() {}
func (AnnotatedText) isSegment()  {}
func (Link) isSegment()           {}

// SegmentText returns the visible text of a segment: the content of text
// segments and the expression of an equation.
func SegmentText(s Segment) string {
	switch v := s.(type) {
	case PlainText:
		return v.Content
	case InlineEquation:
		return v.Expression
	case AnnotatedText:
		return v.Content
	case Link:
		return v.Content
	default:
		return ""
	}
}
