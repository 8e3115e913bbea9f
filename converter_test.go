package notionify

import (
	"reflect"
	"strings"
	"testing"
)

// findBlocks 返回指定类型的所有块
func findBlocks(blocks []Block, btype BlockType) []Block {
	result := []Block{}
	for _, b := range blocks {
		if b.BlockType() == btype {
			result = append(result, b)
		}
	}
	return result
}

// TestConvert_Document 测试完整文档
func TestConvert_Document(t *testing.T) {
	md := `# Hello World

This is **bold** and *italic* text with $x^2$.

- item 1
- item 2

> A quote

` + "```python\nprint(\"hello\")\n```"

	blocks := Convert(md, WithBlankLines(BlankLineSkip))

	want := []BlockType{"heading", "paragraph", "bulleted_list_item", "bulleted_list_item", "quote", "code"}
	if len(blocks) != len(want) {
		t.Fatalf("Convert() returned %d blocks, want %d: %#v", len(blocks), len(want), blocks)
	}
	for i, b := range blocks {
		if b.BlockType() != want[i] {
			t.Errorf("block %d type = %s, want %s", i, b.BlockType(), want[i])
		}
	}

	code := findBlocks(blocks, "code")[0].(Code)
	if code.Language != "python" || code.Content != `print("hello")` {
		t.Errorf("code block = %#v", code)
	}

	para := blocks[1].(Paragraph)
	if got := PlainTextOf(para.Text); got != "This is bold and italic text with x^2." {
		t.Errorf("paragraph text = %q", got)
	}
}

// TestConvert_BlankLines 测试空行策略选项
func TestConvert_BlankLines(t *testing.T) {
	md := "a\n\nb"
	if got := len(Convert(md)); got != 3 {
		t.Errorf("default policy: %d blocks, want 3", got)
	}
	if got := len(Convert(md, WithBlankLines(BlankLineSkip))); got != 2 {
		t.Errorf("skip policy: %d blocks, want 2", got)
	}
}

// TestConvert_LatexDelimiters 测试 \(...\) 与 \[...\] 的改写
func TestConvert_LatexDelimiters(t *testing.T) {
	md := "Area \\(\\pi r^2\\)\n\\[\nE = mc^2\n\\]"

	blocks := Convert(md)
	want := []Block{
		Paragraph{Text: []Segment{
			PlainText{Content: "Area "},
			InlineEquation{Expression: `\pi r^2`},
		}},
		Equation{Expression: "E = mc^2"},
	}
	if !reflect.DeepEqual(blocks, want) {
		t.Errorf("Convert() = %#v, want %#v", blocks, want)
	}

	raw := Convert(md, WithLatexDelimiters(false), WithBlankLines(BlankLineSkip))
	if len(findBlocks(raw, "equation")) != 0 {
		t.Errorf("delimiters rewritten although disabled: %#v", raw)
	}

	escaped := Convert(`\[note\] escaped brackets`)
	wantEscaped := []Block{Paragraph{Text: []Segment{
		PlainText{Content: `\[note\] escaped brackets`},
	}}}
	if !reflect.DeepEqual(escaped, wantEscaped) {
		t.Errorf("escaped brackets = %#v, want %#v", escaped, wantEscaped)
	}

	midLine := Convert(`see \[x^2\] here`)
	wantMidLine := []Block{Paragraph{Text: []Segment{
		PlainText{Content: "see "},
		InlineEquation{Expression: "x^2"},
		PlainText{Content: " here"},
	}}}
	if !reflect.DeepEqual(midLine, wantMidLine) {
		t.Errorf("mid-line display = %#v, want %#v", midLine, wantMidLine)
	}

	single := Convert(`\[ a+b \]`)
	if !reflect.DeepEqual(single, []Block{Equation{Expression: "a+b"}}) {
		t.Errorf("own-line display = %#v", single)
	}
}

// TestConvert_DefaultLanguage 测试无语言标记的代码块
func TestConvert_DefaultLanguage(t *testing.T) {
	blocks := Convert("```\nx\n```", WithDefaultLanguage("shell"))
	if code := blocks[0].(Code); code.Language != "shell" {
		t.Errorf("language = %q, want shell", code.Language)
	}
	if DefaultConfig().DefaultLanguage != "plain text" {
		t.Errorf("option leaked into DefaultConfig: %q", DefaultConfig().DefaultLanguage)
	}
}

// TestWithConfig 测试自定义配置不会被后续选项修改
func TestWithConfig(t *testing.T) {
	cfg := &Config{BlankLines: BlankLineSkip}
	blocks := Convert("a\n\n\\(x\\)", WithConfig(cfg), WithLatexDelimiters(true))
	if len(blocks) != 2 {
		t.Fatalf("Convert() returned %d blocks, want 2", len(blocks))
	}
	if cfg.LatexDelimiters {
		t.Error("WithLatexDelimiters modified the caller's Config")
	}
}

// TestTokenize 测试导出的行内拆分
func TestTokenize(t *testing.T) {
	got := Tokenize("**a** [b](c)")
	want := []Segment{
		AnnotatedText{Content: "a", Bold: true},
		PlainText{Content: " "},
		Link{Content: "b", URL: "c"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokenize() = %#v, want %#v", got, want)
	}
}

// TestToNotion 测试序列化结果
func TestToNotion(t *testing.T) {
	children, err := ToNotion("## Title\n" + strings.Repeat("x", 4001))
	if err != nil {
		t.Fatalf("ToNotion() error = %v", err)
	}
	if len(children) != 2 {
		t.Fatalf("ToNotion() returned %d blocks, want 2", len(children))
	}
	if children[0].Type != "heading_2" {
		t.Errorf("first block type = %s", children[0].Type)
	}
	if n := len(children[1].Paragraph.RichText); n != 3 {
		t.Errorf("long paragraph split into %d rich texts, want 3", n)
	}
}

// TestCount 测试 UTF-16 计数
func TestCount(t *testing.T) {
	if got := CountText("a😀中"); got != 4 {
		t.Errorf("CountText() = %d, want 4", got)
	}
	blocks := Convert("# ab\n```\ncd\n```\n$$x$$")
	if got := CountBlocks(blocks); got != 5 {
		t.Errorf("CountBlocks() = %d, want 5", got)
	}
}
