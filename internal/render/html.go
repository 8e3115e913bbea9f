package render

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"

	"github.com/riverfjs/notionify-go/internal/types"
)

// StandardOptions goldmark 扩展配置
var StandardOptions = []goldmark.Option{
	goldmark.WithExtensions(
		extension.GFM,            // GitHub Flavored Markdown (tables, strikethrough, tasklists)
		extension.DefinitionList, // 定义列表
		extension.Footnote,       // 脚注
	),
	goldmark.WithParserOptions(
		parser.WithAutoHeadingID(), // 自动生成标题 ID
	),
}

var md = goldmark.New(StandardOptions...)

// HTML 将块序列渲染为 HTML 预览
//
// 块先写回 Markdown，再交给 goldmark 渲染。块之间用空行分隔，
// 避免相邻段落被合并；同类列表项之间只换行，保持紧凑列表。
func HTML(blocks []types.Block) (string, error) {
	var src strings.Builder
	for i, b := range blocks {
		if i > 0 {
			src.WriteString("\n")
			if !(isListItem(b) && b.BlockType() == blocks[i-1].BlockType()) {
				src.WriteString("\n")
			}
		}
		src.WriteString(markdownBlock(b))
	}

	var buf bytes.Buffer
	if err := md.Convert([]byte(src.String()), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
