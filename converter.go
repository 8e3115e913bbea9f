package notionify

import (
	"github.com/riverfjs/notionify-go/internal/converter"
	"github.com/riverfjs/notionify-go/internal/latex"
	"github.com/riverfjs/notionify-go/internal/parser"
)

// Convert 将 Markdown 转换为块序列
//
// 参数:
//   - markdown: 原始 Markdown 文本
//   - opts: 转换选项，缺省时使用 DefaultConfig()
//
// 返回:
//   - []Block: 按文档顺序排列的块
func Convert(markdown string, opts ...Option) []Block {
	return convert(markdown, applyOptions(opts...))
}

func convert(markdown string, options *ConvertOptions) []Block {
	preprocessed := markdown
	if options.Config.LatexDelimiters {
		preprocessed = latex.NormalizeDelimiters(preprocessed)
	}
	blocks := parser.Scan(preprocessed, options.Config)
	Logger.Debug("markdown converted", "blocks", len(blocks))
	return blocks
}

// Scan 直接运行块扫描器，不做任何预处理
func Scan(document string, config *Config) []Block {
	return parser.Scan(document, config)
}

// Tokenize 将单行文本拆分为行内片段
func Tokenize(line string) []Segment {
	return converter.Tokenize(line)
}
