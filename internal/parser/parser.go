package parser

import (
	"regexp"
	"strings"

	"github.com/riverfjs/notionify-go/internal/converter"
	"github.com/riverfjs/notionify-go/internal/types"
)

const (
	mathFence = "$$"
	codeFence = "```"
)

var numberedRe = regexp.MustCompile(`^\d+\.\s`)

// Scan 将 Markdown 文档逐行扫描为块序列
//
// 每行按固定顺序尝试：公式 → 代码 → 分割线 → 标题 → 无序列表 → 有序列表 → 引用 → 段落，
// 第一个匹配者生效。公式块与代码块会向后读取多行直到闭合标记；
// 到达文档末尾仍未闭合时按已读取的内容收尾，不会报错。
func Scan(document string, config *types.Config) []types.Block {
	if config == nil {
		config = types.DefaultConfig()
	}
	s := &scanner{
		lines:  splitLines(document),
		config: config,
		blocks: make([]types.Block, 0),
	}
	s.run()
	return s.blocks
}

// splitLines 将 \r\n 与单独的 \r 统一为 \n 后拆分。文档末尾换行产生的最后一个空行不计入。
func splitLines(document string) []string {
	document = strings.ReplaceAll(document, "\r\n", "\n")
	document = strings.ReplaceAll(document, "\r", "\n")
	if document == "" {
		return nil
	}
	lines := strings.Split(document, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

type scanner struct {
	lines  []string
	i      int
	config *types.Config
	blocks []types.Block
}

func (s *scanner) emit(b types.Block) {
	s.blocks = append(s.blocks, b)
}

func (s *scanner) run() {
	for s.i < len(s.lines) {
		raw := s.lines[s.i]
		line := strings.TrimSpace(raw)
		s.i++

		switch {
		case strings.HasPrefix(line, mathFence):
			s.scanEquation(line)
		case strings.HasPrefix(line, codeFence):
			s.scanCode(line)
		case line == "---" || line == "***" || line == "___":
			s.emit(types.Divider{})
		case strings.HasPrefix(line, "#"):
			s.emit(heading(line))
		case strings.HasPrefix(line, "- ") || strings.HasPrefix(line, "* "):
			s.emit(types.BulletItem{Text: converter.Tokenize(strings.TrimSpace(line[2:]))})
		case numberedRe.MatchString(line):
			prefix := numberedRe.FindString(line)
			s.emit(types.NumberedItem{Text: converter.Tokenize(strings.TrimSpace(line[len(prefix):]))})
		case strings.HasPrefix(line, "> "):
			s.emit(types.Quote{Text: converter.Tokenize(strings.TrimSpace(line[2:]))})
		case line != "":
			s.emit(types.Paragraph{Text: converter.Tokenize(line)})
		default:
			if s.config.BlankLines == types.BlankLineParagraph {
				s.emit(types.Paragraph{Text: []types.Segment{}})
			}
		}
	}
}

// scanEquation 处理 $$ 开头的行
func (s *scanner) scanEquation(line string) {
	// 单行：$$...$$
	if len(line) >= 2*len(mathFence) && strings.HasSuffix(line, mathFence) {
		expr := strings.TrimSpace(line[len(mathFence) : len(line)-len(mathFence)])
		if expr != "" {
			s.emit(types.Equation{Expression: expr})
		}
		return
	}

	rows := []string{line[len(mathFence):]}
	for s.i < len(s.lines) {
		raw := s.lines[s.i]
		s.i++
		trimmed := strings.TrimSpace(raw)
		if strings.HasSuffix(trimmed, mathFence) {
			rows = append(rows, strings.TrimSuffix(trimmed, mathFence))
			break
		}
		rows = append(rows, raw)
	}

	if expr := strings.TrimSpace(strings.Join(rows, "\n")); expr != "" {
		s.emit(types.Equation{Expression: expr})
	}
}

// scanCode 处理 ``` 开头的围栏代码块，闭合行不计入内容
func (s *scanner) scanCode(line string) {
	language := strings.TrimSpace(line[len(codeFence):])
	if language == "" {
		language = s.config.Language()
	}

	var rows []string
	for s.i < len(s.lines) {
		raw := s.lines[s.i]
		s.i++
		if strings.HasPrefix(strings.TrimSpace(raw), codeFence) {
			break
		}
		rows = append(rows, raw)
	}
	s.emit(types.Code{Content: strings.Join(rows, "\n"), Language: language})
}

// heading 根据前导 # 的个数确定级别，三级及以上都映射为 3
func heading(line string) types.Heading {
	level := 0
	for level < len(line) && line[level] == '#' {
		level++
	}
	text := strings.TrimSpace(line[level:])
	if level > 3 {
		level = 3
	}
	return types.Heading{Level: level, Text: converter.Tokenize(text)}
}
