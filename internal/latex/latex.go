package latex

import (
	"regexp"
	"strings"
)

var (
	// 代码块与行内代码，其中的内容不做改写
	codeRegionRe = regexp.MustCompile("(?s)(```.*?```|`[^`\\n]+`)")

	// \[...\] 块级公式，可跨行
	displayRe = regexp.MustCompile(`(?s)\\\[(.*?)\\\]`)

	// \(...\) 行内公式
	inlineRe = regexp.MustCompile(`\\\((.*?)\\\)`)
)

// NormalizeDelimiters 将 \[...\] 与 \(...\) 改写为 $ 定界符，跳过代码区域。
//
// \[...\] 只有独占整行（可跨多行）时才改写为块级公式，$$ 各占一行；
// 出现在行中间时改写为行内公式 $...$；位于行首但后面还有文字时
// 视为转义的方括号，保持原样。\(...\) 改写为 $...$。
func NormalizeDelimiters(text string) string {
	if !strings.Contains(text, `\[`) && !strings.Contains(text, `\(`) {
		return text
	}

	parts := codeRegionRe.Split(text, -1)
	codes := codeRegionRe.FindAllString(text, -1)

	var b strings.Builder
	for i, part := range parts {
		// 与代码区域相邻的一侧不算行首/行尾
		b.WriteString(rewrite(part, i == 0, i == len(parts)-1))
		if i < len(codes) {
			b.WriteString(codes[i])
		}
	}
	return b.String()
}

func rewrite(text string, openStart, openEnd bool) string {
	text = rewriteDisplay(text, openStart, openEnd)
	return inlineRe.ReplaceAllStringFunc(text, func(match string) string {
		body := strings.TrimSpace(match[2 : len(match)-2])
		if body == "" {
			return match
		}
		return "$" + body + "$"
	})
}

func rewriteDisplay(text string, openStart, openEnd bool) string {
	matches := displayRe.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return text
	}

	var b strings.Builder
	cursor := 0
	for _, m := range matches {
		start, end := m[0], m[1]
		body := strings.TrimSpace(text[m[2]:m[3]])
		b.WriteString(text[cursor:start])
		cursor = end

		switch {
		case body == "":
			b.WriteString(text[start:end])
		case startsLine(text, start, openStart) && endsLine(text, end, openEnd):
			b.WriteString("$$\n" + body + "\n$$")
		case !startsLine(text, start, openStart) && !strings.Contains(body, "\n"):
			b.WriteString("$" + body + "$")
		default:
			b.WriteString(text[start:end])
		}
	}
	b.WriteString(text[cursor:])
	return b.String()
}

// startsLine 报告 text[:i] 在当前行内是否只有空白
func startsLine(text string, i int, open bool) bool {
	lineStart := strings.LastIndexByte(text[:i], '\n')
	if lineStart == -1 && !open {
		return false
	}
	return strings.TrimSpace(text[lineStart+1:i]) == ""
}

// endsLine 报告 text[i:] 到行尾是否只有空白
func endsLine(text string, i int, open bool) bool {
	rest := text[i:]
	lineEnd := strings.IndexByte(rest, '\n')
	if lineEnd == -1 {
		if !open {
			return false
		}
		lineEnd = len(rest)
	}
	return strings.TrimSpace(rest[:lineEnd]) == ""
}

// ToUnicode 将公式转换为可读的 Unicode 近似文本
func ToUnicode(expr string) string {
	return NewParser().Convert(expr)
}
