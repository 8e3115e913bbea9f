package converter

import (
	"regexp"
	"sort"
	"strings"

	"github.com/riverfjs/notionify-go/internal/types"
)

var (
	boldRe = regexp.MustCompile(`\*\*(.+?)\*\*`)
	codeRe = regexp.MustCompile("`([^`]+)`")
	linkRe = regexp.MustCompile(`\[([^\]]*)\]\(([^)]*)\)`)
)

// Tokenize 将一行文本拆分为行内片段
//
// 分三个阶段：
//  1. 公式保护：$...$ 替换为占位符，避免公式内容被当作格式标记
//  2. 格式识别：粗体、斜体、行内代码、链接各自独立匹配，按起点排序后
//     贪心选取互不重叠的区间（最左者胜出），区间之间的文本为普通文本
//  3. 公式还原：每个文本片段再按占位符拆开，占位符还原为行内公式
//
// 不会返回错误；无法识别的内容按普通文本处理。
func Tokenize(line string) []types.Segment {
	protected, table := protectMath(line)
	spans := selectSpans(findSpans(protected))

	out := make([]types.Segment, 0)
	if len(spans) == 0 {
		if strings.TrimSpace(protected) == "" {
			return out
		}
		return restore(out, types.PlainText{Content: protected}, table)
	}

	cursor := 0
	for _, s := range spans {
		if s.start > cursor {
			out = restore(out, types.PlainText{Content: protected[cursor:s.start]}, table)
		}
		out = restore(out, s.segment(), table)
		cursor = s.end
	}
	if cursor < len(protected) {
		out = restore(out, types.PlainText{Content: protected[cursor:]}, table)
	}
	return out
}

// findSpans 收集四种格式的全部匹配
func findSpans(text string) []span {
	var spans []span
	for _, m := range boldRe.FindAllStringSubmatchIndex(text, -1) {
		spans = append(spans, span{kind: spanBold, start: m[0], end: m[1], content: text[m[2]:m[3]]})
	}
	spans = append(spans, findItalic(text)...)
	for _, m := range codeRe.FindAllStringSubmatchIndex(text, -1) {
		spans = append(spans, span{kind: spanCode, start: m[0], end: m[1], content: text[m[2]:m[3]]})
	}
	for _, m := range linkRe.FindAllStringSubmatchIndex(text, -1) {
		spans = append(spans, span{
			kind:    spanLink,
			start:   m[0],
			end:     m[1],
			content: text[m[2]:m[3]],
			url:     text[m[4]:m[5]],
		})
	}
	return spans
}

// findItalic 匹配 *...*，内容中不含 *，两侧定界符都不能紧邻另一个 *，
// 这样不会吃掉粗体的 ** 定界符。RE2 不支持环视，因此手写扫描。
func findItalic(text string) []span {
	var spans []span
	lone := func(i int) bool {
		if text[i] != '*' {
			return false
		}
		if i > 0 && text[i-1] == '*' {
			return false
		}
		return i+1 >= len(text) || text[i+1] != '*'
	}

	for i := 0; i < len(text); i++ {
		if !lone(i) {
			continue
		}
		closer := -1
		for j := i + 2; j < len(text); j++ {
			if text[j] == '\n' {
				break
			}
			if text[j] == '*' {
				if lone(j) {
					closer = j
				}
				break
			}
		}
		if closer == -1 {
			continue
		}
		spans = append(spans, span{kind: spanItalic, start: i, end: closer + 1, content: text[i+1 : closer]})
		i = closer
	}
	return spans
}

// selectSpans 按起点排序，贪心接受与已接受区间不相交的候选
func selectSpans(candidates []span) []span {
	sort.SliceStable(candidates, func(a, b int) bool {
		return candidates[a].start < candidates[b].start
	})

	var accepted []span
	for _, c := range candidates {
		clash := false
		for _, a := range accepted {
			if c.overlaps(a) {
				clash = true
				break
			}
		}
		if !clash {
			accepted = append(accepted, c)
		}
	}
	return accepted
}

func (s span) segment() types.Segment {
	switch s.kind {
	case spanBold:
		return types.AnnotatedText{Content: s.content, Bold: true}
	case spanItalic:
		return types.AnnotatedText{Content: s.content, Italic: true}
	case spanCode:
		return types.AnnotatedText{Content: s.content, Code: true}
	default:
		return types.Link{Content: s.content, URL: s.url}
	}
}

// restore 还原片段中的公式占位符并追加到 out。
// 注释标记与链接地址会保留在拆分后的每个文本碎片上；空内容被丢弃。
func restore(out []types.Segment, seg types.Segment, table *mathTable) []types.Segment {
	if link, ok := seg.(types.Link); ok {
		link.URL = table.restoreRaw(link.URL)
		if link.Content == "" {
			return append(out, link)
		}
		seg = link
	}

	for _, f := range table.split(types.SegmentText(seg)) {
		if f.isMath {
			if f.formula != "" {
				out = append(out, types.InlineEquation{Expression: f.formula})
			}
			continue
		}
		if f.text == "" {
			continue
		}
		switch v := seg.(type) {
		case types.PlainText:
			out = append(out, types.PlainText{Content: f.text})
		case types.AnnotatedText:
			v.Content = f.text
			out = append(out, v)
		case types.Link:
			v.Content = f.text
			out = append(out, v)
		}
	}
	return out
}
