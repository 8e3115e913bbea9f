package converter

import (
	"regexp"
	"strconv"
	"strings"
)

const (
	placeholderOpen  = "\uE000"
	placeholderClose = "\uE001"
)

var (
	// inlineMathRe 匹配行内公式 $...$，内部不允许出现 $ 或换行
	inlineMathRe = regexp.MustCompile(`\$([^$\n]+)\$`)

	// placeholderRe 匹配公式占位符。使用私有区字符，正常文本中不会出现。
	placeholderRe = regexp.MustCompile(`\x{E000}MATH(\d+)\x{E001}`)
)

// mathSlot 记录被替换掉的行内公式
type mathSlot struct {
	expression string // 去除首尾空白后的公式
	raw        string // 原始匹配（含 $）
}

// mathTable 占位符到公式的可逆映射
type mathTable struct {
	slots []mathSlot
}

func placeholder(index int) string {
	return placeholderOpen + "MATH" + strconv.Itoa(index) + placeholderClose
}

// protectMath 将行内公式替换为占位符，返回替换后的文本与映射表
func protectMath(line string) (string, *mathTable) {
	table := &mathTable{}
	if !strings.Contains(line, "$") {
		return line, table
	}
	protected := inlineMathRe.ReplaceAllStringFunc(line, func(match string) string {
		expr := strings.TrimSpace(match[1 : len(match)-1])
		table.slots = append(table.slots, mathSlot{expression: expr, raw: match})
		return placeholder(len(table.slots) - 1)
	})
	return protected, table
}

// lookup 根据占位符中的序号取回公式
func (t *mathTable) lookup(index string) (mathSlot, bool) {
	n, err := strconv.Atoi(index)
	if err != nil || n < 0 || n >= len(t.slots) {
		return mathSlot{}, false
	}
	return t.slots[n], true
}

// fragment 是按占位符拆分后的一段：要么是普通文本，要么是公式
type fragment struct {
	text    string
	isMath  bool
	formula string
}

// split 将文本按占位符拆开，保持原有顺序。未知序号的占位符原样保留为文本。
func (t *mathTable) split(text string) []fragment {
	if len(t.slots) == 0 || !strings.Contains(text, placeholderOpen) {
		return []fragment{{text: text}}
	}

	var out []fragment
	cursor := 0
	pending := ""
	for _, loc := range placeholderRe.FindAllStringSubmatchIndex(text, -1) {
		slot, ok := t.lookup(text[loc[2]:loc[3]])
		if !ok {
			continue
		}
		pending += text[cursor:loc[0]]
		if pending != "" {
			out = append(out, fragment{text: pending})
			pending = ""
		}
		out = append(out, fragment{isMath: true, formula: slot.expression})
		cursor = loc[1]
	}
	pending += text[cursor:]
	if pending != "" {
		out = append(out, fragment{text: pending})
	}
	return out
}

// restoreRaw 将占位符还原为原始的 $...$ 文本（用于链接 URL）
func (t *mathTable) restoreRaw(text string) string {
	if len(t.slots) == 0 {
		return text
	}
	return placeholderRe.ReplaceAllStringFunc(text, func(match string) string {
		sub := placeholderRe.FindStringSubmatch(match)
		if slot, ok := t.lookup(sub[1]); ok {
			return slot.raw
		}
		return match
	})
}
