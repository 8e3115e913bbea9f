package latex

import (
	"regexp"
	"strings"
	"unicode"
)

// Parser 递归下降的 LaTeX → Unicode 近似转换器
//
// 未知命令原样输出，不会报错。仅用于纯文本预览；发送给 Notion 的公式始终保留 LaTeX 源码。
type Parser struct{}

// NewParser 创建解析器
func NewParser() *Parser {
	return &Parser{}
}

var commandRe = regexp.MustCompile(`^\\([a-zA-Z]+|.)`)

// Convert 将 LaTeX 转换为 Unicode 文本。解析过程中出现 panic 时返回原文。
func (p *Parser) Convert(expr string) (out string) {
	defer func() {
		if r := recover(); r != nil {
			out = expr
		}
	}()
	return strings.TrimSpace(p.parse(expr))
}

func (p *Parser) parse(src string) string {
	var b strings.Builder
	for i := 0; i < len(src); {
		switch c := src[i]; {
		case c == '\\':
			cmd, next := p.command(src, i)
			text, next := p.dispatch(cmd, src, next)
			b.WriteString(text)
			i = next
		case c == '{':
			text, next := p.group(src, i)
			b.WriteString(text)
			i = next
		case c == '_' || c == '^':
			arg, next := p.group(src, i+1)
			if c == '_' {
				b.WriteString(subscript(arg))
			} else {
				b.WriteString(superscript(arg))
			}
			i = next
		case c == '&':
			b.WriteByte(' ')
			i++
		case isSpace(c):
			for i < len(src) && isSpace(src[i]) {
				i++
			}
			b.WriteByte(' ')
		default:
			b.WriteByte(c)
			i++
		}
	}
	return b.String()
}

// dispatch 处理一个命令，返回输出文本与新的读取位置
func (p *Parser) dispatch(cmd, src string, i int) (string, int) {
	if sym, ok := LatexSymbols[cmd]; ok {
		return sym, i
	}
	if sample, ok := Combining[cmd]; ok {
		arg, next := p.group(src, i)
		return combine(sample, arg), next
	}
	if style, ok := LatexStyles[cmd]; ok {
		arg, next := p.group(src, i)
		return restyle(style, arg), next
	}

	switch cmd {
	case `\not`:
		if i >= len(src) {
			return "\u0338", i
		}
		arg, next := p.group(src, i)
		return negate(arg), next
	case `\frac`, `\dfrac`, `\tfrac`:
		num, next := p.group(src, i)
		den, next := p.group(src, next)
		return fraction(num, den), next
	case `\sqrt`:
		index, next := p.optional(src, i)
		arg, next := p.group(src, next)
		return root(index, arg), next
	case `\text`, `\textrm`, `\textbf`, `\textit`, `\mbox`, `\operatorname`, `\mathop`:
		return p.group(src, i)
	case `\left`, `\right`:
		return p.delimiter(src, i)
	case `\binom`, `\tbinom`, `\dbinom`:
		n, next := p.group(src, i)
		k, next := p.group(src, next)
		return "C(" + n + "," + k + ")", next
	case `\boxed`:
		arg, next := p.group(src, i)
		return "[" + arg + "]", next
	case `\pmod`:
		arg, next := p.group(src, i)
		return " (mod " + arg + ")", next
	case `\overset`, `\stackrel`:
		over, next := p.group(src, i)
		base, next := p.group(src, next)
		return base + superscript(over), next
	case `\underset`:
		under, next := p.group(src, i)
		base, next := p.group(src, next)
		return base + subscript(under), next
	case `\color`:
		_, next := p.group(src, i)
		return "", next
	case `\begin`:
		name, next := envName(src, i)
		body, next := envBody(src, next, name)
		return p.environment(name, body), next
	case `\end`:
		_, next := envName(src, i)
		return "", next
	}
	return cmd, i
}

func (p *Parser) command(src string, i int) (string, int) {
	if m := commandRe.FindString(src[i:]); m != "" {
		return m, i + len(m)
	}
	return `\`, i + 1
}

// group 读取一个参数：{...} 整体，或单个命令，或单个字符
func (p *Parser) group(src string, i int) (string, int) {
	for i < len(src) && src[i] == ' ' {
		i++
	}
	if i >= len(src) {
		return "", i
	}
	switch src[i] {
	case '{':
		end := matching(src, i, '{', '}')
		return p.parse(src[i+1 : end]), min(end+1, len(src))
	case '\\':
		cmd, next := p.command(src, i)
		return p.dispatch(cmd, src, next)
	}
	return string(src[i]), i + 1
}

func (p *Parser) optional(src string, i int) (string, int) {
	if i >= len(src) || src[i] != '[' {
		return "", i
	}
	end := matching(src, i, '[', ']')
	return p.parse(src[i+1 : end]), min(end+1, len(src))
}

func (p *Parser) delimiter(src string, i int) (string, int) {
	if i >= len(src) {
		return "", i
	}
	switch src[i] {
	case '\\':
		cmd, next := p.command(src, i)
		if sym, ok := LatexSymbols[cmd]; ok {
			return sym, next
		}
		return strings.TrimPrefix(cmd, `\`), next
	case '.':
		return "", i + 1
	}
	return string(src[i]), i + 1
}

func (p *Parser) environment(name, body string) string {
	rows := strings.Split(body, `\\`)
	var lines []string
	for _, row := range rows {
		row = strings.TrimSpace(row)
		if row == "" {
			continue
		}
		lines = append(lines, strings.Join(strings.Fields(p.parse(row)), " "))
	}
	switch name {
	case "pmatrix":
		return "(" + strings.Join(lines, "; ") + ")"
	case "bmatrix":
		return "[" + strings.Join(lines, "; ") + "]"
	case "vmatrix":
		return "|" + strings.Join(lines, "; ") + "|"
	case "cases":
		return "{ " + strings.Join(lines, "; ")
	}
	return strings.Join(lines, "\n")
}

// matching 返回与 src[open] 配对的闭合位置；未闭合时返回 len(src)
func matching(src string, open int, l, r byte) int {
	depth := 0
	for i := open; i < len(src); i++ {
		switch src[i] {
		case l:
			depth++
		case r:
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return len(src)
}

func envName(src string, i int) (string, int) {
	if i < len(src) && src[i] == '{' {
		if end := strings.IndexByte(src[i:], '}'); end != -1 {
			return src[i+1 : i+end], i + end + 1
		}
	}
	return "", i
}

func envBody(src string, i int, name string) (string, int) {
	marker := `\end{` + name + `}`
	end := strings.Index(src[i:], marker)
	if end == -1 {
		return src[i:], len(src)
	}
	return src[i : i+end], i + end + len(marker)
}

func combine(sample CombiningSample, text string) string {
	runes := []rune(text)
	if len(runes) == 0 {
		return string(sample.Char)
	}
	switch sample.Type {
	case AllChars:
		var b strings.Builder
		for _, r := range runes {
			b.WriteRune(r)
			b.WriteRune(sample.Char)
		}
		return b.String()
	case LastChar:
		return text + string(sample.Char)
	}
	return string(runes[0]) + string(sample.Char) + string(runes[1:])
}

func restyle(style map[rune]rune, text string) string {
	if style == nil {
		return text
	}
	return strings.Map(func(r rune) rune {
		if s, ok := style[r]; ok {
			return s
		}
		return r
	}, text)
}

func negate(text string) string {
	text = strings.TrimSpace(text)
	if n, ok := NotMap[text]; ok {
		return n
	}
	if text == "" {
		return "\u0338"
	}
	runes := []rune(text)
	return string(runes[0]) + "\u0338" + string(runes[1:])
}

func fraction(num, den string) string {
	num, den = strings.TrimSpace(num), strings.TrimSpace(den)
	if f, ok := FracMap[[2]string{num, den}]; ok {
		return f
	}
	return wrap(num) + "/" + wrap(den)
}

func root(index, radicand string) string {
	radicand = strings.TrimSpace(radicand)
	switch strings.TrimSpace(index) {
	case "", "2":
		return "√" + wrap(radicand)
	case "3":
		return "∛" + wrap(radicand)
	case "4":
		return "∜" + wrap(radicand)
	}
	return superscript(index) + "√" + wrap(radicand)
}

// wrap 非单一标识符时加括号
func wrap(text string) string {
	for _, r := range text {
		if !unicode.IsLetter(r) && !unicode.IsNumber(r) {
			return "(" + text + ")"
		}
	}
	return text
}

func subscript(text string) string {
	return script(text, Subscripts, "_")
}

func superscript(text string) string {
	return script(text, Superscripts, "^")
}

// script 全部字符都有对应上下标时直接映射，否则退化为 ^(...) / _(...)
func script(text string, table map[rune]rune, marker string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	var b strings.Builder
	for _, r := range text {
		s, ok := table[r]
		if !ok {
			if len([]rune(text)) == 1 {
				return marker + text
			}
			return marker + "(" + text + ")"
		}
		b.WriteRune(s)
	}
	return b.String()
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}
