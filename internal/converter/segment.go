package converter

// spanKind 标识第二阶段识别出的格式区间类型
type spanKind int

const (
	spanBold spanKind = iota
	spanItalic
	spanCode
	spanLink
)

// span 记录一个格式区间在（已替换公式占位符的）文本中的位置
type span struct {
	kind    spanKind
	start   int    // 起始字节（含定界符）
	end     int    // 结束字节（含定界符，开区间）
	content string // 定界符内的文本
	url     string // 仅链接
}

func (s span) overlaps(o span) bool {
	return s.start < o.end && o.start < s.end
}
