package notionify

// CountText 计算文本在 Notion 中的有效长度（UTF-16 code units）
//
// Notion 对单个富文本对象的限制按 UTF-16 计数，超过 Config.MaxTextLength
// 的文本在序列化时会被拆分。
func CountText(text string) int {
	return UTF16Len(text)
}

// CountBlocks 统计块序列中全部可见文本的 UTF-16 长度
func CountBlocks(blocks []Block) int {
	total := 0
	for _, b := range blocks {
		switch v := b.(type) {
		case Code:
			total += CountText(v.Content)
		case Equation:
			total += CountText(v.Expression)
		default:
			if segments, ok := RichText(b); ok {
				total += CountText(PlainTextOf(segments))
			}
		}
	}
	return total
}
