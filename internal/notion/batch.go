package notion

import "github.com/riverfjs/notionify-go/internal/types"

// Batches 将 children 按 size 分组，保持顺序。size 非法或超过 100 时按 100 分组。
func Batches(children []Block, size int) [][]Block {
	if size <= 0 || size > types.DefaultBatchSize {
		size = types.DefaultBatchSize
	}
	batches := make([][]Block, 0, (len(children)+size-1)/size)
	for start := 0; start < len(children); start += size {
		end := min(start+size, len(children))
		batches = append(batches, children[start:end])
	}
	return batches
}
