package notionify

import (
	"sync"

	"github.com/riverfjs/notionify-go/internal/types"
)

// 导出类型别名
type Config = types.Config
type BlankLinePolicy = types.BlankLinePolicy

const (
	BlankLineParagraph = types.BlankLineParagraph
	BlankLineSkip      = types.BlankLineSkip
)

var (
	defaultConfig     *Config
	defaultConfigOnce sync.Once
)

// DefaultConfig returns the default conversion configuration (singleton).
// Callers must not modify the returned value; use options instead.
func DefaultConfig() *Config {
	defaultConfigOnce.Do(func() {
		defaultConfig = types.DefaultConfig()
	})
	return defaultConfig
}
