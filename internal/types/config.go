package types

// BlankLinePolicy 决定空行如何处理
type BlankLinePolicy int

const (
	// BlankLineParagraph emits an empty Paragraph for every blank line.
	BlankLineParagraph BlankLinePolicy = iota
	// BlankLineSkip drops blank lines.
	BlankLineSkip
)

// String returns the flag spelling of the policy.
func (p BlankLinePolicy) String() string {
	switch p {
	case BlankLineParagraph:
		return "paragraph"
	case BlankLineSkip:
		return "skip"
	default:
		return "unknown"
	}
}

const (
	// DefaultLanguage is used for fences without a language tag.
	DefaultLanguage = "plain text"
	// DefaultMaxTextLength is Notion's limit for a single rich text content, in UTF-16 units.
	DefaultMaxTextLength = 2000
	// DefaultBatchSize is the maximum number of children per append request.
	DefaultBatchSize = 100
)

// Config 转换配置
type Config struct {
	BlankLines      BlankLinePolicy
	LatexDelimiters bool // 将 \(...\) 与 \[...\] 改写为 $...$ 与 $$...$$
	DefaultLanguage string
	MaxTextLength   int
	BatchSize       int
}

// DefaultConfig 返回默认配置
func DefaultConfig() *Config {
	return &Config{
		BlankLines:      BlankLineParagraph,
		LatexDelimiters: true,
		DefaultLanguage: DefaultLanguage,
		MaxTextLength:   DefaultMaxTextLength,
		BatchSize:       DefaultBatchSize,
	}
}

// Language returns the configured default fence language.
func (c *Config) Language() string {
	if c == nil || c.DefaultLanguage == "" {
		return DefaultLanguage
	}
	return c.DefaultLanguage
}

// TextLimit returns the configured rich text length limit.
func (c *Config) TextLimit() int {
	if c == nil || c.MaxTextLength <= 0 {
		return DefaultMaxTextLength
	}
	return c.MaxTextLength
}

// Batch returns the configured append batch size.
func (c *Config) Batch() int {
	if c == nil || c.BatchSize <= 0 || c.BatchSize > DefaultBatchSize {
		return DefaultBatchSize
	}
	return c.BatchSize
}
