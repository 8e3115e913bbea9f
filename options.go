package notionify

// ConvertOptions holds options for markdown conversion.
type ConvertOptions struct {
	Config *Config
}

// Option is a function that configures ConvertOptions.
type Option func(*ConvertOptions)

// WithBlankLines sets how blank lines are handled.
func WithBlankLines(policy BlankLinePolicy) Option {
	return func(opts *ConvertOptions) {
		opts.Config.BlankLines = policy
	}
}

// WithLatexDelimiters sets whether \(...\) and \[...\] are rewritten to $...$ and $$...$$.
func WithLatexDelimiters(enable bool) Option {
	return func(opts *ConvertOptions) {
		opts.Config.LatexDelimiters = enable
	}
}

// WithDefaultLanguage sets the language used for fences without a tag.
func WithDefaultLanguage(language string) Option {
	return func(opts *ConvertOptions) {
		opts.Config.DefaultLanguage = language
	}
}

// WithConfig sets a custom Config. Options applied after it modify a copy.
func WithConfig(config *Config) Option {
	return func(opts *ConvertOptions) {
		if config != nil {
			c := *config
			opts.Config = &c
		}
	}
}

// defaultConvertOptions returns the default conversion options.
func defaultConvertOptions() *ConvertOptions {
	c := *DefaultConfig()
	return &ConvertOptions{
		Config: &c,
	}
}

// applyOptions applies the given options to the default options.
func applyOptions(opts ...Option) *ConvertOptions {
	options := defaultConvertOptions()
	for _, opt := range opts {
		opt(options)
	}
	return options
}
