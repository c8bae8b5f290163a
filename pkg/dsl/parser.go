package dsl

import "context"

// Parser turns a document into the typed syntax model. Structural problems
// (malformed headers, unbalanced braces, duplicate names) surface as
// *ParseError values.
type Parser interface {
	Parse(ctx context.Context, doc Document) (*Unit, error)
}

// ParserOptions exposes parser toggles.
type ParserOptions struct {
	// MaxTemplateLen caps the decoded length of a single template string.
	// Zero disables the cap.
	MaxTemplateLen int
}

// ParserOption mutates ParserOptions during construction.
type ParserOption func(*ParserOptions)

// WithMaxTemplateLen caps template string length; values <= 0 disable the cap.
func WithMaxTemplateLen(n int) ParserOption {
	return func(opts *ParserOptions) {
		if n < 0 {
			n = 0
		}
		opts.MaxTemplateLen = n
	}
}

// NewParserOptions applies ParserOption functions and returns the resulting
// configuration. Implementations under internal/dsl call this helper to stay
// consistent.
func NewParserOptions(options ...ParserOption) ParserOptions {
	cfg := ParserOptions{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	return cfg
}

// Construction helpers live in the top-level atlas package to avoid import cycles.
