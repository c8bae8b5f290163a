package dsl

import "fmt"

// ParseError describes a structural failure in a language table. It carries
// the position of the offending token so tooling can point at the source.
type ParseError struct {
	// Source names the document the error occurred in; empty for inline text
	// without a name.
	Source string
	Pos    Pos
	Msg    string
}

func (e *ParseError) Error() string {
	if e.Source == "" {
		return fmt.Sprintf("%s: %s", e.Pos, e.Msg)
	}
	return fmt.Sprintf("%s:%s: %s", e.Source, e.Pos, e.Msg)
}

// NewParseError constructs a positioned structural error. Implementations in
// internal/dsl use this to keep diagnostics uniform.
func NewParseError(source string, pos Pos, format string, args ...any) *ParseError {
	return &ParseError{
		Source: source,
		Pos:    pos,
		Msg:    fmt.Sprintf(format, args...),
	}
}
