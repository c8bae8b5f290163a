package catalog

import "fmt"

// SemanticError describes a table that parsed but violates a resolution
// rule: an unknown language tag, a missing default entry, a malformed
// placeholder, or an accessor name problem. Field and Variant are set when
// the error is scoped to one.
type SemanticError struct {
	Field   string
	Variant string
	Msg     string
}

func (e *SemanticError) Error() string {
	switch {
	case e.Field != "" && e.Variant != "":
		return fmt.Sprintf("field %q, language %q: %s", e.Field, e.Variant, e.Msg)
	case e.Field != "":
		return fmt.Sprintf("field %q: %s", e.Field, e.Msg)
	default:
		return e.Msg
	}
}

// NewSemanticError constructs a resolution error scoped to a field and
// optionally a language.
func NewSemanticError(field, variant, format string, args ...any) *SemanticError {
	return &SemanticError{
		Field:   field,
		Variant: variant,
		Msg:     fmt.Sprintf(format, args...),
	}
}
