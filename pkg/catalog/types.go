package catalog

import (
	"github.com/Tomyyy-1337/language-atlas/pkg/template"
)

// Param is one accessor parameter after resolution. Type is the verbatim Go
// type text from the table; empty means the parameter is untyped.
type Param struct {
	Name string
	Type string
}

// GoType returns the type used in the generated signature. Untyped parameters
// accept any value.
func (p Param) GoType() string {
	if p.Type == "" {
		return "any"
	}
	return p.Type
}

// Field is a fully resolved table field: every language slot filled, every
// template parsed, and the accessor name already derived.
type Field struct {
	// Name is the field identifier as authored in the table.
	Name string

	// MethodName is the exported accessor name derived from Name.
	MethodName string

	// Params lists the accessor parameters in declaration order. For fields
	// without a parameter list the entries are inferred from the default
	// language template and Inferred is set.
	Params   []Param
	Inferred bool

	// Placeholder marks fields authored with an empty body. Their accessors
	// return the placeholder text and are emitted deprecated.
	Placeholder bool

	// Templates holds one rendered-form template per language, indexed by
	// variant position. Explicit records which slots were authored rather
	// than filled from the default language.
	Templates []string
	Explicit  []bool

	// Segments holds the parsed form of each template, aligned with
	// Templates.
	Segments [][]template.Segment

	// Refs lists the parameters referenced by at least one language
	// template, in declaration order. It is the argument tuple formatting
	// accessors pass to the formatter.
	Refs []string

	// Uniform is set when every language resolves to the same template, in
	// which case dispatch collapses to a single return.
	Uniform bool
}

// NeedsFormat reports whether the field's accessor formats parameters into
// its templates.
func (f Field) NeedsFormat() bool {
	return len(f.Refs) > 0
}

// RefIndex returns the 1-based position of a parameter in the formatting
// tuple, suitable for indexed formatting verbs.
func (f Field) RefIndex(name string) (int, bool) {
	for i, ref := range f.Refs {
		if ref == name {
			return i + 1, true
		}
	}
	return 0, false
}

// Catalog is the resolved model for one language table.
type Catalog struct {
	// Type is the enum type accessors attach to.
	Type string

	// Package names the package clause of generated source. The generator
	// fills it from the scanned target package or an explicit override.
	Package string

	// Source names the table the catalog was resolved from, for generated
	// headers and diagnostics.
	Source string

	Variants VariantSet
	Fields   []Field
}

// Field returns the resolved field with the given table name.
func (c *Catalog) Field(name string) (Field, bool) {
	for _, f := range c.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// NeedsFormat reports whether any field formats parameters, which decides
// the fmt import of generated source.
func (c *Catalog) NeedsFormat() bool {
	for _, f := range c.Fields {
		if f.NeedsFormat() {
			return true
		}
	}
	return false
}
