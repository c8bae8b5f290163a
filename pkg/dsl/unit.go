package dsl

import "fmt"

// Pos locates a token within a document. Line and Column are 1-based; Offset
// is the byte offset into the text.
type Pos struct {
	Offset int
	Line   int
	Column int
}

func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Unit is one parsed language table: the target type identifier plus its
// fields in authored order.
type Unit struct {
	TypeName string
	TypePos  Pos
	Fields   []FieldDef
}

// Field returns the field definition with the given name.
func (u *Unit) Field(name string) (FieldDef, bool) {
	for _, f := range u.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return FieldDef{}, false
}

// FieldDef is a single field declaration: a name, an optional parameter list,
// and the per-language template entries in authored order. A nil Params slice
// means the field declared no parameter list at all, which is distinct from
// an empty one (the grammar rejects empty lists).
type FieldDef struct {
	Name    string
	Pos     Pos
	Params  []ParamDef
	Entries []Entry
}

// HasParams reports whether the field declared a parameter list.
func (f FieldDef) HasParams() bool {
	return f.Params != nil
}

// Entry returns the entry authored for the given language tag.
func (f FieldDef) Entry(tag string) (Entry, bool) {
	for _, e := range f.Entries {
		if e.Variant == tag {
			return e, true
		}
	}
	return Entry{}, false
}

// ParamDef declares one accessor parameter. Type holds the verbatim type text
// from the table; when empty the parameter is untyped and the generated
// accessor accepts any value.
type ParamDef struct {
	Name string
	Type string
	Pos  Pos
}

// Typed reports whether the parameter carries an explicit type hint.
func (p ParamDef) Typed() bool {
	return p.Type != ""
}

// Entry maps one language tag to its decoded template string.
type Entry struct {
	Variant  string
	Template string
	Pos      Pos
	ValuePos Pos
}
