package gosource

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/Tomyyy-1337/language-atlas/pkg/catalog"
	"github.com/Tomyyy-1337/language-atlas/pkg/emit"
	"github.com/Tomyyy-1337/language-atlas/pkg/template"
)

// fileView is the template context for one generated file. The template
// engine round-trips data through JSON, so every field carries a tag.
type fileView struct {
	Header   []string     `json:"header"`
	Package  string       `json:"package"`
	NeedsFmt bool         `json:"needs_fmt"`
	Methods  []methodView `json:"methods"`
}

type methodView struct {
	Doc      []string  `json:"doc"`
	Receiver string    `json:"receiver"`
	Type     string    `json:"type"`
	Name     string    `json:"name"`
	Params   string    `json:"params"`
	Single   string    `json:"single"`
	Arms     []armView `json:"arms"`
	Default  string    `json:"default"`
}

type armView struct {
	Variant string `json:"variant"`
	Expr    string `json:"expr"`
}

func buildFileView(cat *catalog.Catalog, options emit.Options) fileView {
	view := fileView{
		Package:  cat.Package,
		NeedsFmt: cat.NeedsFormat(),
		Methods:  make([]methodView, 0, len(cat.Fields)),
	}

	view.Header = append(view.Header, "// Code generated by atlas-gen. DO NOT EDIT.")
	if cat.Source != "" {
		view.Header = append(view.Header, "// Source: "+cat.Source)
	}
	if options.HeaderNote != "" {
		view.Header = append(view.Header, "// "+options.HeaderNote)
	}

	names := cat.Variants.Names()
	for _, field := range cat.Fields {
		view.Methods = append(view.Methods, buildMethodView(cat.Type, names, field))
	}
	return view
}

func buildMethodView(typeName string, variantNames []string, field catalog.Field) methodView {
	m := methodView{
		Receiver: receiverName(typeName, field.Params),
		Type:     typeName,
		Name:     field.MethodName,
		Params:   paramList(field.Params),
		Doc:      docLines(field),
	}

	switch {
	case field.Placeholder:
		m.Single = strconv.Quote(field.Templates[0])
	case field.Uniform:
		m.Single = armExpr(field, 0)
	default:
		for i := 1; i < len(field.Templates); i++ {
			if !field.Explicit[i] {
				continue
			}
			m.Arms = append(m.Arms, armView{
				Variant: variantNames[i],
				Expr:    armExpr(field, i),
			})
		}
		m.Default = armExpr(field, 0)
	}
	return m
}

// receiverName derives the method receiver from the type name, doubling the
// letter as long as it collides with a parameter.
func receiverName(typeName string, params []catalog.Param) string {
	r, _ := utf8.DecodeRuneInString(typeName)
	name := string(unicode.ToLower(r))
	for {
		collides := false
		for _, p := range params {
			if p.Name == name {
				collides = true
				break
			}
		}
		if !collides {
			return name
		}
		name += name
	}
}

func paramList(params []catalog.Param) string {
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = p.Name + " " + p.GoType()
	}
	return strings.Join(parts, ", ")
}

// armExpr renders the return expression for one language slot: a plain
// string literal when the slot references no parameters, otherwise a
// fmt.Sprintf call with explicit argument indexes so every arm can share the
// field's referenced-parameter tuple.
func armExpr(field catalog.Field, slot int) string {
	segs := field.Segments[slot]
	if lit, ok := template.Literal(segs); ok {
		return strconv.Quote(lit)
	}
	format := template.FormatSpec(segs, field.Refs)
	return fmt.Sprintf("fmt.Sprintf(%s, %s)", strconv.Quote(format), strings.Join(field.Refs, ", "))
}

func docLines(field catalog.Field) []string {
	lines := []string{
		fmt.Sprintf("// %s returns the localized text for the %q field.", field.MethodName, field.Name),
	}
	if field.Placeholder {
		lines = append(lines,
			"//",
			fmt.Sprintf("// Deprecated: no language string is provided for this field; it returns the %q placeholder.", field.Templates[0]),
		)
	}
	return lines
}
