package catalog

import (
	"fmt"
	goparser "go/parser"
	gotoken "go/token"
	"strings"
	"unicode"
	"unicode/utf8"

	pkgcatalog "github.com/Tomyyy-1337/language-atlas/pkg/catalog"
	"github.com/Tomyyy-1337/language-atlas/pkg/dsl"
	"github.com/Tomyyy-1337/language-atlas/pkg/template"
)

// analyzeField derives the accessor name, validates the parameter list,
// parses every template and wires up the referenced-parameter bookkeeping.
func analyzeField(field *pkgcatalog.Field, def dsl.FieldDef, variants pkgcatalog.VariantSet) error {
	name, err := methodName(def.Name)
	if err != nil {
		return pkgcatalog.NewSemanticError(def.Name, "", "%s", err)
	}
	field.MethodName = name

	if def.HasParams() {
		field.Params = make([]pkgcatalog.Param, len(def.Params))
		for i, p := range def.Params {
			// The lexer guarantees the identifier charset; this catches
			// Go keywords used as parameter names.
			if !gotoken.IsIdentifier(p.Name) {
				return pkgcatalog.NewSemanticError(def.Name, "", "parameter name %q is reserved", p.Name)
			}
			if p.Type != "" {
				if _, err := goparser.ParseExpr(p.Type); err != nil {
					return pkgcatalog.NewSemanticError(def.Name, "", "invalid type %q for parameter %q", p.Type, p.Name)
				}
			}
			field.Params[i] = pkgcatalog.Param{Name: p.Name, Type: p.Type}
		}
	}

	if field.Placeholder {
		field.Segments = make([][]template.Segment, len(field.Templates))
		for i, text := range field.Templates {
			field.Segments[i] = []template.Segment{{Kind: template.SegmentLiteral, Text: text}}
		}
		field.Uniform = true
		return nil
	}

	field.Segments = make([][]template.Segment, len(field.Templates))
	for i, text := range field.Templates {
		segs, err := template.Parse(text)
		if err != nil {
			return pkgcatalog.NewSemanticError(def.Name, variants.Names()[i], "%s", err)
		}
		field.Segments[i] = segs
	}

	if def.HasParams() {
		allowed := make(map[string]bool, len(field.Params))
		for _, p := range field.Params {
			allowed[p.Name] = true
		}
		for i, segs := range field.Segments {
			if !field.Explicit[i] {
				continue
			}
			for _, ref := range template.Placeholders(segs) {
				if !allowed[ref] {
					return pkgcatalog.NewSemanticError(def.Name, variants.Names()[i],
						"unknown placeholder {%s}; declared parameters: %s", ref, paramNames(field.Params))
				}
			}
		}
	} else {
		inferred := template.Placeholders(field.Segments[0])
		if len(inferred) > 0 {
			field.Params = make([]pkgcatalog.Param, len(inferred))
			for i, ref := range inferred {
				field.Params[i] = pkgcatalog.Param{Name: ref}
			}
			field.Inferred = true
		}
		allowed := make(map[string]bool, len(inferred))
		for _, ref := range inferred {
			allowed[ref] = true
		}
		for i := 1; i < len(field.Segments); i++ {
			if !field.Explicit[i] {
				continue
			}
			for _, ref := range template.Placeholders(field.Segments[i]) {
				if !allowed[ref] {
					return pkgcatalog.NewSemanticError(def.Name, variants.Names()[i],
						"references {%s} but the default language template does not; declare an explicit parameter list", ref)
				}
			}
		}
	}

	referenced := make(map[string]bool)
	for _, segs := range field.Segments {
		for _, ref := range template.Placeholders(segs) {
			referenced[ref] = true
		}
	}
	for _, p := range field.Params {
		if referenced[p.Name] {
			field.Refs = append(field.Refs, p.Name)
		}
	}

	field.Uniform = true
	for i := 1; i < len(field.Templates); i++ {
		if field.Templates[i] != field.Templates[0] {
			field.Uniform = false
			break
		}
	}
	return nil
}

// methodName converts a lower_snake field name into the exported accessor
// name, e.g. short_date -> ShortDate.
func methodName(field string) (string, error) {
	var sb strings.Builder
	for _, part := range strings.Split(field, "_") {
		if part == "" {
			continue
		}
		r, size := utf8.DecodeRuneInString(part)
		sb.WriteRune(unicode.ToUpper(r))
		sb.WriteString(part[size:])
	}
	name := sb.String()
	if name == "" || !gotoken.IsIdentifier(name) || !gotoken.IsExported(name) {
		return "", fmt.Errorf("cannot derive an exported accessor name from %q", field)
	}
	return name, nil
}

func paramNames(params []pkgcatalog.Param) string {
	names := make([]string, len(params))
	for i, p := range params {
		names[i] = p.Name
	}
	return strings.Join(names, ", ")
}
