package htmldoc

import (
	"sort"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/Tomyyy-1337/language-atlas/pkg/catalog"
	"github.com/Tomyyy-1337/language-atlas/pkg/emit"
)

// pageView is the template context for the catalog sheet. The template
// engine round-trips data through JSON, so every field carries a tag.
type pageView struct {
	Title     string      `json:"title"`
	TypeName  string      `json:"type_name"`
	Source    string      `json:"source"`
	Note      string      `json:"note"`
	ThemeName string      `json:"theme_name"`
	ThemeCSS  string      `json:"theme_css"`
	Footer    string      `json:"footer"`
	Fields    []fieldView `json:"fields"`
}

type fieldView struct {
	Name       string      `json:"name"`
	Signature  string      `json:"signature"`
	Deprecated bool        `json:"deprecated"`
	Inferred   bool        `json:"inferred"`
	Params     []paramView `json:"params"`
	Rows       []rowView   `json:"rows"`
}

type paramView struct {
	Name       string `json:"name"`
	Type       string `json:"type"`
	Referenced bool   `json:"referenced"`
}

type rowView struct {
	Variant  string `json:"variant"`
	Template string `json:"template"`
	Authored bool   `json:"authored"`
	Default  bool   `json:"default"`
}

func buildPageView(cat *catalog.Catalog, options emit.Options) pageView {
	page := pageView{
		Title:    cat.Type + " catalog",
		TypeName: cat.Type,
		Source:   cat.Source,
		Note:     options.HeaderNote,
		Footer:   footerLine(cat.Variants.Len()),
		Fields:   make([]fieldView, 0, len(cat.Fields)),
	}
	if options.Theme != nil {
		page.ThemeName = options.Theme.Theme
		page.ThemeCSS = cssVarsStyle(options.Theme.CSSVars)
	}

	names := cat.Variants.Names()
	for _, field := range cat.Fields {
		page.Fields = append(page.Fields, buildFieldView(cat.Type, names, field))
	}
	return page
}

func buildFieldView(typeName string, variantNames []string, field catalog.Field) fieldView {
	view := fieldView{
		Name:       field.Name,
		Signature:  signature(typeName, field),
		Deprecated: field.Placeholder,
		Inferred:   field.Inferred,
	}

	refs := make(map[string]bool, len(field.Refs))
	for _, name := range field.Refs {
		refs[name] = true
	}
	for _, p := range field.Params {
		view.Params = append(view.Params, paramView{
			Name:       p.Name,
			Type:       p.GoType(),
			Referenced: refs[p.Name],
		})
	}

	for i, name := range variantNames {
		view.Rows = append(view.Rows, rowView{
			Variant:  name,
			Template: sanitizeTemplateText(field.Templates[i]),
			Authored: field.Explicit[i],
			Default:  i == 0,
		})
	}
	return view
}

func signature(typeName string, field catalog.Field) string {
	r, _ := utf8.DecodeRuneInString(typeName)
	recv := string(unicode.ToLower(r))
	for {
		collides := false
		for _, p := range field.Params {
			if p.Name == recv {
				collides = true
				break
			}
		}
		if !collides {
			break
		}
		recv += recv
	}

	params := make([]string, len(field.Params))
	for i, p := range field.Params {
		params[i] = p.Name + " " + p.GoType()
	}
	return "func (" + recv + " " + typeName + ") " + field.MethodName + "(" + strings.Join(params, ", ") + ") string"
}

func footerLine(languages int) string {
	if languages == 1 {
		return "1 language"
	}
	return strconv.Itoa(languages) + " languages"
}

// cssVarsStyle renders resolved theme tokens as a :root custom-property
// block. Keys are sorted so the output stays stable.
func cssVarsStyle(vars map[string]string) string {
	if len(vars) == 0 {
		return ""
	}
	keys := make([]string, 0, len(vars))
	for key := range vars {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(":root {\n")
	for _, key := range keys {
		b.WriteString(key)
		b.WriteString(": ")
		b.WriteString(vars[key])
		b.WriteString(";\n")
	}
	b.WriteString("}")
	return b.String()
}
