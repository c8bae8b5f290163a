// Package catalog implements the resolver that turns a parsed unit into the
// resolved catalog: every language slot filled from the default language,
// every template parsed, every semantic rule enforced.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	pkgcatalog "github.com/Tomyyy-1337/language-atlas/pkg/catalog"
	"github.com/Tomyyy-1337/language-atlas/pkg/dsl"
)

// Resolver implements pkgcatalog.Resolver. Construction helpers live in the
// top-level atlas package.
type Resolver struct {
	opts pkgcatalog.ResolverOptions
}

// Ensure the implementation satisfies the public interface.
var _ pkgcatalog.Resolver = (*Resolver)(nil)

// New constructs a Resolver from pre-resolved options.
func New(options pkgcatalog.ResolverOptions) *Resolver {
	if options.PlaceholderText == "" {
		options.PlaceholderText = pkgcatalog.DefaultPlaceholderText
	}
	return &Resolver{opts: options}
}

// Resolve builds the catalog for one unit against the given language set.
func (r *Resolver) Resolve(ctx context.Context, unit *dsl.Unit, variants pkgcatalog.VariantSet) (*pkgcatalog.Catalog, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if unit == nil {
		return nil, errors.New("catalog: unit is nil")
	}
	if variants.Len() == 0 {
		return nil, errors.New("catalog: variant set is empty")
	}
	if unit.TypeName != variants.TypeName() {
		return nil, fmt.Errorf("catalog: table targets type %s but the language set describes %s", unit.TypeName, variants.TypeName())
	}

	cat := &pkgcatalog.Catalog{
		Type:     unit.TypeName,
		Variants: variants,
		Fields:   make([]pkgcatalog.Field, 0, len(unit.Fields)),
	}

	methodOwner := make(map[string]string, len(unit.Fields))
	for _, def := range unit.Fields {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		field, err := r.resolveField(def, variants)
		if err != nil {
			return nil, err
		}
		if err := analyzeField(&field, def, variants); err != nil {
			return nil, err
		}

		if owner, dup := methodOwner[field.MethodName]; dup {
			return nil, pkgcatalog.NewSemanticError(def.Name, "", "accessor name %s collides with field %q", field.MethodName, owner)
		}
		methodOwner[field.MethodName] = def.Name

		cat.Fields = append(cat.Fields, field)
	}

	return cat, nil
}

// resolveField fills every language slot: authored entries stay, everything
// else inherits the default language template. Empty bodies become
// placeholder fields.
func (r *Resolver) resolveField(def dsl.FieldDef, variants pkgcatalog.VariantSet) (pkgcatalog.Field, error) {
	n := variants.Len()
	field := pkgcatalog.Field{
		Name:      def.Name,
		Templates: make([]string, n),
		Explicit:  make([]bool, n),
	}

	if len(def.Entries) == 0 {
		field.Placeholder = true
		for i := range field.Templates {
			field.Templates[i] = r.opts.PlaceholderText
		}
		return field, nil
	}

	for _, entry := range def.Entries {
		idx, ok := variants.Index(entry.Variant)
		if !ok {
			return pkgcatalog.Field{}, pkgcatalog.NewSemanticError(def.Name, entry.Variant,
				"unknown language (known: %s)", strings.Join(variants.Names(), ", "))
		}
		field.Templates[idx] = entry.Template
		field.Explicit[idx] = true
	}

	if !field.Explicit[0] {
		return pkgcatalog.Field{}, pkgcatalog.NewSemanticError(def.Name, "",
			"missing entry for default language %q; unfilled languages fall back to it", variants.Default())
	}
	for i := range field.Templates {
		if !field.Explicit[i] {
			field.Templates[i] = field.Templates[0]
		}
	}
	return field, nil
}
