package atlas

import (
	"context"

	theme "github.com/goliatone/go-theme"

	"github.com/Tomyyy-1337/language-atlas/pkg/catalog"
	"github.com/Tomyyy-1337/language-atlas/pkg/dsl"
	"github.com/Tomyyy-1337/language-atlas/pkg/generator"
)

// Request describes one generation unit; alias exported via the root package
// for convenience.
type Request = generator.Request

// Catalog is the resolved table model returned by Check.
type Catalog = catalog.Catalog

// NewGenerator exposes the generator constructor from the top-level module.
func NewGenerator(options ...generator.Option) *generator.Generator {
	return generator.New(options...)
}

// Generate loads the table, scans the target package for language constants,
// and emits accessor source with the default emitter. It is the simplest
// entry point for callers that just want generated bytes.
func Generate(ctx context.Context, source dsl.Source, packageDir string, options ...generator.Option) ([]byte, error) {
	gen := generator.New(options...)
	return gen.Generate(ctx, generator.Request{
		Source:     source,
		PackageDir: packageDir,
	})
}

// GenerateFromDocument emits using a pre-loaded table document, bypassing the
// loader stage while still delegating to the generator.
func GenerateFromDocument(ctx context.Context, doc dsl.Document, packageDir string, options ...generator.Option) ([]byte, error) {
	gen := generator.New(options...)
	return gen.Generate(ctx, generator.Request{
		Document:   &doc,
		PackageDir: packageDir,
	})
}

// Check runs every stage short of emission and returns the resolved catalog.
// It backs editor integrations and the -check CLI mode.
func Check(ctx context.Context, source dsl.Source, packageDir string, options ...generator.Option) (*catalog.Catalog, error) {
	gen := generator.New(options...)
	return gen.Check(ctx, generator.Request{
		Source:     source,
		PackageDir: packageDir,
	})
}

// WithThemeSelector passes a go-theme selector through to the generator so
// theme/variant choices can be resolved ahead of HTML emission.
func WithThemeSelector(selector theme.ThemeSelector) generator.Option {
	return generator.WithThemeSelector(selector)
}

// WithThemeProvider constructs a go-theme selector from a ThemeProvider and
// registers it with the generator so the HTML emitter receives resolved
// tokens and assets.
func WithThemeProvider(provider theme.ThemeProvider, defaultTheme, defaultVariant string) generator.Option {
	return generator.WithThemeProvider(provider, defaultTheme, defaultVariant)
}
