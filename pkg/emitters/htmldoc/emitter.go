// Package htmldoc emits a reviewable HTML catalog sheet: one section per
// field with its accessor signature, parameter table, and the variants ×
// template matrix showing which slots were authored and which inherit the
// default language.
package htmldoc

import (
	"context"
	"fmt"
	"io/fs"
	"os"

	"github.com/Tomyyy-1337/language-atlas/pkg/catalog"
	"github.com/Tomyyy-1337/language-atlas/pkg/emit"
	emittemplate "github.com/Tomyyy-1337/language-atlas/pkg/emit/template"
	"github.com/Tomyyy-1337/language-atlas/pkg/emit/template/gotemplate"
)

// Name is the registry name of this emitter.
const Name = "htmldoc"

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer emittemplate.TemplateRenderer
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer emittemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// Emitter renders catalogs into a standalone HTML document.
type Emitter struct {
	templates emittemplate.TemplateRenderer
}

// Ensure the emitter satisfies the registry contract.
var _ emit.Emitter = (*Emitter)(nil)

// New constructs the htmldoc emitter applying any provided options.
func New(options ...Option) (*Emitter, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("htmldoc emitter: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Emitter{templates: renderer}, nil
}

func (e *Emitter) Name() string {
	return Name
}

func (e *Emitter) ContentType() string {
	return "text/html; charset=utf-8"
}

// Emit renders the catalog sheet. Output is deterministic for identical
// inputs; theme configuration only adds a second style block.
func (e *Emitter) Emit(ctx context.Context, cat *catalog.Catalog, options emit.Options) ([]byte, error) {
	if e.templates == nil {
		return nil, fmt.Errorf("htmldoc emitter: template renderer is nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, fmt.Errorf("htmldoc emitter: catalog is nil")
	}

	result, err := e.templates.RenderTemplate("templates/catalog.tmpl", map[string]any{
		"page": buildPageView(cat, options),
	})
	if err != nil {
		return nil, fmt.Errorf("htmldoc emitter: render template: %w", err)
	}
	return []byte(result), nil
}
