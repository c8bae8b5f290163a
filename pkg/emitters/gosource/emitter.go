// Package gosource emits the accessor methods for a resolved catalog as a
// formatted Go source file.
package gosource

import (
	"context"
	"fmt"
	"go/format"
	"io/fs"
	"os"

	"github.com/Tomyyy-1337/language-atlas/pkg/catalog"
	"github.com/Tomyyy-1337/language-atlas/pkg/emit"
	emittemplate "github.com/Tomyyy-1337/language-atlas/pkg/emit/template"
	"github.com/Tomyyy-1337/language-atlas/pkg/emit/template/gotemplate"
)

// Name is the registry name of this emitter.
const Name = "gosource"

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

// Emitter renders catalogs into Go accessor methods.
type Emitter struct {
	templates emittemplate.TemplateRenderer
}

// Ensure the emitter satisfies the registry contract.
var _ emit.Emitter = (*Emitter)(nil)

// New constructs the gosource emitter applying any provided options.
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
			return nil, fmt.Errorf("gosource emitter: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Emitter{templates: renderer}, nil
}

func (e *Emitter) Name() string {
	return Name
}

func (e *Emitter) ContentType() string {
	return "text/x-go; charset=utf-8"
}

// Emit renders the accessor file and runs it through go/format before
// returning. Formatting failures fail the emit; unformatted source is never
// returned.
func (e *Emitter) Emit(ctx context.Context, cat *catalog.Catalog, options emit.Options) ([]byte, error) {
	if e.templates == nil {
		return nil, fmt.Errorf("gosource emitter: template renderer is nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, fmt.Errorf("gosource emitter: catalog is nil")
	}
	if cat.Package == "" {
		return nil, fmt.Errorf("gosource emitter: catalog has no package name")
	}

	view := buildFileView(cat, options)
	result, err := e.templates.RenderTemplate("templates/accessors.tmpl", map[string]any{
		"file": view,
	})
	if err != nil {
		return nil, fmt.Errorf("gosource emitter: render template: %w", err)
	}

	formatted, err := format.Source([]byte(result))
	if err != nil {
		return nil, fmt.Errorf("gosource emitter: format output: %w", err)
	}
	return formatted, nil
}
