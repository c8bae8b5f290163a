package generator

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	internalcatalog "github.com/Tomyyy-1337/language-atlas/internal/catalog"
	internalloader "github.com/Tomyyy-1337/language-atlas/internal/dsl/loader"
	internalparser "github.com/Tomyyy-1337/language-atlas/internal/dsl/parser"
	"github.com/Tomyyy-1337/language-atlas/internal/enumscan"
	pkgcatalog "github.com/Tomyyy-1337/language-atlas/pkg/catalog"
	"github.com/Tomyyy-1337/language-atlas/pkg/dsl"
	"github.com/Tomyyy-1337/language-atlas/pkg/emit"
	"github.com/Tomyyy-1337/language-atlas/pkg/emitters/gosource"
	"github.com/Tomyyy-1337/language-atlas/pkg/emitters/htmldoc"
	theme "github.com/goliatone/go-theme"
)

const defaultEmitterName = "gosource"

// Option customises the generator configuration.
type Option func(*Generator)

// WithLoader injects a custom table loader.
func WithLoader(loader dsl.Loader) Option {
	return func(g *Generator) {
		g.loader = loader
	}
}

// WithParser injects a custom table parser.
func WithParser(parser dsl.Parser) Option {
	return func(g *Generator) {
		g.parser = parser
	}
}

// WithResolver injects a custom catalog resolver.
func WithResolver(resolver pkgcatalog.Resolver) Option {
	return func(g *Generator) {
		g.resolver = resolver
	}
}

// WithEmitterRegistry injects an emitter registry.
func WithEmitterRegistry(registry *emit.Registry) Option {
	return func(g *Generator) {
		g.registry = registry
	}
}

// WithDefaultEmitter overrides the emitter used when a request omits an
// explicit EmitterName.
func WithDefaultEmitter(name string) Option {
	return func(g *Generator) {
		g.defaultEmitter = name
	}
}

// WithLogger injects a diagnostic logger.
func WithLogger(logger Logger) Option {
	return func(g *Generator) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// Generator coordinates the pipeline from table text to emitted output.
type Generator struct {
	loader         dsl.Loader
	parser         dsl.Parser
	resolver       pkgcatalog.Resolver
	registry       *emit.Registry
	defaultEmitter string
	logger         Logger

	themeSelector       theme.ThemeSelector
	themeDefaultName    string
	themeDefaultVariant string

	initialiseErr   error
	defaultsApplied bool
}

// New constructs a Generator applying any provided options. Missing
// dependencies are initialised with the built-in implementations so callers
// can start with a single constructor call.
func New(options ...Option) *Generator {
	g := &Generator{
		defaultEmitter: defaultEmitterName,
		logger:         nopLogger{},
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(g)
	}
	g.applyDefaults()
	return g
}

// Request describes the inputs for one generation unit.
type Request struct {
	// Source identifies where the table lives. Optional when Document is
	// supplied.
	Source dsl.Source

	// Document allows callers to bypass the loader when they already hold
	// the table.
	Document *dsl.Document

	// PackageDir is the directory scanned for the target enum's constants
	// and package clause.
	PackageDir string

	// Variants pins the language tags explicitly instead of scanning
	// PackageDir. Order matters: the first tag is the default language.
	Variants []string

	// PackageName overrides the package clause of generated source. When
	// empty it comes from the scanned package.
	PackageName string

	// TypeName, when set, must match the type the table header targets.
	TypeName string

	// EmitterName selects the emitter. Empty falls back to the configured
	// default.
	EmitterName string

	// ThemeName and ThemeVariant pick a theme for styled emitters. Empty
	// values fall back to the defaults configured with WithThemeProvider.
	ThemeName    string
	ThemeVariant string

	// HeaderNote is an extra header line for the emitted output.
	HeaderNote string
}

// Generate executes the full pipeline and returns the emitted bytes.
func (g *Generator) Generate(ctx context.Context, req Request) ([]byte, error) {
	cat, err := g.Check(ctx, req)
	if err != nil {
		return nil, err
	}

	emitter, err := g.emitterFor(req.EmitterName)
	if err != nil {
		return nil, err
	}
	themeConfig, err := g.themeConfig(req)
	if err != nil {
		return nil, err
	}

	g.logger.Debugf("emit %s catalog via %s", cat.Type, emitter.Name())
	output, err := emitter.Emit(ctx, cat, emit.Options{
		HeaderNote: req.HeaderNote,
		Theme:      themeConfig,
	})
	if err != nil {
		return nil, fmt.Errorf("generator: emit output: %w", err)
	}
	return output, nil
}

// Check runs everything but emission and returns the resolved catalog. It
// backs atlas-gen -check and the preview tool.
func (g *Generator) Check(ctx context.Context, req Request) (*pkgcatalog.Catalog, error) {
	if ctx == nil {
		return nil, errors.New("generator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := g.ready(); err != nil {
		return nil, err
	}

	doc, err := g.resolveDocument(ctx, req)
	if err != nil {
		return nil, err
	}

	unit, err := g.parser.Parse(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("generator: parse table: %w", err)
	}
	if req.TypeName != "" && unit.TypeName != req.TypeName {
		return nil, fmt.Errorf("generator: table %s targets type %s, request expects %s", doc.Name(), unit.TypeName, req.TypeName)
	}

	variants, packageName, err := g.variantSet(ctx, req, unit)
	if err != nil {
		return nil, err
	}

	cat, err := g.resolver.Resolve(ctx, unit, variants)
	if err != nil {
		return nil, fmt.Errorf("generator: resolve catalog: %w", err)
	}
	cat.Package = packageName
	cat.Source = filepath.Base(doc.Name())

	g.logger.Debugf("resolved %d fields for %s across %d languages", len(cat.Fields), cat.Type, cat.Variants.Len())
	return cat, nil
}

func (g *Generator) resolveDocument(ctx context.Context, req Request) (dsl.Document, error) {
	if req.Document != nil {
		return *req.Document, nil
	}
	if req.Source == nil {
		return dsl.Document{}, errors.New("generator: source or document is required")
	}
	g.logger.Debugf("load table %s", req.Source.Location())
	doc, err := g.loader.Load(ctx, req.Source)
	if err != nil {
		return dsl.Document{}, fmt.Errorf("generator: load table: %w", err)
	}
	return doc, nil
}

// variantSet builds the language universe: the explicit request list when
// given, otherwise a scan of the target package. Explicit lists still scan
// when the package clause is needed and not supplied.
func (g *Generator) variantSet(ctx context.Context, req Request, unit *dsl.Unit) (pkgcatalog.VariantSet, string, error) {
	packageName := req.PackageName

	if len(req.Variants) > 0 {
		set, err := pkgcatalog.NewVariantSet(unit.TypeName, req.Variants...)
		if err != nil {
			return pkgcatalog.VariantSet{}, "", fmt.Errorf("generator: explicit variant list: %w", err)
		}
		if packageName == "" && req.PackageDir != "" {
			result, err := enumscan.Scan(ctx, req.PackageDir, unit.TypeName)
			if err != nil {
				return pkgcatalog.VariantSet{}, "", fmt.Errorf("generator: discover package name: %w", err)
			}
			packageName = result.Package
		}
		return set, packageName, nil
	}

	if req.PackageDir == "" {
		return pkgcatalog.VariantSet{}, "", errors.New("generator: package dir or explicit variants required")
	}
	g.logger.Debugf("scan %s for %s constants", req.PackageDir, unit.TypeName)
	result, err := enumscan.Scan(ctx, req.PackageDir, unit.TypeName)
	if err != nil {
		return pkgcatalog.VariantSet{}, "", fmt.Errorf("generator: scan variants: %w", err)
	}
	if packageName == "" {
		packageName = result.Package
	}
	return result.Variants, packageName, nil
}

func (g *Generator) emitterFor(name string) (emit.Emitter, error) {
	if g.registry == nil {
		return nil, errors.New("generator: emitter registry is nil")
	}

	target := name
	if target == "" {
		target = g.defaultEmitter
	}

	if target != "" {
		emitter, err := g.registry.Get(target)
		if err == nil {
			return emitter, nil
		}
		if name != "" {
			return nil, fmt.Errorf("generator: emitter %q: %w", name, err)
		}
	}

	names := g.registry.List()
	if len(names) == 0 {
		return nil, errors.New("generator: no emitters registered")
	}
	emitter, err := g.registry.Get(names[0])
	if err != nil {
		return nil, fmt.Errorf("generator: emitter %q: %w", names[0], err)
	}
	return emitter, nil
}

func (g *Generator) ready() error {
	if !g.defaultsApplied {
		g.applyDefaults()
	}
	return g.initialiseErr
}

func (g *Generator) applyDefaults() {
	if g.defaultsApplied {
		return
	}

	if g.loader == nil {
		g.loader = internalloader.New(dsl.NewLoaderOptions())
	}
	if g.parser == nil {
		g.parser = internalparser.New(dsl.NewParserOptions())
	}
	if g.resolver == nil {
		g.resolver = internalcatalog.New(pkgcatalog.NewResolverOptions())
	}
	if g.registry == nil {
		g.registry = emit.NewRegistry()
		if emitter, err := gosource.New(); err != nil {
			g.initialiseErr = fmt.Errorf("generator: default gosource emitter: %w", err)
		} else {
			g.registry.MustRegister(emitter)
		}
		if emitter, err := htmldoc.New(); err != nil {
			g.initialiseErr = fmt.Errorf("generator: default htmldoc emitter: %w", err)
		} else {
			g.registry.MustRegister(emitter)
		}
	}
	if g.defaultEmitter == "" {
		g.defaultEmitter = defaultEmitterName
	}
	if g.logger == nil {
		g.logger = nopLogger{}
	}

	g.defaultsApplied = true
}
