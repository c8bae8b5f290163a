package atlas

import (
	internalCatalog "github.com/Tomyyy-1337/language-atlas/internal/catalog"
	internalLoader "github.com/Tomyyy-1337/language-atlas/internal/dsl/loader"
	internalParser "github.com/Tomyyy-1337/language-atlas/internal/dsl/parser"
	"github.com/Tomyyy-1337/language-atlas/pkg/catalog"
	"github.com/Tomyyy-1337/language-atlas/pkg/dsl"
)

// NewLoader constructs a loader using the internal implementation while keeping
// the concrete type hidden from consumers.
func NewLoader(options ...dsl.LoaderOption) dsl.Loader {
	cfg := dsl.NewLoaderOptions(options...)
	return internalLoader.New(cfg)
}

// NewParser constructs a parser backed by the internal implementation.
func NewParser(options ...dsl.ParserOption) dsl.Parser {
	cfg := dsl.NewParserOptions(options...)
	return internalParser.New(cfg)
}

// NewResolver constructs a catalog resolver backed by the internal
// implementation.
func NewResolver(options ...catalog.ResolverOption) catalog.Resolver {
	cfg := catalog.NewResolverOptions(options...)
	return internalCatalog.New(cfg)
}
