package catalog

import (
	"context"

	"github.com/Tomyyy-1337/language-atlas/pkg/dsl"
)

// DefaultPlaceholderText fills every language slot of a field authored with
// an empty body.
const DefaultPlaceholderText = "ToDo!"

// Resolver turns a parsed unit into a catalog, enforcing the semantic rules
// along the way. Implementations live under internal/catalog but satisfy
// this contract.
type Resolver interface {
	Resolve(ctx context.Context, unit *dsl.Unit, variants VariantSet) (*Catalog, error)
}

// ResolverOptions exposes resolution toggles.
type ResolverOptions struct {
	// PlaceholderText overrides the text empty-body fields resolve to.
	PlaceholderText string
}

// ResolverOption mutates ResolverOptions during construction.
type ResolverOption func(*ResolverOptions)

// WithPlaceholderText overrides the empty-body placeholder text. Empty input
// keeps the default.
func WithPlaceholderText(text string) ResolverOption {
	return func(opts *ResolverOptions) {
		if text == "" {
			return
		}
		opts.PlaceholderText = text
	}
}

// NewResolverOptions applies ResolverOption functions and returns the
// resulting configuration.
func NewResolverOptions(options ...ResolverOption) ResolverOptions {
	cfg := ResolverOptions{
		PlaceholderText: DefaultPlaceholderText,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	return cfg
}

// Construction helpers live in the top-level atlas package to avoid import cycles.
