package emit

import (
	"context"

	"github.com/Tomyyy-1337/language-atlas/pkg/catalog"
)

// Emitter converts a resolved catalog into a byte representation (Go source,
// HTML, etc.).
type Emitter interface {
	Name() string
	ContentType() string
	Emit(ctx context.Context, cat *catalog.Catalog, options Options) ([]byte, error)
}
