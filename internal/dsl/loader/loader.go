// Package loader implements dsl.Loader by delegating to file, fs.FS, or
// inline-literal strategies.
package loader

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/Tomyyy-1337/language-atlas/pkg/dsl"
)

// Loader implements dsl.Loader. Construction helpers live in the top-level
// atlas package.
type Loader struct {
	fs       fs.FS
	maxBytes int64
}

// Ensure the implementation satisfies the public interface.
var _ dsl.Loader = (*Loader)(nil)

// New constructs a Loader from pre-resolved options.
func New(options dsl.LoaderOptions) *Loader {
	return &Loader{
		fs:       options.FileSystem,
		maxBytes: options.MaxBytes,
	}
}

// Load fetches table text from the provided source and wraps it in a Document.
func (l *Loader) Load(ctx context.Context, src dsl.Source) (dsl.Document, error) {
	if src == nil {
		return dsl.Document{}, errors.New("loader: source is nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	var (
		text string
		err  error
	)

	switch src.Kind() {
	case dsl.SourceKindFile:
		text, err = loadFile(ctx, src.Location())
	case dsl.SourceKindFS:
		text, err = loadFromFS(ctx, l.fs, src.Location())
	case dsl.SourceKindLiteral:
		inline, ok := dsl.LiteralText(src)
		if !ok {
			err = fmt.Errorf("loader: literal source %q carries no text", src.Location())
		} else {
			text = inline
		}
	default:
		err = fmt.Errorf("loader: unsupported source kind %q", src.Kind())
	}
	if err != nil {
		return dsl.Document{}, err
	}

	if l.maxBytes > 0 && int64(len(text)) > l.maxBytes {
		return dsl.Document{}, fmt.Errorf("loader: %s exceeds %d bytes", src.Location(), l.maxBytes)
	}

	return dsl.NewDocument(src, text)
}
