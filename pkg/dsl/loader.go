package dsl

import (
	"context"
	"io/fs"
)

// Loader fetches table text from a Source and wraps it in a Document.
// Implementations live under internal/dsl but satisfy this contract.
type Loader interface {
	Load(ctx context.Context, src Source) (Document, error)
}

// LoaderOptions configures how a Loader resolves sources.
type LoaderOptions struct {
	// FileSystem backs sources created with FSSource. Nil disables fs.FS
	// loading.
	FileSystem fs.FS

	// MaxBytes rejects documents larger than this many bytes. Zero disables
	// the cap.
	MaxBytes int64
}

// LoaderOption mutates LoaderOptions prior to construction.
type LoaderOption func(*LoaderOptions)

// WithFileSystem injects an fs.FS implementation for FSSource lookups.
func WithFileSystem(files fs.FS) LoaderOption {
	return func(opts *LoaderOptions) {
		opts.FileSystem = files
	}
}

// WithMaxBytes caps the size of loaded documents; values <= 0 disable the cap.
func WithMaxBytes(n int64) LoaderOption {
	return func(opts *LoaderOptions) {
		if n < 0 {
			n = 0
		}
		opts.MaxBytes = n
	}
}

// NewLoaderOptions applies a set of LoaderOption values and returns the
// resulting configuration.
func NewLoaderOptions(options ...LoaderOption) LoaderOptions {
	cfg := LoaderOptions{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	return cfg
}

// Construction helpers live in the top-level atlas package to prevent import cycles.
