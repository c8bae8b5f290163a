package dsl

import (
	"errors"
	"fmt"
)

// Source identifies where a language table originated so loaders can operate
// on files, fs.FS entries, or inline literals without leaking implementation
// details.
type Source interface {
	Kind() SourceKind
	Location() string
}

// SourceKind enumerates the loader modalities.
type SourceKind string

const (
	SourceKindFile    SourceKind = "file"
	SourceKindFS      SourceKind = "fs"
	SourceKindLiteral SourceKind = "literal"
)

// ErrEmptyDocument is returned when a document is constructed without text.
var ErrEmptyDocument = errors.New("dsl: document is empty")

// Document wraps raw language table text together with its origin. Documents
// are immutable once constructed.
type Document struct {
	source Source
	text   string
}

// NewDocument constructs a Document wrapper while validating the inputs.
func NewDocument(src Source, text string) (Document, error) {
	if src == nil {
		return Document{}, errors.New("dsl: source is required")
	}
	if text == "" {
		return Document{}, fmt.Errorf("dsl: %q: %w", src.Location(), ErrEmptyDocument)
	}
	return Document{source: src, text: text}, nil
}

// MustNewDocument panics if the document cannot be created. Useful for tests.
func MustNewDocument(src Source, text string) Document {
	doc, err := NewDocument(src, text)
	if err != nil {
		panic(err)
	}
	return doc
}

// Source returns the origin metadata for the document.
func (d Document) Source() Source {
	return d.source
}

// Text returns the raw table text.
func (d Document) Text() string {
	return d.text
}

// Name returns the string identifier for the origin.
func (d Document) Name() string {
	if d.source == nil {
		return ""
	}
	return d.source.Location()
}

// Len returns the length of the table text in bytes.
func (d Document) Len() int {
	return len(d.text)
}
