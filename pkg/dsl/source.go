package dsl

import "path/filepath"

// fileSource identifies on-disk table files.
type fileSource struct {
	path string
}

func (s fileSource) Location() string {
	return s.path
}

func (s fileSource) Kind() SourceKind {
	return SourceKindFile
}

// FileSource returns a Source pointing to a file path.
func FileSource(path string) Source {
	return fileSource{path: filepath.Clean(path)}
}

// fsSource references a path within an fs.FS configured on the loader.
type fsSource struct {
	name string
}

func (s fsSource) Location() string {
	return s.name
}

func (s fsSource) Kind() SourceKind {
	return SourceKindFS
}

// FSSource returns a Source identifying a resource inside an fs.FS.
func FSSource(name string) Source {
	return fsSource{name: name}
}

// literalSource carries inline table text, typically from tests or tooling
// that already holds the table in memory.
type literalSource struct {
	name string
	text string
}

func (s literalSource) Location() string {
	return s.name
}

func (s literalSource) Kind() SourceKind {
	return SourceKindLiteral
}

func (s literalSource) Text() string {
	return s.text
}

// LiteralSource returns a Source wrapping inline table text. The name is used
// in diagnostics only.
func LiteralSource(name, text string) Source {
	if name == "" {
		name = "inline"
	}
	return literalSource{name: name, text: text}
}

// LiteralText extracts the inline text from a literal source. It reports false
// for sources of any other kind.
func LiteralText(src Source) (string, bool) {
	if src == nil || src.Kind() != SourceKindLiteral {
		return "", false
	}
	provider, ok := src.(interface{ Text() string })
	if !ok {
		return "", false
	}
	return provider.Text(), true
}
