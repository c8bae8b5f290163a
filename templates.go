package atlas

import (
	"io/fs"

	htmldoc "github.com/Tomyyy-1337/language-atlas/pkg/emitters/htmldoc"
)

// EmbeddedTemplates exposes the built-in HTML sheet templates so callers can
// reuse or extend them without importing the emitter package directly.
func EmbeddedTemplates() fs.FS {
	return htmldoc.TemplatesFS()
}
