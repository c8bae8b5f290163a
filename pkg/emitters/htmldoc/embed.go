package htmldoc

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tmpl
var embeddedTemplates embed.FS

// TemplatesFS exposes the embedded template bundle for consumers that want
// to restyle the catalog sheet.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}
