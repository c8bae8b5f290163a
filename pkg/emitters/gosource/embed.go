package gosource

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tmpl
var embeddedTemplates embed.FS

// TemplatesFS exposes the embedded template bundle for consumers that want
// to tweak the generated accessor layout.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}
