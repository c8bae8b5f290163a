package emit

import (
	theme "github.com/goliatone/go-theme"
)

// Options describe per-request data that emitters can use to customise their
// output without mutating the resolved catalog.
type Options struct {
	// HeaderNote is an extra line emitters place near the top of their
	// output: a comment below the generated-code header for Go source, a
	// note under the page heading for HTML. Emitters must keep output
	// reproducible, so the note should not contain timestamps.
	HeaderNote string
	// Theme carries the resolved go-theme configuration for emitters that
	// produce styled output. Emitters that cannot use it (the gosource
	// emitter) ignore it.
	Theme *theme.RendererConfig
}
