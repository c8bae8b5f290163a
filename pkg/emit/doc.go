// Package emit defines the emitter contracts that turn a resolved catalog
// into output bytes. Emitters are registered by name in a Registry so the
// generator and the CLI can discover them, and receive per-request Options
// describing header notes and theme configuration. The gosource emitter
// produces the accessor methods consumed by Go programs; the htmldoc emitter
// produces a reviewable reference page.
package emit
