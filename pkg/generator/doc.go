// Package generator coordinates the full pipeline: load a language table,
// parse it, discover the variant set from the target package, resolve the
// catalog, and hand it to an emitter. It applies sensible defaults (internal
// loader/parser/resolver, a registry with the gosource and htmldoc emitters)
// while remaining open to dependency injection for advanced callers.
package generator
