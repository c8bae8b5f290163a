// Package catalog defines the resolved model emitters consume: a variant set
// describing the target enum, and per-field templates with every language
// slot filled. The resolver that builds catalogs lives in internal/catalog
// but returns the types defined here. Resolution is where the table's
// semantic rules are enforced: unknown language tags, missing default
// entries, malformed placeholders, and method name collisions all fail here,
// before any code is emitted.
package catalog
