// Package dsl exposes the public contracts for the loading and parsing stages
// of the language table pipeline: sources identify where table text lives,
// documents wrap the raw text, and the parser turns a document into the typed
// syntax model consumed by the catalog resolver. Implementations live under
// internal/dsl so consumers only depend on the contracts defined here.
package dsl
