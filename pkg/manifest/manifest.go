// Package manifest loads atlas.yaml generation manifests: the multi-unit
// configuration consumed by atlas-gen -manifest. Loading resolves relative
// paths against the manifest location and fills per-unit defaults, so a
// loaded manifest is ready to hand to the generator unit by unit.
package manifest

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultEmitter is the emitter used by units that do not name one.
const DefaultEmitter = "gosource"

// Unit is one generation entry: a table, the package it targets, and where
// the emitted output goes.
type Unit struct {
	// DSL is the table path. Required; relative to the manifest file.
	DSL string `yaml:"dsl"`

	// Package is the directory scanned for the target enum. Defaults to the
	// manifest directory.
	Package string `yaml:"package"`

	// Output is the emitted file path. Relative paths resolve against the
	// manifest file; empty picks the conventional name (see DefaultOutput)
	// inside the package directory.
	Output string `yaml:"output"`

	// Emitter names the registered emitter. Defaults to gosource.
	Emitter string `yaml:"emitter"`

	// Variants lists the language tags explicitly, bypassing the enum scan.
	Variants []string `yaml:"variants"`

	// Type is the enum type name. Optional; when set it must match the
	// table header, which the generator enforces.
	Type string `yaml:"type"`
}

// Manifest is a parsed atlas.yaml. Units generate in authored order.
type Manifest struct {
	Units []Unit `yaml:"units"`

	// Path is the location the manifest was loaded from, for diagnostics.
	Path string `yaml:"-"`
}

// Load reads and validates a manifest from disk.
func Load(manifestPath string) (*Manifest, error) {
	data, err := os.ReadFile(manifestPath)
	if err != nil {
		return nil, fmt.Errorf("manifest: read %s: %w", manifestPath, err)
	}
	return finish(data, manifestPath, filepath.Dir(manifestPath), filepath.Join)
}

// LoadFS reads and validates a manifest from an fs.FS. Unit paths resolve
// relative to the manifest location inside the filesystem.
func LoadFS(fsys fs.FS, manifestPath string) (*Manifest, error) {
	data, err := fs.ReadFile(fsys, manifestPath)
	if err != nil {
		return nil, fmt.Errorf("manifest: read %s: %w", manifestPath, err)
	}
	return finish(data, manifestPath, path.Dir(manifestPath), path.Join)
}

func finish(data []byte, source, dir string, join func(...string) string) (*Manifest, error) {
	m, err := parse(data, source)
	if err != nil {
		return nil, err
	}
	m.Path = source
	if err := m.normalize(dir, join); err != nil {
		return nil, err
	}
	return m, nil
}

func parse(data []byte, source string) (*Manifest, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("manifest: %s is empty", source)
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	var m Manifest
	if err := decoder.Decode(&m); err != nil {
		return nil, fmt.Errorf("manifest: parse %s: %w", source, err)
	}
	return &m, nil
}

// normalize fills defaults, resolves paths, and rejects structural problems:
// missing tables and units that would overwrite each other's output.
func (m *Manifest) normalize(dir string, join func(...string) string) error {
	if len(m.Units) == 0 {
		return fmt.Errorf("manifest: %s: no units", m.Path)
	}

	outputs := make(map[string]string, len(m.Units))
	for i := range m.Units {
		unit := &m.Units[i]
		if strings.TrimSpace(unit.DSL) == "" {
			return fmt.Errorf("manifest: %s: unit %d: dsl path is required", m.Path, i+1)
		}
		table := unit.DSL

		if !filepath.IsAbs(unit.DSL) {
			unit.DSL = join(dir, unit.DSL)
		}
		if unit.Package == "" {
			unit.Package = "."
		}
		if !filepath.IsAbs(unit.Package) {
			unit.Package = join(dir, unit.Package)
		}
		if unit.Emitter == "" {
			unit.Emitter = DefaultEmitter
		}
		switch {
		case unit.Output == "":
			unit.Output = join(unit.Package, DefaultOutput(unit.DSL, unit.Emitter))
		case !filepath.IsAbs(unit.Output):
			unit.Output = join(dir, unit.Output)
		}

		if previous, dup := outputs[unit.Output]; dup {
			return fmt.Errorf("manifest: %s: units %s and %s write the same output %s", m.Path, previous, table, unit.Output)
		}
		outputs[unit.Output] = table
	}
	return nil
}

// DefaultOutput returns the conventional output file name for a table: the
// table's base name with a _atlas.go suffix, or .html for the htmldoc
// emitter. The _atlas.go suffix is what marks the file as generated for the
// enum scanner.
func DefaultOutput(dslPath, emitter string) string {
	base := filepath.Base(dslPath)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	if emitter == "htmldoc" {
		return base + ".html"
	}
	return base + "_atlas.go"
}
