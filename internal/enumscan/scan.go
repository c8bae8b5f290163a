// Package enumscan discovers the variants of a Go enum type by parsing the
// constant declarations of the package that defines it.
package enumscan

import (
	"context"
	"fmt"
	"go/ast"
	goparser "go/parser"
	gotoken "go/token"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/Tomyyy-1337/language-atlas/pkg/catalog"
)

// Result carries what a scan learned about the target package.
type Result struct {
	// Variants holds the discovered constants in declaration order. The
	// first constant is the default variant.
	Variants catalog.VariantSet

	// Package is the package name declared by the scanned files.
	Package string
}

// Scan parses the Go package in dir and collects the constants of typeName.
func Scan(ctx context.Context, dir, typeName string) (Result, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return Result{}, fmt.Errorf("enumscan: read %s: %w", dir, err)
	}
	return scan(ctx, dir, typeName, fileNames(entries), func(fset *gotoken.FileSet, name string) (*ast.File, error) {
		return goparser.ParseFile(fset, filepath.Join(dir, name), nil, goparser.ParseComments)
	})
}

// ScanFS is Scan against an fs.FS, used by tests and tooling that works on
// in-memory trees.
func ScanFS(ctx context.Context, fsys fs.FS, dir, typeName string) (Result, error) {
	if fsys == nil {
		return Result{}, fmt.Errorf("enumscan: no file system configured")
	}
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return Result{}, fmt.Errorf("enumscan: read %s: %w", dir, err)
	}
	return scan(ctx, dir, typeName, fileNames(entries), func(fset *gotoken.FileSet, name string) (*ast.File, error) {
		full := name
		if dir != "" && dir != "." {
			full = dir + "/" + name
		}
		src, err := fs.ReadFile(fsys, full)
		if err != nil {
			return nil, err
		}
		return goparser.ParseFile(fset, full, src, goparser.ParseComments)
	})
}

func fileNames(entries []fs.DirEntry) []string {
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		names = append(names, entry.Name())
	}
	return names
}

func scan(ctx context.Context, dir, typeName string, names []string, parse func(*gotoken.FileSet, string) (*ast.File, error)) (Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if typeName == "" {
		return Result{}, fmt.Errorf("enumscan: type name is empty")
	}

	// ReadDir returns entries sorted by name, which keeps variant order
	// stable across platforms.
	fset := gotoken.NewFileSet()
	var (
		variants []string
		pkgName  string
	)
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		if !strings.HasSuffix(name, ".go") || strings.HasSuffix(name, "_test.go") {
			continue
		}
		if strings.HasSuffix(name, "_atlas.go") || strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") {
			continue
		}

		file, err := parse(fset, name)
		if err != nil {
			return Result{}, fmt.Errorf("enumscan: parse %s: %w", name, err)
		}
		if ast.IsGenerated(file) {
			continue
		}
		if pkgName == "" {
			pkgName = file.Name.Name
		}
		variants = append(variants, constantsOf(file, typeName)...)
	}

	if len(variants) == 0 {
		return Result{}, fmt.Errorf("enumscan: no %s constants found in %s", typeName, dir)
	}
	set, err := catalog.NewVariantSet(typeName, variants...)
	if err != nil {
		return Result{}, fmt.Errorf("enumscan: %w", err)
	}
	return Result{Variants: set, Package: pkgName}, nil
}

// constantsOf collects the constants of typeName declared in file, in
// source order.
func constantsOf(file *ast.File, typeName string) []string {
	var out []string
	for _, decl := range file.Decls {
		gd, ok := decl.(*ast.GenDecl)
		if !ok || gd.Tok != gotoken.CONST {
			continue
		}
		// Within a const block the type carries forward through iota
		// continuation specs until a spec declares its own type or its
		// own values.
		carrying := false
		for _, spec := range gd.Specs {
			vs, ok := spec.(*ast.ValueSpec)
			if !ok {
				continue
			}
			switch {
			case vs.Type != nil:
				ident, ok := vs.Type.(*ast.Ident)
				carrying = ok && ident.Name == typeName
			case len(vs.Values) > 0:
				carrying = false
			}
			if !carrying {
				continue
			}
			for _, name := range vs.Names {
				if name.Name == "_" {
					continue
				}
				out = append(out, name.Name)
			}
		}
	}
	return out
}
