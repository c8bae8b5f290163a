package loader

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/Tomyyy-1337/language-atlas/pkg/dsl"
)

const table = "LanguageEnum: Language\ngreeting { English: \"Hello\" }\n"

func TestLoadFromFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "strings.atlas")
	if err := os.WriteFile(path, []byte(table), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	loader := New(dsl.NewLoaderOptions())
	doc, err := loader.Load(context.Background(), dsl.FileSource(path))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if doc.Text() != table {
		t.Fatalf("document text mismatch: %q", doc.Text())
	}
	if doc.Name() != path {
		t.Fatalf("document name: want %q, got %q", path, doc.Name())
	}
}

func TestLoadFromFS(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"tables/strings.atlas": &fstest.MapFile{Data: []byte(table)},
	}

	loader := New(dsl.NewLoaderOptions(dsl.WithFileSystem(fsys)))
	doc, err := loader.Load(context.Background(), dsl.FSSource("tables/strings.atlas"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if doc.Text() != table {
		t.Fatalf("document text mismatch: %q", doc.Text())
	}
}

func TestLoadFromFSRequiresFilesystem(t *testing.T) {
	t.Parallel()

	loader := New(dsl.NewLoaderOptions())
	if _, err := loader.Load(context.Background(), dsl.FSSource("strings.atlas")); err == nil {
		t.Fatal("expected error when filesystem is not configured")
	}
}

func TestLoadLiteral(t *testing.T) {
	t.Parallel()

	loader := New(dsl.NewLoaderOptions())
	doc, err := loader.Load(context.Background(), dsl.LiteralSource("inline.atlas", table))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if doc.Text() != table || doc.Name() != "inline.atlas" {
		t.Fatalf("unexpected document: name=%q text=%q", doc.Name(), doc.Text())
	}
}

func TestLoadEnforcesMaxBytes(t *testing.T) {
	t.Parallel()

	loader := New(dsl.NewLoaderOptions(dsl.WithMaxBytes(8)))
	_, err := loader.Load(context.Background(), dsl.LiteralSource("big.atlas", table))
	if err == nil || !strings.Contains(err.Error(), "exceeds 8 bytes") {
		t.Fatalf("expected size cap error, got %v", err)
	}
}

func TestLoadNilSource(t *testing.T) {
	t.Parallel()

	loader := New(dsl.NewLoaderOptions())
	if _, err := loader.Load(context.Background(), nil); err == nil {
		t.Fatal("expected error for nil source")
	}
}

func TestLoadHonorsContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	loader := New(dsl.NewLoaderOptions())
	if _, err := loader.Load(ctx, dsl.FileSource("missing.atlas")); err != context.Canceled {
		t.Fatalf("want context.Canceled, got %v", err)
	}
}
