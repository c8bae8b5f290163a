package atlas_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	atlas "github.com/Tomyyy-1337/language-atlas"
	"github.com/Tomyyy-1337/language-atlas/pkg/catalog"
	"github.com/Tomyyy-1337/language-atlas/pkg/dsl"
)

const facadeSource = `package speech

type Language int

const (
	English Language = iota
	German
)
`

const facadeTable = `LanguageEnum: Language

greeting {
	English: "Hello",
	German: "Hallo",
}
`

func writeSpeechPackage(t *testing.T) (dir, table string) {
	t.Helper()
	dir = t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "language.go"), []byte(facadeSource), 0o644); err != nil {
		t.Fatalf("write language.go: %v", err)
	}
	table = filepath.Join(dir, "strings.atlas")
	if err := os.WriteFile(table, []byte(facadeTable), 0o644); err != nil {
		t.Fatalf("write strings.atlas: %v", err)
	}
	return dir, table
}

func TestGenerate(t *testing.T) {
	dir, table := writeSpeechPackage(t)

	output, err := atlas.Generate(context.Background(), dsl.FileSource(table), dir)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}

	source := string(output)
	for _, want := range []string{
		"package speech",
		"func (l Language) Greeting() string",
		"case German:",
	} {
		if !strings.Contains(source, want) {
			t.Fatalf("generated source missing %q:\n%s", want, source)
		}
	}
}

func TestGenerateFromDocument(t *testing.T) {
	dir, _ := writeSpeechPackage(t)

	doc, err := dsl.NewDocument(dsl.LiteralSource("inline.atlas", facadeTable), facadeTable)
	if err != nil {
		t.Fatalf("NewDocument returned error: %v", err)
	}

	output, err := atlas.GenerateFromDocument(context.Background(), doc, dir)
	if err != nil {
		t.Fatalf("GenerateFromDocument returned error: %v", err)
	}
	if !strings.Contains(string(output), "// Source: inline.atlas") {
		t.Fatalf("generated source missing document header:\n%s", output)
	}
}

func TestCheck(t *testing.T) {
	dir, table := writeSpeechPackage(t)

	cat, err := atlas.Check(context.Background(), dsl.FileSource(table), dir)
	if err != nil {
		t.Fatalf("Check returned error: %v", err)
	}
	if cat.Type != "Language" || cat.Package != "speech" {
		t.Fatalf("unexpected catalog identity: type %q package %q", cat.Type, cat.Package)
	}
	if got := cat.Variants.Names(); len(got) != 2 || got[0] != "English" {
		t.Fatalf("unexpected variants %v", got)
	}
}

func TestPipelineConstructors(t *testing.T) {
	ctx := context.Background()

	doc, err := atlas.NewLoader().Load(ctx, dsl.LiteralSource("inline.atlas", facadeTable))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	unit, err := atlas.NewParser().Parse(ctx, doc)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if unit.TypeName != "Language" {
		t.Fatalf("unexpected type name %q", unit.TypeName)
	}

	variants := catalog.MustNewVariantSet("Language", "English", "German")
	cat, err := atlas.NewResolver().Resolve(ctx, unit, variants)
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if len(cat.Fields) != 1 || cat.Fields[0].MethodName != "Greeting" {
		t.Fatalf("unexpected fields %+v", cat.Fields)
	}
}
