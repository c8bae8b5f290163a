package htmldoc_test

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	internalcatalog "github.com/Tomyyy-1337/language-atlas/internal/catalog"
	"github.com/Tomyyy-1337/language-atlas/internal/dsl/parser"
	"github.com/Tomyyy-1337/language-atlas/pkg/catalog"
	"github.com/Tomyyy-1337/language-atlas/pkg/dsl"
	"github.com/Tomyyy-1337/language-atlas/pkg/emit"
	"github.com/Tomyyy-1337/language-atlas/pkg/emitters/htmldoc"
	"github.com/Tomyyy-1337/language-atlas/pkg/testsupport"
	theme "github.com/goliatone/go-theme"
)

func loadCatalog(t *testing.T, fixture string, variants ...string) *catalog.Catalog {
	t.Helper()

	doc := testsupport.LoadDocument(t, filepath.Join("testdata", fixture))
	unit, err := parser.New(dsl.NewParserOptions()).Parse(testsupport.Context(), doc)
	if err != nil {
		t.Fatalf("parse %s: %v", fixture, err)
	}

	set, err := catalog.NewVariantSet("Language", variants...)
	if err != nil {
		t.Fatalf("variant set: %v", err)
	}
	cat, err := internalcatalog.New(catalog.NewResolverOptions()).Resolve(testsupport.Context(), unit, set)
	if err != nil {
		t.Fatalf("resolve %s: %v", fixture, err)
	}

	cat.Source = filepath.Base(doc.Name())
	return cat
}

func loadCatalogText(t *testing.T, text string, variants ...string) *catalog.Catalog {
	t.Helper()

	doc, err := dsl.NewDocument(dsl.LiteralSource("inline.atlas", text), text)
	if err != nil {
		t.Fatalf("new document: %v", err)
	}
	unit, err := parser.New(dsl.NewParserOptions()).Parse(testsupport.Context(), doc)
	if err != nil {
		t.Fatalf("parse inline table: %v", err)
	}

	set, err := catalog.NewVariantSet("Language", variants...)
	if err != nil {
		t.Fatalf("variant set: %v", err)
	}
	cat, err := internalcatalog.New(catalog.NewResolverOptions()).Resolve(testsupport.Context(), unit, set)
	if err != nil {
		t.Fatalf("resolve inline table: %v", err)
	}

	cat.Source = doc.Name()
	return cat
}

func newEmitter(t *testing.T) *htmldoc.Emitter {
	t.Helper()
	emitter, err := htmldoc.New()
	if err != nil {
		t.Fatalf("new emitter: %v", err)
	}
	return emitter
}

func TestEmitCatalogSheet(t *testing.T) {
	cat := loadCatalog(t, "catalog.atlas", "English", "German")
	emitter := newEmitter(t)

	got, err := emitter.Emit(testsupport.Context(), cat, emit.Options{})
	if err != nil {
		t.Fatalf("emit: %v", err)
	}

	golden := filepath.Join("testdata", "catalog.html.golden")
	if testsupport.WriteMaybeGolden(t, golden, got) {
		return
	}
	want := testsupport.MustReadGolden(t, golden)
	if diff := testsupport.CompareGolden(string(want), string(got)); diff != "" {
		t.Fatalf("catalog sheet mismatch (-want +got):\n%s", diff)
	}
}

func TestEmitThemeStyle(t *testing.T) {
	cat := loadCatalog(t, "catalog.atlas", "English", "German")
	emitter := newEmitter(t)

	got, err := emitter.Emit(testsupport.Context(), cat, emit.Options{
		Theme: &theme.RendererConfig{
			Theme:   "acme",
			Variant: "dark",
			CSSVars: map[string]string{
				"--brand-bg":     "#101418",
				"--brand-accent": "#ff6b35",
			},
		},
	})
	if err != nil {
		t.Fatalf("emit: %v", err)
	}

	if !bytes.Contains(got, []byte(`<style data-theme="acme">`)) {
		t.Errorf("missing theme style block in output:\n%s", got)
	}
	// Custom properties render sorted so output stays reproducible.
	block := ":root {\n--brand-accent: #ff6b35;\n--brand-bg: #101418;\n}"
	if !bytes.Contains(got, []byte(block)) {
		t.Errorf("missing sorted custom-property block %q in output:\n%s", block, got)
	}
}

func TestEmitThemeWithoutVars(t *testing.T) {
	cat := loadCatalog(t, "catalog.atlas", "English", "German")
	emitter := newEmitter(t)

	got, err := emitter.Emit(testsupport.Context(), cat, emit.Options{
		Theme: &theme.RendererConfig{Theme: "acme"},
	})
	if err != nil {
		t.Fatalf("emit: %v", err)
	}
	if bytes.Contains(got, []byte("data-theme")) {
		t.Error("theme without custom properties must not add a style block")
	}
}

func TestEmitHeaderNote(t *testing.T) {
	cat := loadCatalog(t, "catalog.atlas", "English", "German")
	emitter := newEmitter(t)

	got, err := emitter.Emit(testsupport.Context(), cat, emit.Options{
		HeaderNote: "Source of truth: strings team.",
	})
	if err != nil {
		t.Fatalf("emit: %v", err)
	}
	if !bytes.Contains(got, []byte(`<p class="note">Source of truth: strings team.</p>`)) {
		t.Errorf("missing note paragraph in output:\n%s", got)
	}
}

func TestEmitSanitizesTemplates(t *testing.T) {
	cat := loadCatalogText(t, `LanguageEnum: Language
		banner { English: "<script>alert('x')</script>Critical {level} notice" }`, "English")
	emitter := newEmitter(t)

	got, err := emitter.Emit(testsupport.Context(), cat, emit.Options{})
	if err != nil {
		t.Fatalf("emit: %v", err)
	}
	if bytes.Contains(got, []byte("<script>")) {
		t.Errorf("markup in template text leaked into output:\n%s", got)
	}
	if !bytes.Contains(got, []byte("<td>Critical {level} notice</td>")) {
		t.Errorf("sanitized template text missing from output:\n%s", got)
	}
}

func TestEmitDeterministic(t *testing.T) {
	cat := loadCatalog(t, "catalog.atlas", "English", "German")
	emitter := newEmitter(t)
	options := emit.Options{
		Theme: &theme.RendererConfig{
			Theme:   "acme",
			CSSVars: map[string]string{"--a": "1", "--b": "2", "--c": "3"},
		},
	}

	first, err := emitter.Emit(testsupport.Context(), cat, options)
	if err != nil {
		t.Fatalf("first emit: %v", err)
	}
	second, err := emitter.Emit(testsupport.Context(), cat, options)
	if err != nil {
		t.Fatalf("second emit: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Fatal("emit output is not deterministic")
	}
}

func TestEmitValidation(t *testing.T) {
	emitter := newEmitter(t)

	if _, err := emitter.Emit(testsupport.Context(), nil, emit.Options{}); err == nil {
		t.Error("nil catalog accepted")
	}

	cat := loadCatalogText(t, `LanguageEnum: Language
		greeting { English: "Hello" }`, "English")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := emitter.Emit(ctx, cat, emit.Options{}); err == nil {
		t.Error("canceled context accepted")
	}
}

func TestEmitterMetadata(t *testing.T) {
	emitter := newEmitter(t)
	if emitter.Name() != "htmldoc" {
		t.Errorf("name = %q, want htmldoc", emitter.Name())
	}
	if emitter.ContentType() != "text/html; charset=utf-8" {
		t.Errorf("content type = %q", emitter.ContentType())
	}
}
