package emit_test

import (
	"context"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/Tomyyy-1337/language-atlas/pkg/catalog"
	"github.com/Tomyyy-1337/language-atlas/pkg/emit"
)

type stubEmitter struct {
	name string
}

func (s stubEmitter) Name() string        { return s.name }
func (s stubEmitter) ContentType() string { return "text/plain" }

func (s stubEmitter) Emit(_ context.Context, _ *catalog.Catalog, _ emit.Options) ([]byte, error) {
	return []byte(s.name), nil
}

func TestRegistryRegisterAndGet(t *testing.T) {
	registry := emit.NewRegistry()
	if err := registry.Register(stubEmitter{name: "gosource"}); err != nil {
		t.Fatalf("register: %v", err)
	}

	emitter, err := registry.Get("gosource")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if emitter.Name() != "gosource" {
		t.Errorf("name = %q, want gosource", emitter.Name())
	}
	if !registry.Has("gosource") {
		t.Error("Has(gosource) = false")
	}
	if registry.Has("missing") {
		t.Error("Has(missing) = true")
	}
}

func TestRegistryDuplicate(t *testing.T) {
	registry := emit.NewRegistry()
	registry.MustRegister(stubEmitter{name: "gosource"})

	err := registry.Register(stubEmitter{name: "gosource"})
	if err == nil || !strings.Contains(err.Error(), "already registered") {
		t.Fatalf("err = %v, want duplicate registration error", err)
	}
}

func TestRegistryRejectsInvalid(t *testing.T) {
	registry := emit.NewRegistry()
	if err := registry.Register(nil); err == nil {
		t.Error("nil emitter accepted")
	}
	if err := registry.Register(stubEmitter{}); err == nil {
		t.Error("unnamed emitter accepted")
	}
}

func TestRegistryListSorted(t *testing.T) {
	registry := emit.NewRegistry()
	registry.MustRegister(stubEmitter{name: "htmldoc"})
	registry.MustRegister(stubEmitter{name: "gosource"})

	if diff := cmp.Diff([]string{"gosource", "htmldoc"}, registry.List()); diff != "" {
		t.Errorf("list mismatch (-want +got):\n%s", diff)
	}
}

func TestRegistryRemove(t *testing.T) {
	registry := emit.NewRegistry()
	registry.MustRegister(stubEmitter{name: "gosource"})

	if err := registry.Remove("gosource"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if registry.Has("gosource") {
		t.Error("emitter still present after Remove")
	}
	if err := registry.Remove("gosource"); err == nil {
		t.Error("second Remove should fail")
	}
}

func TestRegistryGetMissing(t *testing.T) {
	registry := emit.NewRegistry()
	if _, err := registry.Get("missing"); err == nil {
		t.Fatal("expected error for missing emitter")
	}

	defer func() {
		if recover() == nil {
			t.Fatal("MustGet should panic for missing emitter")
		}
	}()
	registry.MustGet("missing")
}
