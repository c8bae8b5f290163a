package preview

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/google/go-cmp/cmp"

	"github.com/Tomyyy-1337/language-atlas/pkg/catalog"
	"github.com/Tomyyy-1337/language-atlas/pkg/template"
)

type stubDriver struct {
	inputs     []string
	inputPos   int
	selections []int
	selectPos  int
	confirms   []bool
	confirmPos int

	inputMessages  []string
	selectMessages []string
	infoMessages   []string
}

func (d *stubDriver) Input(ctx context.Context, cfg InputConfig) (string, error) {
	d.inputMessages = append(d.inputMessages, cfg.Message)
	if d.inputPos >= len(d.inputs) {
		return "", errors.New("no input scripted")
	}
	value := d.inputs[d.inputPos]
	d.inputPos++
	return value, nil
}

func (d *stubDriver) Confirm(ctx context.Context, cfg ConfirmConfig) (bool, error) {
	if d.confirmPos >= len(d.confirms) {
		return false, errors.New("no confirm scripted")
	}
	value := d.confirms[d.confirmPos]
	d.confirmPos++
	return value, nil
}

func (d *stubDriver) Select(ctx context.Context, cfg SelectConfig) (int, error) {
	d.selectMessages = append(d.selectMessages, cfg.Message)
	if d.selectPos >= len(d.selections) {
		return 0, errors.New("no selection scripted")
	}
	value := d.selections[d.selectPos]
	d.selectPos++
	return value, nil
}

func (d *stubDriver) Info(ctx context.Context, msg string) error {
	d.infoMessages = append(d.infoMessages, msg)
	return nil
}

type abortDriver struct {
	stubDriver
}

func (d *abortDriver) Select(ctx context.Context, cfg SelectConfig) (int, error) {
	return 0, ErrAborted
}

func parseAll(t *testing.T, texts ...string) [][]template.Segment {
	t.Helper()
	segs := make([][]template.Segment, len(texts))
	for i, text := range texts {
		parsed, err := template.Parse(text)
		if err != nil {
			t.Fatalf("parse template %q: %v", text, err)
		}
		segs[i] = parsed
	}
	return segs
}

func previewCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	return &catalog.Catalog{
		Type:     "Language",
		Package:  "speech",
		Source:   "strings.atlas",
		Variants: catalog.MustNewVariantSet("Language", "English", "German"),
		Fields: []catalog.Field{
			{
				Name:       "greeting",
				MethodName: "Greeting",
				Templates:  []string{"Hello", "Hallo"},
				Segments:   parseAll(t, "Hello", "Hallo"),
				Explicit:   []bool{true, true},
			},
			{
				Name:       "farewell",
				MethodName: "Farewell",
				Params:     []catalog.Param{{Name: "name"}},
				Inferred:   true,
				Templates:  []string{"Goodbye, {name}", "Bis bald, {name}"},
				Segments:   parseAll(t, "Goodbye, {name}", "Bis bald, {name}"),
				Explicit:   []bool{true, true},
				Refs:       []string{"name"},
			},
			{
				Name:        "pending",
				MethodName:  "Pending",
				Placeholder: true,
				Templates:   []string{"ToDo!", "ToDo!"},
				Segments:    parseAll(t, "ToDo!", "ToDo!"),
				Explicit:    []bool{false, false},
				Uniform:     true,
			},
		},
	}
}

func TestSessionWalksCatalog(t *testing.T) {
	driver := &stubDriver{
		selections: []int{1, 1, 0, 0},
		inputs:     []string{"Ada"},
		confirms:   []bool{true, false},
	}
	session, err := New(previewCatalog(t), WithPromptDriver(driver))
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	if err := session.Run(context.Background()); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	wantInfo := []string{
		`Farewell(Ada) [German] = "Bis bald, Ada"`,
		`Greeting() [English] = "Hello"`,
	}
	if diff := cmp.Diff(wantInfo, driver.infoMessages); diff != "" {
		t.Fatalf("rendered output mismatch (-want +got):\n%s", diff)
	}
	wantSelects := []string{"Field", "Language", "Field", "Language"}
	if diff := cmp.Diff(wantSelects, driver.selectMessages); diff != "" {
		t.Fatalf("select prompts mismatch (-want +got):\n%s", diff)
	}
	wantInputs := []string{"name (any)"}
	if diff := cmp.Diff(wantInputs, driver.inputMessages); diff != "" {
		t.Fatalf("input prompts mismatch (-want +got):\n%s", diff)
	}
}

func TestSessionPlaceholderNotice(t *testing.T) {
	driver := &stubDriver{
		selections: []int{2, 1},
		confirms:   []bool{false},
	}
	session, err := New(previewCatalog(t), WithPromptDriver(driver))
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	if err := session.Run(context.Background()); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	if len(driver.infoMessages) != 1 {
		t.Fatalf("expected one info message, got %v", driver.infoMessages)
	}
	want := `Pending [German] = "ToDo!" (deprecated placeholder)`
	if driver.infoMessages[0] != want {
		t.Fatalf("placeholder notice = %q, want %q", driver.infoMessages[0], want)
	}
	if len(driver.inputMessages) != 0 {
		t.Fatalf("placeholder field should not prompt for values, got %v", driver.inputMessages)
	}
}

func TestSessionSelectionOutOfRange(t *testing.T) {
	driver := &stubDriver{selections: []int{5}}
	session, err := New(previewCatalog(t), WithPromptDriver(driver))
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	err = session.Run(context.Background())
	if err == nil || !strings.Contains(err.Error(), "out of range") {
		t.Fatalf("expected out of range error, got %v", err)
	}
}

func TestSessionAbort(t *testing.T) {
	session, err := New(previewCatalog(t), WithPromptDriver(&abortDriver{}))
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	err = session.Run(context.Background())
	if !errors.Is(err, ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", err)
	}
}

func TestSessionEmptyCatalog(t *testing.T) {
	driver := &stubDriver{}
	cat := &catalog.Catalog{
		Type:     "Language",
		Source:   "empty.atlas",
		Variants: catalog.MustNewVariantSet("Language", "English"),
	}
	session, err := New(cat, WithPromptDriver(driver))
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	if err := session.Run(context.Background()); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if len(driver.infoMessages) != 1 || !strings.Contains(driver.infoMessages[0], "no fields") {
		t.Fatalf("expected a no-fields notice, got %v", driver.infoMessages)
	}
}

func TestSessionValidation(t *testing.T) {
	if _, err := New(nil); err == nil {
		t.Fatal("expected error for nil catalog")
	}

	session, err := New(previewCatalog(t), WithPromptDriver(&stubDriver{}))
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	var nilCtx context.Context
	if err := session.Run(nilCtx); err == nil {
		t.Fatal("expected error for nil context")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := session.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestTranslateSurveyErr(t *testing.T) {
	if got := translateSurveyErr(terminal.InterruptErr); !errors.Is(got, ErrAborted) {
		t.Fatalf("interrupt should map to ErrAborted, got %v", got)
	}
	sentinel := fmt.Errorf("boom")
	if got := translateSurveyErr(sentinel); got != sentinel {
		t.Fatalf("unrelated errors should pass through, got %v", got)
	}
}
