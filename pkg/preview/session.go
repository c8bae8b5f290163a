// Package preview implements an interactive walk over a resolved language
// catalog: pick a field, pick a language, fill in parameter values, and see
// the rendered text without generating or compiling anything.
package preview

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Tomyyy-1337/language-atlas/pkg/catalog"
	"github.com/Tomyyy-1337/language-atlas/pkg/template"
)

// Option configures a Session.
type Option func(*Session)

// WithPromptDriver swaps the terminal driver, primarily for tests.
func WithPromptDriver(driver PromptDriver) Option {
	return func(s *Session) {
		if driver != nil {
			s.driver = driver
		}
	}
}

// Session drives the preview loop for one resolved catalog.
type Session struct {
	cat    *catalog.Catalog
	driver PromptDriver
}

// New builds a session over a resolved catalog. Without options it prompts
// on the real terminal.
func New(cat *catalog.Catalog, options ...Option) (*Session, error) {
	if cat == nil {
		return nil, errors.New("preview: catalog is required")
	}
	s := &Session{
		cat:    cat,
		driver: newSurveyDriver(),
	}
	for _, option := range options {
		if option != nil {
			option(s)
		}
	}
	return s, nil
}

// Run loops field, language, parameter values, rendered text until the user
// declines to continue. A user abort surfaces as ErrAborted.
func (s *Session) Run(ctx context.Context) error {
	if ctx == nil {
		return errors.New("preview: context is required")
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(s.cat.Fields) == 0 {
		return s.driver.Info(ctx, fmt.Sprintf("table %s has no fields", s.cat.Source))
	}

	names := make([]string, len(s.cat.Fields))
	for i, field := range s.cat.Fields {
		names[i] = field.Name
	}
	languages := s.cat.Variants.Names()

	for {
		idx, err := s.driver.Select(ctx, SelectConfig{
			Message: "Field",
			Options: names,
		})
		if err != nil {
			return err
		}
		if idx < 0 || idx >= len(s.cat.Fields) {
			return fmt.Errorf("preview: field selection %d out of range", idx)
		}

		variant, err := s.driver.Select(ctx, SelectConfig{
			Message: "Language",
			Options: languages,
		})
		if err != nil {
			return err
		}
		if variant < 0 || variant >= len(languages) {
			return fmt.Errorf("preview: language selection %d out of range", variant)
		}

		if err := s.preview(ctx, s.cat.Fields[idx], variant, languages[variant]); err != nil {
			return err
		}

		again, err := s.driver.Confirm(ctx, ConfirmConfig{
			Message: "Preview another field?",
			Default: true,
		})
		if err != nil {
			return err
		}
		if !again {
			return nil
		}
	}
}

func (s *Session) preview(ctx context.Context, field catalog.Field, variant int, language string) error {
	if field.Placeholder {
		rendered := template.Render(field.Segments[variant], nil)
		msg := fmt.Sprintf("%s [%s] = %q (deprecated placeholder)", field.MethodName, language, rendered)
		return s.driver.Info(ctx, msg)
	}

	args := make(map[string]any, len(field.Params))
	for _, param := range field.Params {
		value, err := s.driver.Input(ctx, InputConfig{
			Message: fmt.Sprintf("%s (%s)", param.Name, param.GoType()),
		})
		if err != nil {
			return err
		}
		args[param.Name] = value
	}

	rendered := template.Render(field.Segments[variant], args)
	return s.driver.Info(ctx, fmt.Sprintf("%s [%s] = %q", call(field, args), language, rendered))
}

// call formats the accessor invocation the preview stands in for, e.g.
// ShortDate(7, 3).
func call(field catalog.Field, args map[string]any) string {
	if len(field.Params) == 0 {
		return field.MethodName + "()"
	}
	values := make([]string, len(field.Params))
	for i, param := range field.Params {
		values[i] = fmt.Sprintf("%v", args[param.Name])
	}
	return field.MethodName + "(" + strings.Join(values, ", ") + ")"
}
