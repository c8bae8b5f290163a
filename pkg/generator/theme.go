package generator

import (
	"errors"
	"fmt"
	"path"

	theme "github.com/goliatone/go-theme"
)

// WithThemeSelector injects a go-theme selector used to resolve a request's
// theme name and variant into renderer configuration for styled emitters.
func WithThemeSelector(selector theme.ThemeSelector) Option {
	return func(g *Generator) {
		g.themeSelector = selector
	}
}

// WithThemeProvider wires a go-theme provider plus the theme and variant
// applied when a request does not pick one. The provider must support
// selection; go-theme's manifest registry does.
func WithThemeProvider(provider theme.ThemeProvider, defaultTheme, defaultVariant string) Option {
	return func(g *Generator) {
		g.themeDefaultName = defaultTheme
		g.themeDefaultVariant = defaultVariant
		selector, ok := any(provider).(theme.ThemeSelector)
		if !ok {
			g.initialiseErr = errors.New("generator: theme provider does not support selection")
			return
		}
		g.themeSelector = selector
	}
}

// themeConfig resolves the request's theme choice into the configuration
// emitters receive. Requests without a theme (and no configured default)
// yield nil, which styled emitters treat as their built-in palette.
func (g *Generator) themeConfig(req Request) (*theme.RendererConfig, error) {
	name := req.ThemeName
	if name == "" {
		name = g.themeDefaultName
	}
	variant := req.ThemeVariant
	if variant == "" {
		variant = g.themeDefaultVariant
	}

	if name == "" {
		return nil, nil
	}
	if g.themeSelector == nil {
		return nil, fmt.Errorf("generator: theme %q requested but no selector configured", name)
	}

	selection, err := g.themeSelector.Select(name, variant)
	if err != nil {
		return nil, fmt.Errorf("generator: select theme %q: %w", name, err)
	}
	return rendererConfig(selection), nil
}

// rendererConfig flattens a theme selection: variant tokens, templates, and
// asset files overlay the manifest's base maps, tokens double as --prefixed
// CSS custom properties, and AssetURL resolves logical asset keys against
// the merged file set.
func rendererConfig(selection *theme.Selection) *theme.RendererConfig {
	if selection == nil {
		return nil
	}

	cfg := &theme.RendererConfig{
		Theme:   selection.Theme,
		Variant: selection.Variant,
	}
	manifest := selection.Manifest
	if manifest == nil {
		return cfg
	}

	tokens := copyStringMap(manifest.Tokens)
	partials := copyStringMap(manifest.Templates)
	files := copyStringMap(manifest.Assets.Files)
	prefix := manifest.Assets.Prefix

	if variant, ok := manifest.Variants[selection.Variant]; ok {
		tokens = mergeStringMap(tokens, variant.Tokens)
		partials = mergeStringMap(partials, variant.Templates)
		files = mergeStringMap(files, variant.Assets.Files)
		if variant.Assets.Prefix != "" {
			prefix = variant.Assets.Prefix
		}
	}

	cfg.Tokens = tokens
	cfg.Partials = partials
	if len(tokens) > 0 {
		cfg.CSSVars = make(map[string]string, len(tokens))
		for key, value := range tokens {
			cfg.CSSVars["--"+key] = value
		}
	}
	cfg.AssetURL = func(key string) string {
		file, ok := files[key]
		if !ok {
			return ""
		}
		return path.Join(prefix, file)
	}
	return cfg
}

func copyStringMap(in map[string]string) map[string]string {
	if len(in) == 0 {
		return nil
	}
	out := make(map[string]string, len(in))
	for key, value := range in {
		out[key] = value
	}
	return out
}

func mergeStringMap(dst, overlay map[string]string) map[string]string {
	if len(overlay) == 0 {
		return dst
	}
	if dst == nil {
		dst = make(map[string]string, len(overlay))
	}
	for key, value := range overlay {
		dst[key] = value
	}
	return dst
}
