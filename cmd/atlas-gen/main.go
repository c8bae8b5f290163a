package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/Tomyyy-1337/language-atlas/pkg/dsl"
	"github.com/Tomyyy-1337/language-atlas/pkg/generator"
	"github.com/Tomyyy-1337/language-atlas/pkg/manifest"
)

func main() {
	dslPath := flag.String("dsl", "", "language table to generate from")
	manifestPath := flag.String("manifest", "", "manifest describing multiple generation units")
	dir := flag.String("dir", ".", "package directory scanned for language constants")
	out := flag.String("out", "", "output path; - writes to stdout, empty derives it from the table name")
	pkgName := flag.String("pkg", "", "package clause override for generated source")
	variants := flag.String("variants", "", "comma-separated language tags; the first is the default language")
	emitterName := flag.String("emitter", "", "emitter to use (gosource, htmldoc)")
	check := flag.Bool("check", false, "validate the table without writing output")
	verbose := flag.Bool("v", false, "verbose diagnostics")
	flag.Parse()

	log.SetFlags(0)
	log.SetPrefix("atlas-gen: ")

	if (*dslPath == "") == (*manifestPath == "") {
		log.Fatal("exactly one of -dsl or -manifest is required")
	}

	ctx := context.Background()
	gen := generator.New(generatorOptions(*verbose)...)

	if *manifestPath != "" {
		if err := runManifest(ctx, gen, *manifestPath, *check); err != nil {
			log.Fatal(err)
		}
		return
	}

	req := generator.Request{
		Source:      dsl.FileSource(*dslPath),
		PackageDir:  *dir,
		PackageName: *pkgName,
		Variants:    splitTags(*variants),
		EmitterName: *emitterName,
	}
	if *check {
		if err := runCheck(ctx, gen, req, *dslPath); err != nil {
			log.Fatal(err)
		}
		return
	}

	output := *out
	if output == "" {
		emitter := *emitterName
		if emitter == "" {
			emitter = manifest.DefaultEmitter
		}
		output = filepath.Join(*dir, manifest.DefaultOutput(*dslPath, emitter))
	}
	if err := runUnit(ctx, gen, req, output); err != nil {
		log.Fatal(err)
	}
}

func runManifest(ctx context.Context, gen *generator.Generator, path string, check bool) error {
	m, err := manifest.Load(path)
	if err != nil {
		return err
	}
	for _, unit := range m.Units {
		req := generator.Request{
			Source:      dsl.FileSource(unit.DSL),
			PackageDir:  unit.Package,
			Variants:    unit.Variants,
			TypeName:    unit.Type,
			EmitterName: unit.Emitter,
		}
		if check {
			if err := runCheck(ctx, gen, req, unit.DSL); err != nil {
				return fmt.Errorf("unit %s: %w", unit.DSL, err)
			}
			continue
		}
		if err := runUnit(ctx, gen, req, unit.Output); err != nil {
			return fmt.Errorf("unit %s: %w", unit.DSL, err)
		}
	}
	return nil
}

func runCheck(ctx context.Context, gen *generator.Generator, req generator.Request, name string) error {
	cat, err := gen.Check(ctx, req)
	if err != nil {
		return err
	}
	fmt.Printf("%s: ok (%d fields, %d languages)\n", name, len(cat.Fields), cat.Variants.Len())
	return nil
}

func runUnit(ctx context.Context, gen *generator.Generator, req generator.Request, output string) error {
	data, err := gen.Generate(ctx, req)
	if err != nil {
		return err
	}
	if output == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if err := writeFileAtomic(output, data); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}
	fmt.Printf("wrote %s\n", output)
	return nil
}

// writeFileAtomic stages the output next to its destination and renames it
// into place so a failure never leaves a partial file behind.
func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

func generatorOptions(verbose bool) []generator.Option {
	if !verbose {
		return nil
	}
	logger := stderrLogger{log.New(os.Stderr, "atlas-gen: ", 0)}
	return []generator.Option{generator.WithLogger(logger)}
}

func splitTags(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	var tags []string
	for _, tag := range strings.Split(raw, ",") {
		tag = strings.TrimSpace(tag)
		if tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

type stderrLogger struct {
	*log.Logger
}

func (l stderrLogger) Debugf(format string, args ...any) { l.Printf(format, args...) }
func (l stderrLogger) Infof(format string, args ...any)  { l.Printf(format, args...) }
func (l stderrLogger) Warnf(format string, args ...any)  { l.Printf(format, args...) }
func (l stderrLogger) Errorf(format string, args ...any) { l.Printf(format, args...) }
