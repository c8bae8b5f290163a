package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"strings"

	"github.com/Tomyyy-1337/language-atlas/pkg/dsl"
	"github.com/Tomyyy-1337/language-atlas/pkg/generator"
	"github.com/Tomyyy-1337/language-atlas/pkg/preview"
)

func main() {
	dslPath := flag.String("dsl", "", "language table to preview")
	dir := flag.String("dir", ".", "package directory scanned for language constants")
	variants := flag.String("variants", "", "comma-separated language tags; the first is the default language")
	flag.Parse()

	log.SetFlags(0)
	log.SetPrefix("atlas-preview: ")

	if *dslPath == "" {
		log.Fatal("-dsl is required")
	}

	ctx := context.Background()
	gen := generator.New()

	req := generator.Request{Source: dsl.FileSource(*dslPath)}
	if tags := splitTags(*variants); len(tags) > 0 {
		// An explicit tag list previews tables without a compiled target
		// package nearby.
		req.Variants = tags
	} else {
		req.PackageDir = *dir
	}

	cat, err := gen.Check(ctx, req)
	if err != nil {
		log.Fatal(err)
	}

	session, err := preview.New(cat)
	if err != nil {
		log.Fatal(err)
	}
	if err := session.Run(ctx); err != nil && !errors.Is(err, preview.ErrAborted) {
		log.Fatal(err)
	}
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
