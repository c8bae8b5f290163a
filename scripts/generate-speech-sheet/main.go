package main

import (
	"context"
	"fmt"
	"os"

	atlas "github.com/Tomyyy-1337/language-atlas"
	"github.com/Tomyyy-1337/language-atlas/pkg/dsl"
)

func main() {
	ctx := context.Background()

	const (
		tablePath   = "examples/basic/speech/strings.atlas"
		packageDir  = "examples/basic/speech"
		emitterName = "htmldoc"
		outputPath  = "examples/basic/speech/strings.html"
	)

	gen := atlas.NewGenerator()
	sheet, err := gen.Generate(ctx, atlas.Request{
		Source:      dsl.FileSource(tablePath),
		PackageDir:  packageDir,
		EmitterName: emitterName,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to generate sheet: %v\n", err)
		os.Exit(1)
	}

	if err := os.WriteFile(outputPath, sheet, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to write output: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✓ Generated language sheet (%d bytes) → %s\n", len(sheet), outputPath)
}
