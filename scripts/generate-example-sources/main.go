package main

import (
	"context"
	"fmt"
	"os"

	atlas "github.com/Tomyyy-1337/language-atlas"
	"github.com/Tomyyy-1337/language-atlas/pkg/dsl"
)

// units lists the committed generated sources under examples/ together with
// the tables and packages they come from. Run from the repository root.
var units = []struct {
	table      string
	packageDir string
	output     string
}{
	{
		table:      "examples/basic/speech/strings.atlas",
		packageDir: "examples/basic/speech",
		output:     "examples/basic/speech/strings_atlas.go",
	},
	{
		table:      "examples/manifest/ui/notices.atlas",
		packageDir: "examples/manifest/ui",
		output:     "examples/manifest/ui/notices_atlas.go",
	},
}

func main() {
	ctx := context.Background()

	gen := atlas.NewGenerator()
	for _, unit := range units {
		source, err := gen.Generate(ctx, atlas.Request{
			Source:     dsl.FileSource(unit.table),
			PackageDir: unit.packageDir,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to generate %s: %v\n", unit.table, err)
			os.Exit(1)
		}
		if err := os.WriteFile(unit.output, source, 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to write %s: %v\n", unit.output, err)
			os.Exit(1)
		}
		fmt.Printf("✓ Regenerated %s (%d bytes)\n", unit.output, len(source))
	}
}
