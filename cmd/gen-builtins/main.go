// gen-builtins runs codegen over a manifest's [builtins] expose list and
// writes a Go constant table of resolved remote qualified names.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/chazu/objectwire/codegen"
	"github.com/chazu/objectwire/manifest"
)

func main() {
	manifestDir := flag.String("manifest", ".", "directory to search for objectwire.toml")
	packageName := flag.String("package", "builtinnames", "Go package name for the generated file")
	out := flag.String("out", "", "output file path (default: stdout)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: gen-builtins [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	m, err := manifest.FindAndLoad(*manifestDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "loading manifest: %v\n", err)
		os.Exit(1)
	}
	if m == nil {
		fmt.Fprintf(os.Stderr, "no objectwire.toml found under %s\n", *manifestDir)
		os.Exit(1)
	}

	model := codegen.Introspect(m, *packageName)
	for _, pattern := range model.Skipped {
		fmt.Fprintf(os.Stderr, "gen-builtins: skipping unexpandable wildcard %q\n", pattern)
	}

	code, err := codegen.Generate(model)
	if err != nil {
		fmt.Fprintf(os.Stderr, "generating: %v\n", err)
		os.Exit(1)
	}

	if *out == "" {
		fmt.Print(code)
		return
	}
	if err := os.WriteFile(*out, []byte(code), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "writing %s: %v\n", *out, err)
		os.Exit(1)
	}
}
