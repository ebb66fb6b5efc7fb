// objectwire is a one-shot runner: it launches a bridge session per the
// local objectwire.toml, resolves a remote qualified name, calls it with
// string arguments taken from the command line, and prints the result.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/chazu/objectwire/audit"
	"github.com/chazu/objectwire/bridge"
	"github.com/chazu/objectwire/manifest"
)

func main() {
	manifestDir := flag.String("manifest", ".", "directory to search for objectwire.toml")
	verbose := flag.Bool("v", false, "verbose output")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: objectwire [options] <qualified-name> [args...]\n\n")
		fmt.Fprintf(os.Stderr, "Resolves <qualified-name> in the remote interpreter and calls it with\n")
		fmt.Fprintf(os.Stderr, "the given arguments, treated as strings, printing the result.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  objectwire builtins.len hello\n")
		fmt.Fprintf(os.Stderr, "  objectwire -manifest ./scripts operator.add 1 2\n")
	}
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		flag.Usage()
		os.Exit(2)
	}
	qualifiedName, callArgs := args[0], args[1:]

	m, err := manifest.FindAndLoad(*manifestDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "loading manifest: %v\n", err)
		os.Exit(1)
	}
	if m == nil {
		m = &manifest.Manifest{Interpreter: manifest.Interpreter{Path: "python3"}}
	}
	if *verbose {
		fmt.Fprintf(os.Stderr, "interpreter: %s %v\n", m.Interpreter.Path, m.Interpreter.Args)
	}

	opts := bridge.Options{
		InterpreterPath: m.Interpreter.Path,
		InterpreterArgs: m.Interpreter.Args,
	}
	if m.Audit.Enabled {
		store, err := audit.Open(m.Audit.DSN)
		if err != nil {
			fmt.Fprintf(os.Stderr, "opening audit store: %v\n", err)
			os.Exit(1)
		}
		defer store.Close()
		opts.Recorder = audit.NewRecorder("cli", store)
	}

	b, err := bridge.New(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "launching interpreter: %v\n", err)
		os.Exit(1)
	}
	defer b.Close()

	if err := run(b, qualifiedName, callArgs); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(b *bridge.Bridge, qualifiedName string, callArgs []string) error {
	fn, err := b.Global(qualifiedName)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", qualifiedName, err)
	}
	defer fn.Close()

	args := make([]*bridge.Object, len(callArgs))
	for i, a := range callArgs {
		obj, err := b.MakeStr(a)
		if err != nil {
			return fmt.Errorf("making argument %q: %w", a, err)
		}
		defer obj.Close()
		args[i] = obj
	}

	result, err := b.Call(fn, args...)
	if err != nil {
		return fmt.Errorf("calling %s: %w", qualifiedName, err)
	}
	defer result.Close()

	if s, err := b.GetStr(result); err == nil {
		fmt.Println(s)
		return nil
	}
	if n, err := b.GetInt(result); err == nil {
		fmt.Println(n)
		return nil
	}
	fmt.Println("(call succeeded, result is not a str or int)")
	return nil
}
