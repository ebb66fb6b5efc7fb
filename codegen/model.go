// Package codegen generates a Go constant table of well-known remote
// qualified names from a manifest's expose list, the equivalent of hand
// writing proc["builtins.print"]-style lookups once at dev time instead of
// spelling out Global() calls with string literals scattered through
// application code.
package codegen

// Entry is one resolved remote qualified name destined for a Go constant.
type Entry struct {
	// QualifiedName is the dotted remote name, e.g. "builtins.len".
	QualifiedName string
	// ConstName is the Go identifier generated for it, e.g. "BuiltinsLen".
	ConstName string
}

// Model is the introspected output ready for generation.
type Model struct {
	// PackageName is the Go package the generated file declares.
	PackageName string
	Entries     []Entry
	// Skipped holds expose patterns that could not be resolved to a
	// concrete name (wildcards), kept only to be surfaced as comments —
	// unlike a Go package, the remote namespace has no static type
	// information to enumerate a wildcard against.
	Skipped []string
}
