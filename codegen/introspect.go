package codegen

import (
	"sort"
	"strings"

	"github.com/chazu/objectwire/manifest"
)

// Introspect resolves a manifest's [builtins] expose list into a Model.
// Unlike gowrap's IntrospectPackage, which walks a real Go package's
// exported scope, there is no live type information to walk here: an
// expose entry is either a concrete dotted name, taken as-is, or a
// wildcard prefix like "builtins.*", which names an entire remote
// namespace whose members can only be discovered by asking a running
// interpreter. Introspect leaves wildcards unexpanded and reports them in
// Model.Skipped rather than guessing.
func Introspect(m *manifest.Manifest, packageName string) *Model {
	model := &Model{PackageName: packageName}

	seen := make(map[string]bool)
	for _, expose := range m.Builtins.Expose {
		if strings.HasSuffix(expose, ".*") {
			model.Skipped = append(model.Skipped, expose)
			continue
		}
		if seen[expose] {
			continue
		}
		seen[expose] = true
		model.Entries = append(model.Entries, Entry{
			QualifiedName: expose,
			ConstName:     QualifiedNameToConst(expose),
		})
	}

	sort.Slice(model.Entries, func(i, j int) bool {
		return model.Entries[i].QualifiedName < model.Entries[j].QualifiedName
	})
	sort.Strings(model.Skipped)

	return model
}
