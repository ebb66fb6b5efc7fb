package codegen

import (
	"fmt"
	"go/format"
	"strings"
)

// Generate renders model as a Go source file declaring one string constant
// per resolved entry.
func Generate(model *Model) (string, error) {
	var b strings.Builder

	fmt.Fprintf(&b, "package %s\n\n", model.PackageName)
	b.WriteString("// Code generated by cmd/gen-builtins from the manifest's [builtins] expose\n")
	b.WriteString("// list. DO NOT EDIT.\n\n")

	if len(model.Skipped) > 0 {
		b.WriteString("// The following expose patterns name an entire remote namespace and were\n")
		b.WriteString("// not expanded, since the remote side has no static type information to\n")
		b.WriteString("// enumerate them against:\n")
		for _, pattern := range model.Skipped {
			fmt.Fprintf(&b, "//   %s\n", pattern)
		}
		b.WriteString("\n")
	}

	b.WriteString("const (\n")
	for _, e := range model.Entries {
		fmt.Fprintf(&b, "\t// %s is the remote qualified name %q.\n", e.ConstName, e.QualifiedName)
		fmt.Fprintf(&b, "\t%s = %q\n", e.ConstName, e.QualifiedName)
	}
	b.WriteString(")\n")

	formatted, err := format.Source([]byte(b.String()))
	if err != nil {
		return "", fmt.Errorf("formatting generated source: %w", err)
	}
	return string(formatted), nil
}
