package codegen

import (
	"strings"
	"unicode"
)

// QualifiedNameToConst converts a dotted remote qualified name to a Go
// exported constant identifier, e.g. "builtins.len" -> "BuiltinsLen",
// "operator.add" -> "OperatorAdd".
func QualifiedNameToConst(qualifiedName string) string {
	parts := strings.Split(qualifiedName, ".")
	var b strings.Builder
	for _, part := range parts {
		b.WriteString(toPascal(part))
	}
	return b.String()
}

// toPascal converts a string to PascalCase, treating '_' and '-' as word
// separators the way an identifier-safe rendering must.
func toPascal(s string) string {
	if len(s) == 0 {
		return s
	}

	var b strings.Builder
	nextUpper := true
	for _, r := range s {
		if r == '-' || r == '_' {
			nextUpper = true
			continue
		}
		if nextUpper {
			b.WriteRune(unicode.ToUpper(r))
			nextUpper = false
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
