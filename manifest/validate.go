package manifest

import (
	_ "embed"
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

//go:embed schema.cue
var schemaSource string

// Validate checks m against the CUE schema for semantic errors that struct
// tags can't express (empty interpreter path, non-power-of-two int width).
// It is called by Load after defaults are applied, but is exported so
// callers building a Manifest by hand can validate it too.
func Validate(m *Manifest) error {
	ctx := cuecontext.New()

	schema := ctx.CompileString(schemaSource)
	if schema.Err() != nil {
		return fmt.Errorf("bridge manifest schema: %w", schema.Err())
	}

	value := ctx.Encode(m)
	if value.Err() != nil {
		return fmt.Errorf("bridge manifest encode: %w", value.Err())
	}

	unified := schema.LookupPath(cue.ParsePath("#Manifest")).Unify(value)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return err
	}
	return nil
}
