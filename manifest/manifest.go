// Package manifest handles objectwire.toml bridge launch configuration.
package manifest

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Manifest describes how to launch and configure a bridge session.
type Manifest struct {
	Interpreter Interpreter `toml:"interpreter"`
	Builtins    Builtins    `toml:"builtins"`
	Audit       Audit       `toml:"audit"`

	// Dir is the directory containing the objectwire.toml file (set at
	// load time).
	Dir string `toml:"-"`
}

// Interpreter configures the subprocess the bridge launches.
type Interpreter struct {
	Path     string   `toml:"path"`
	Args     []string `toml:"args"`
	IntWidth int      `toml:"int-width"`
}

// Builtins configures which remote qualified names codegen materializes
// into a constant table (§4.3).
type Builtins struct {
	Expose []string `toml:"expose"`
}

// Audit configures the optional CBOR/sqlite event trail (§3.2).
type Audit struct {
	Enabled bool   `toml:"enabled"`
	DSN     string `toml:"dsn"`
}

const manifestFileName = "objectwire.toml"

// Load parses and validates an objectwire.toml file from the given
// directory. Struct-tag shape errors are caught by toml.Unmarshal itself;
// semantic errors (an empty interpreter path, a non-power-of-two int width)
// are caught by Validate.
func Load(dir string) (*Manifest, error) {
	path := filepath.Join(dir, manifestFileName)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}

	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse error in %s: %w", path, err)
	}

	m.Dir, err = filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("cannot resolve path %s: %w", dir, err)
	}

	m.applyDefaults()

	if err := Validate(&m); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", path, err)
	}
	return &m, nil
}

func (m *Manifest) applyDefaults() {
	if m.Interpreter.Path == "" {
		m.Interpreter.Path = "python3"
	}
	if m.Interpreter.IntWidth == 0 {
		m.Interpreter.IntWidth = 8
	}
	if len(m.Builtins.Expose) == 0 {
		m.Builtins.Expose = []string{"builtins.*", "operator.*"}
	}
	if m.Audit.Enabled && m.Audit.DSN == "" {
		m.Audit.DSN = "objectwire-audit.db"
	}
}

// FindAndLoad walks up from startDir looking for objectwire.toml, then
// loads and returns it. Returns nil, nil if none is found.
func FindAndLoad(startDir string) (*Manifest, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return nil, err
	}

	for {
		path := filepath.Join(dir, manifestFileName)
		if _, err := os.Stat(path); err == nil {
			return Load(dir)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return nil, nil
		}
		dir = parent
	}
}
