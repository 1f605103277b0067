package skills

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// tableFile is the on-disk layout of a skill table:
//
//	default_percent = 75
//	[skills]
//	Python = 90
type tableFile struct {
	DefaultPercent *int           `toml:"default_percent" yaml:"default_percent"`
	Skills         map[string]int `toml:"skills" yaml:"skills"`
}

// LoadFile reads a TOML or YAML skill table. defaultPercent applies when
// the file does not set its own.
func LoadFile(path string, defaultPercent int) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read skill table: %w", err)
	}

	var f tableFile
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if _, err := toml.Decode(string(data), &f); err != nil {
			return nil, fmt.Errorf("decode %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("decode %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported skill table format %q", ext)
	}

	if f.DefaultPercent != nil {
		defaultPercent = *f.DefaultPercent
	}
	return NewTable(f.Skills, defaultPercent)
}
