package config

import (
	_ "embed"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/match.yaml
var defaultMatchYAML []byte

// MatchFile is the file name the Loader looks for
const MatchFile = "match.yaml"

// Loader loads match configuration from YAML files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// LoadMatch loads and validates match.yaml
func (l *Loader) LoadMatch() (*MatchConfig, error) {
	data, err := fs.ReadFile(l.fsys, MatchFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", MatchFile, err)
	}
	return parseMatch(data, l.basePath+"/"+MatchFile)
}

// DefaultMatch returns the embedded default match
func DefaultMatch() (*MatchConfig, error) {
	return parseMatch(defaultMatchYAML, "embedded "+MatchFile)
}

// LoadMatchOrDefault loads match.yaml from dir, or the embedded default when dir is empty
func LoadMatchOrDefault(dir string) (*MatchConfig, error) {
	if dir == "" {
		return DefaultMatch()
	}
	return NewLoader(dir).LoadMatch()
}

func parseMatch(data []byte, source string) (*MatchConfig, error) {
	var cfg MatchConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", source, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", source, err)
	}
	return &cfg, nil
}
