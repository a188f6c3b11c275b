// Package catalog reads the starter catalog and seed files from YAML.
package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultCatalog []byte

var envRef = regexp.MustCompile(`\$\{([A-Z0-9_]+)\}`)

// Loader reads a catalog file. An empty path serves the built-in catalog.
type Loader struct {
	filePath string
}

func NewLoader(filePath string) *Loader {
	return &Loader{filePath: filePath}
}

// Source names where the catalog comes from, for logs.
func (l *Loader) Source() string {
	if l.filePath == "" {
		return "builtin"
	}
	return l.filePath
}

// Load reads and parses the catalog.
func (l *Loader) Load() (Config, error) {
	data := defaultCatalog
	if l.filePath != "" {
		raw, err := os.ReadFile(l.filePath)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read catalog file: %w", err)
		}
		data = expandEnv(raw)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse catalog yaml: %w", err)
	}
	return cfg, nil
}

// LoadSeed reads a seed file.
func LoadSeed(path string) (SeedFile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return SeedFile{}, fmt.Errorf("failed to read seed file: %w", err)
	}

	var seed SeedFile
	if err := yaml.Unmarshal(expandEnv(raw), &seed); err != nil {
		return SeedFile{}, fmt.Errorf("failed to parse seed yaml: %w", err)
	}
	return seed, nil
}

// expandEnv substitutes ${VAR} references. Bare $ is left alone so prices
// like "$35" survive.
func expandEnv(data []byte) []byte {
	return envRef.ReplaceAllFunc(data, func(m []byte) []byte {
		return []byte(os.Getenv(string(m[2 : len(m)-1])))
	})
}
