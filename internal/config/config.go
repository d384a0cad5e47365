// Package config defines the docweave workspace configuration.
//
// A project opts into docweave by carrying a docweave/ directory with a
// docweave.yaml file inside. The file is optional — every field has a
// default relative to the workspace — so tools can run against a freshly
// initialized workspace without any manual editing.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// Dir is the docweave workspace directory at the project root.
	Dir = "docweave"
	// File is the workspace configuration filename inside Dir.
	File = "docweave.yaml"
)

// Config holds the resolved workspace configuration. All path fields are
// absolute after Load — relative values in docweave.yaml are resolved
// against the project root, which keeps the engines location-agnostic.
type Config struct {
	// IndexDir is the directory containing the element index produced by
	// the upstream scanner.
	IndexDir string `yaml:"index_dir"`
	// UniversalModulesDir holds the four always-applicable template
	// modules (architecture, integration, testing, performance).
	UniversalModulesDir string `yaml:"universal_modules_dir"`
	// ConditionalModulesDir holds every other template module.
	ConditionalModulesDir string `yaml:"conditional_modules_dir"`
	// OutputDir is the default target for generated artifacts.
	OutputDir string `yaml:"output_dir"`
}

// Store defines the persistence interface for workspace configuration.
// Abstracted for testability (DIP).
type Store interface {
	Load(projectRoot string) (*Config, error)
	Save(projectRoot string, cfg *Config) error
}

// FileStore implements Store using the local filesystem.
type FileStore struct{}

// NewFileStore creates a filesystem-backed config store.
func NewFileStore() *FileStore {
	return &FileStore{}
}

// WorkspacePath returns the absolute path to the docweave/ directory.
func WorkspacePath(projectRoot string) string {
	return filepath.Join(projectRoot, Dir)
}

// ConfigPath returns the absolute path to docweave/docweave.yaml.
func ConfigPath(projectRoot string) string {
	return filepath.Join(projectRoot, Dir, File)
}

// Exists reports whether a docweave workspace is initialized at root.
func Exists(projectRoot string) bool {
	_, err := os.Stat(ConfigPath(projectRoot))
	return err == nil
}

// Default returns the configuration used when docweave.yaml is absent or
// leaves fields empty. Paths are relative to the workspace directory.
func Default(projectRoot string) *Config {
	ws := WorkspacePath(projectRoot)
	return &Config{
		IndexDir:              ws,
		UniversalModulesDir:   filepath.Join(ws, "modules", "universal"),
		ConditionalModulesDir: filepath.Join(ws, "modules", "conditional"),
		OutputDir:             filepath.Join(ws, "generated"),
	}
}

// Load reads docweave.yaml and fills missing fields with defaults.
// A missing file is not an error — the defaults are returned as-is.
func (fs *FileStore) Load(projectRoot string) (*Config, error) {
	defaults := Default(projectRoot)

	data, err := os.ReadFile(ConfigPath(projectRoot))
	if err != nil {
		if os.IsNotExist(err) {
			return defaults, nil
		}
		return nil, fmt.Errorf("reading %s: %w", File, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", File, err)
	}

	resolve := func(value, fallback string) string {
		if value == "" {
			return fallback
		}
		if filepath.IsAbs(value) {
			return value
		}
		return filepath.Join(projectRoot, value)
	}

	cfg.IndexDir = resolve(cfg.IndexDir, defaults.IndexDir)
	cfg.UniversalModulesDir = resolve(cfg.UniversalModulesDir, defaults.UniversalModulesDir)
	cfg.ConditionalModulesDir = resolve(cfg.ConditionalModulesDir, defaults.ConditionalModulesDir)
	cfg.OutputDir = resolve(cfg.OutputDir, defaults.OutputDir)

	return &cfg, nil
}

// Save writes the configuration to docweave/docweave.yaml, creating the
// workspace directory if needed. Paths are stored relative to the project
// root when possible so the file survives a repository checkout move.
func (fs *FileStore) Save(projectRoot string, cfg *Config) error {
	if err := os.MkdirAll(WorkspacePath(projectRoot), 0o755); err != nil {
		return fmt.Errorf("creating workspace directory: %w", err)
	}

	out := *cfg
	relativize := func(value string) string {
		rel, err := filepath.Rel(projectRoot, value)
		if err != nil || rel == "" {
			return value
		}
		return rel
	}
	out.IndexDir = relativize(out.IndexDir)
	out.UniversalModulesDir = relativize(out.UniversalModulesDir)
	out.ConditionalModulesDir = relativize(out.ConditionalModulesDir)
	out.OutputDir = relativize(out.OutputDir)

	data, err := yaml.Marshal(&out)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	return os.WriteFile(ConfigPath(projectRoot), data, 0o644)
}
