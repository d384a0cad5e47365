// Package modules is the file-backed store of documentation template
// modules. Each module is a Markdown document whose "## Section:" region
// carries the mini template language; modules are split between a fixed
// universal set and a conditional set, each living in its own directory.
package modules

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	lru "github.com/hashicorp/golang-lru/v2"
)

// ErrModuleUnavailable means a requested module has no template file.
// Composition recovers from it locally: the module is skipped with a
// warning, never a hard failure.
var ErrModuleUnavailable = errors.New("module template unavailable")

// universalModules is the fixed set of always-applicable modules. Every
// other module name resolves to the conditional directory.
var universalModules = map[string]bool{
	"architecture": true,
	"integration":  true,
	"testing":      true,
	"performance":  true,
}

// Universal lists the universal module names in composition order.
func Universal() []string {
	return []string{"architecture", "integration", "testing", "performance"}
}

// IsUniversal reports whether name belongs to the universal set.
func IsUniversal(name string) bool {
	return universalModules[name]
}

// cacheSize bounds the template content cache. A workspace carries a
// couple dozen modules at most.
const cacheSize = 64

// Store reads module templates from two injected directories. The roots
// are configuration, not derived from the binary's own location, so the
// store works against temp directories in tests.
type Store struct {
	universalDir   string
	conditionalDir string
	cache          *lru.Cache[string, string]
}

// NewStore creates a module store over the given template roots.
func NewStore(universalDir, conditionalDir string) *Store {
	cache, _ := lru.New[string, string](cacheSize)
	return &Store{
		universalDir:   universalDir,
		conditionalDir: conditionalDir,
		cache:          cache,
	}
}

// Path returns the template file path a module name resolves to.
func (s *Store) Path(name string) string {
	dir := s.conditionalDir
	if IsUniversal(name) {
		dir = s.universalDir
	}
	return filepath.Join(dir, name+".md")
}

// Load returns the full template document for a module. Missing files
// yield ErrModuleUnavailable. Contents are cached keyed by path and
// modification time, so an edited template is re-read.
func (s *Store) Load(name string) (string, error) {
	path := s.Path(name)
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %q (no file at %s)", ErrModuleUnavailable, name, path)
		}
		return "", fmt.Errorf("reading module %q: %w", name, err)
	}

	key := fmt.Sprintf("%s|%d", path, info.ModTime().UnixNano())
	if content, ok := s.cache.Get(key); ok {
		return content, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading module %q: %w", name, err)
	}
	content := string(data)
	s.cache.Add(key, content)
	return content, nil
}

// Section returns the addressable section of a module template.
func (s *Store) Section(name string) (string, error) {
	doc, err := s.Load(name)
	if err != nil {
		return "", err
	}
	return ExtractSection(doc), nil
}
