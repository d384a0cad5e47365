package modules

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// defaultTemplates holds the built-in module set shipped with docweave.
// They are written to the workspace on init so users can edit them; the
// store always reads from disk afterwards.
//
//go:embed templates/*.md
var defaultTemplates embed.FS

// WriteDefaults writes every built-in module template that does not
// already exist into its directory (universal or conditional by module
// name). Returns the module names actually written.
func WriteDefaults(universalDir, conditionalDir string) ([]string, error) {
	entries, err := defaultTemplates.ReadDir("templates")
	if err != nil {
		return nil, fmt.Errorf("reading embedded templates: %w", err)
	}

	for _, dir := range []string{universalDir, conditionalDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating module directory %s: %w", dir, err)
		}
	}

	var written []string
	for _, entry := range entries {
		name := strings.TrimSuffix(entry.Name(), ".md")
		dir := conditionalDir
		if IsUniversal(name) {
			dir = universalDir
		}
		dest := filepath.Join(dir, entry.Name())
		if _, err := os.Stat(dest); err == nil {
			continue // never clobber a user-edited template
		}

		data, err := defaultTemplates.ReadFile("templates/" + entry.Name())
		if err != nil {
			return written, fmt.Errorf("reading embedded template %s: %w", entry.Name(), err)
		}
		if err := os.WriteFile(dest, data, 0o644); err != nil {
			return written, fmt.Errorf("writing template %s: %w", dest, err)
		}
		written = append(written, name)
	}
	return written, nil
}
