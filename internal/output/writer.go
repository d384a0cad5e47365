// Package output persists composed documentation to disk. Each writer
// resolves its own file path from a target that is either an explicit
// file path or a directory, then creates missing parent directories
// before writing.
package output

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// MarkdownPath resolves where the Markdown document lands. A target
// carrying a file extension is taken verbatim; anything else is treated
// as a directory and the file is named after the element.
func MarkdownPath(target, elementName string) string {
	if filepath.Ext(target) != "" {
		return target
	}
	return filepath.Join(target, Kebab(elementName)+".md")
}

// SchemaPath resolves where the JSON Schema lands. An explicit ".json"
// path is taken verbatim, any other explicit file path gets a
// "-schema.json" suffix, and a directory target yields
// "{dir}/{kebab}-schema.json".
func SchemaPath(target, elementName string) string {
	if strings.HasSuffix(target, ".json") {
		return target
	}
	if filepath.Ext(target) != "" {
		return target + "-schema.json"
	}
	return filepath.Join(target, Kebab(elementName)+"-schema.json")
}

// JSDocPath resolves where the JSDoc block lands. Directory targets
// yield "{dir}/{kebab}.jsdoc.js".
func JSDocPath(target, elementName string) string {
	if filepath.Ext(target) != "" {
		return target
	}
	return filepath.Join(target, Kebab(elementName)+".jsdoc.js")
}

// WriteMarkdown writes the Markdown document and returns the path used.
func WriteMarkdown(target, elementName, content string) (string, error) {
	return write(MarkdownPath(target, elementName), content)
}

// WriteSchema validates the schema text before writing so a malformed
// document never reaches disk. Returns the path used.
func WriteSchema(target, elementName, schema string) (string, error) {
	if result := ValidateSchema(schema); !result.Valid {
		return "", fmt.Errorf("refusing to write invalid schema: %s", strings.Join(result.Errors, "; "))
	}
	return write(SchemaPath(target, elementName), schema)
}

// WriteJSDoc writes the JSDoc comment block and returns the path used.
func WriteJSDoc(target, elementName, jsdoc string) (string, error) {
	return write(JSDocPath(target, elementName), jsdoc)
}

func write(path, content string) (string, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}
	if !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}
