// Package tools implements the MCP tool handlers for docweave.
//
// Each tool is a struct that receives its dependencies at construction
// (DIP) and exposes a Definition for registration plus a Handle method
// compatible with mcp-go's CallToolRequest signature. One file per tool.
package tools

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/docweave/docweave/internal/config"
)

// findProjectRoot walks up from the current working directory looking
// for an existing docweave/docweave.yaml. If none is found, returns cwd.
// This allows tools to work from any subdirectory of the project.
func findProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getting working directory: %w", err)
	}

	current := dir
	for {
		if config.Exists(current) {
			return current, nil
		}

		parent := filepath.Dir(current)
		if parent == current {
			// Reached filesystem root, no workspace found.
			// Return original cwd — the caller decides what to do.
			return dir, nil
		}
		current = parent
	}
}

// splitModules parses a comma-separated module list, dropping empty
// entries and surrounding whitespace.
func splitModules(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	var names []string
	for _, part := range strings.Split(raw, ",") {
		if name := strings.TrimSpace(part); name != "" {
			names = append(names, name)
		}
	}
	return names
}
