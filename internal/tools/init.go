package tools

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/docweave/docweave/internal/config"
	"github.com/docweave/docweave/internal/modules"
)

// InitTool handles the doc_init MCP tool.
// It creates the docweave/ workspace with configuration and the default
// template module set.
type InitTool struct {
	store config.Store
}

// NewInitTool creates an InitTool with the given config store.
func NewInitTool(store config.Store) *InitTool {
	return &InitTool{store: store}
}

// Definition returns the MCP tool definition for registration.
func (t *InitTool) Definition() mcp.Tool {
	return mcp.NewTool("doc_init",
		mcp.WithDescription(
			"Initialize a docweave workspace in the current project. "+
				"Creates the docweave/ directory with configuration and the "+
				"default template modules. Run this once before doc_compose.",
		),
	)
}

// Handle processes the doc_init tool call.
func (t *InitTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	projectRoot, err := findProjectRoot()
	if err != nil {
		return nil, fmt.Errorf("finding project root: %w", err)
	}

	// Guard: don't overwrite an existing workspace.
	if config.Exists(projectRoot) {
		return mcp.NewToolResultError(
			"docweave workspace already exists in this project. Use doc_elements to see what the scanner indexed.",
		), nil
	}

	cfg := config.Default(projectRoot)
	for _, dir := range []string{cfg.IndexDir, cfg.UniversalModulesDir, cfg.ConditionalModulesDir, cfg.OutputDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating directory %s: %w", dir, err)
		}
	}

	if err := t.store.Save(projectRoot, cfg); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	written, err := modules.WriteDefaults(cfg.UniversalModulesDir, cfg.ConditionalModulesDir)
	if err != nil {
		return nil, fmt.Errorf("writing default modules: %w", err)
	}
	sort.Strings(written)

	response := fmt.Sprintf(
		"# Docweave Workspace Initialized\n\n"+
			"**Location:** `%s/`\n\n"+
			"## What was created\n\n"+
			"```\ndocweave/\n├── docweave.yaml     # Workspace configuration\n├── modules/          # Template modules (universal + conditional)\n└── generated/        # Default output directory\n```\n\n"+
			"**Template modules installed:** %s\n\n"+
			"## Next Step\n\n"+
			"Drop the scanner's `element-index.json` into `docweave/`, then run "+
			"`doc_detect` on an element to see its classification, or `doc_compose` "+
			"to generate documentation directly.",
		config.Dir, strings.Join(written, ", "),
	)

	return mcp.NewToolResultText(response), nil
}
