package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/docweave/docweave/internal/config"
	"github.com/docweave/docweave/internal/detect"
	"github.com/docweave/docweave/internal/elements"
)

// DetectTool handles the doc_detect MCP tool.
// It resolves an element from the index and reports its classification,
// confidence, and suggested template modules without generating anything.
type DetectTool struct {
	store  config.Store
	reader *elements.Reader
}

// NewDetectTool creates a DetectTool with the given dependencies.
func NewDetectTool(store config.Store, reader *elements.Reader) *DetectTool {
	return &DetectTool{store: store, reader: reader}
}

// Definition returns the MCP tool definition for registration.
func (t *DetectTool) Definition() mcp.Tool {
	return mcp.NewTool("doc_detect",
		mcp.WithDescription(
			"Classify an element from the scanner index: boolean capability "+
				"flags, a confidence score in [0,100], the documentation "+
				"category, and the suggested template modules. Dry-run "+
				"companion to doc_compose.",
		),
		mcp.WithString("element",
			mcp.Required(),
			mcp.Description("Element name, file path, or composite id (file#name) to classify"),
		),
	)
}

// Handle processes the doc_detect tool call.
func (t *DetectTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query := req.GetString("element", "")
	if query == "" {
		return mcp.NewToolResultError("'element' is required"), nil
	}

	projectRoot, err := findProjectRoot()
	if err != nil {
		return nil, fmt.Errorf("finding project root: %w", err)
	}
	cfg, err := t.store.Load(projectRoot)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	el, err := t.reader.Resolve(cfg.IndexDir, query)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := detect.Detect(el)
	category := detect.Category(result.Flags)
	suggested := detect.SuggestModules(result.Flags)

	var b strings.Builder
	fmt.Fprintf(&b, "# Detection: %s\n\n", el.Name)
	fmt.Fprintf(&b, "**File:** `%s`\n", el.File)
	fmt.Fprintf(&b, "**Category:** %s\n", category)
	fmt.Fprintf(&b, "**Confidence:** %d/100\n\n", result.Confidence)

	b.WriteString("## Signals\n\n")
	signals := flagNames(result.Flags)
	if len(signals) == 0 {
		b.WriteString("No capability signals detected — the element will be documented as `general`.\n")
	} else {
		for _, name := range signals {
			fmt.Fprintf(&b, "- %s\n", name)
		}
	}

	fmt.Fprintf(&b, "\n## Suggested Modules\n\n%s\n", strings.Join(suggested, ", "))
	fmt.Fprintf(&b, "\nRun `doc_compose` with element `%s` to generate the documentation.\n", el.Name)

	return mcp.NewToolResultText(b.String()), nil
}

// flagNames lists the raised detection flags in a stable order.
func flagNames(f detect.Flags) []string {
	ordered := []struct {
		set  bool
		name string
	}{
		{f.IsReactComponent, "react component"},
		{f.UsesState, "state"},
		{f.HasProps, "props"},
		{f.HasLifecycle, "lifecycle"},
		{f.HasEvents, "events"},
		{f.IsAPI, "api"},
		{f.IsCLI, "cli"},
		{f.IsHook, "hook"},
		{f.IsStore, "store"},
		{f.IsTest, "test"},
		{f.IsGenerator, "generator"},
		{f.IsInfrastructure, "infrastructure"},
		{f.HasAuth, "auth"},
		{f.HasValidation, "validation"},
		{f.HasPersistence, "persistence"},
		{f.HasRouting, "routing"},
		{f.HasAccessibility, "accessibility"},
	}
	var names []string
	for _, entry := range ordered {
		if entry.set {
			names = append(names, entry.name)
		}
	}
	return names
}
