package tools

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/docweave/docweave/internal/compose"
	"github.com/docweave/docweave/internal/config"
	"github.com/docweave/docweave/internal/detect"
	"github.com/docweave/docweave/internal/elements"
	"github.com/docweave/docweave/internal/history"
	"github.com/docweave/docweave/internal/modules"
	"github.com/docweave/docweave/internal/output"
)

// ComposeTool handles the doc_compose MCP tool: resolve, detect, render,
// and write the three documentation artifacts in one call.
type ComposeTool struct {
	store     config.Store
	reader    *elements.Reader
	history   *history.Store
	generator string
}

// NewComposeTool creates a ComposeTool. history may be nil when the run
// store could not be initialized; runs are then simply not recorded.
func NewComposeTool(store config.Store, reader *elements.Reader, hist *history.Store, generator string) *ComposeTool {
	return &ComposeTool{store: store, reader: reader, history: hist, generator: generator}
}

// Definition returns the MCP tool definition for registration.
func (t *ComposeTool) Definition() mcp.Tool {
	return mcp.NewTool("doc_compose",
		mcp.WithDescription(
			"Generate documentation for one element: a Markdown document, a "+
				"draft-07 JSON Schema, and a JSDoc block, written to the output "+
				"directory. Modules and category default to the detection "+
				"engine's suggestions.",
		),
		mcp.WithString("element",
			mcp.Required(),
			mcp.Description("Element name, file path, or composite id (file#name)"),
		),
		mcp.WithString("modules",
			mcp.Description("Comma-separated template modules. Leave empty to auto-select from detection."),
		),
		mcp.WithString("category",
			mcp.Description("Documentation category. Leave empty to derive from detection."),
		),
		mcp.WithString("output",
			mcp.Description("Output directory or explicit file path. Defaults to the configured output directory."),
		),
		mcp.WithString("workorder_id",
			mcp.Description("Workorder this documentation belongs to (recorded in provenance)"),
		),
		mcp.WithString("feature_id",
			mcp.Description("Feature this documentation belongs to (recorded in provenance)"),
		),
	)
}

// Handle processes the doc_compose tool call.
func (t *ComposeTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
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

	detection := detect.Detect(el)
	selected := splitModules(req.GetString("modules", ""))
	if selected == nil {
		selected = detect.SuggestModules(detection.Flags)
	}
	category := req.GetString("category", "")
	if category == "" {
		category = detect.Category(detection.Flags)
	}
	target := req.GetString("output", "")
	if target == "" {
		target = cfg.OutputDir
	}

	engine := compose.NewEngine(modules.NewStore(cfg.UniversalModulesDir, cfg.ConditionalModulesDir), t.generator)
	result, err := engine.Compose(el, selected, compose.Options{
		Category:    category,
		WorkorderID: req.GetString("workorder_id", ""),
		FeatureID:   req.GetString("feature_id", ""),
	})
	if err != nil {
		return nil, fmt.Errorf("composing documentation: %w", err)
	}

	mdPath, err := output.WriteMarkdown(target, el.Name, result.Markdown)
	if err != nil {
		return nil, fmt.Errorf("writing markdown: %w", err)
	}
	schemaPath, err := output.WriteSchema(target, el.Name, result.Schema)
	if err != nil {
		return nil, fmt.Errorf("writing schema: %w", err)
	}
	jsdocPath, err := output.WriteJSDoc(target, el.Name, result.JSDoc)
	if err != nil {
		return nil, fmt.Errorf("writing jsdoc: %w", err)
	}

	if t.history != nil {
		if _, err := t.history.Record(history.RecordParams{
			Element:      result.ElementName,
			Category:     result.Category,
			Modules:      result.ModulesUsed,
			AutoFillRate: result.AutoFillRate,
			ReviewCount:  len(result.ReviewFlags),
			WorkorderID:  result.Provenance.WorkorderID,
			FeatureID:    result.Provenance.FeatureID,
		}); err != nil {
			log.Printf("WARNING: failed to record composition run: %v", err)
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Documentation Generated: %s\n\n", result.ElementName)
	fmt.Fprintf(&b, "**Category:** %s\n", result.Category)
	fmt.Fprintf(&b, "**Detection confidence:** %d/100\n", detection.Confidence)
	fmt.Fprintf(&b, "**Modules used:** %s\n", strings.Join(result.ModulesUsed, ", "))
	fmt.Fprintf(&b, "**Auto-fill rate:** %d%%\n\n", result.AutoFillRate)

	b.WriteString("## Files\n\n")
	fmt.Fprintf(&b, "- `%s`\n- `%s`\n- `%s`\n", mdPath, schemaPath, jsdocPath)

	if len(result.ReviewFlags) > 0 {
		fmt.Fprintf(&b, "\n## Manual Review Needed (%d)\n\n", len(result.ReviewFlags))
		for _, flag := range result.ReviewFlags {
			fmt.Fprintf(&b, "- **%s**: %s\n", flag.Section, flag.Reason)
		}
	} else {
		b.WriteString("\n✅ Every section was auto-filled — no manual review needed.\n")
	}

	return mcp.NewToolResultText(b.String()), nil
}
