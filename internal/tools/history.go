package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/docweave/docweave/internal/history"
)

// HistoryTool handles the doc_history MCP tool.
type HistoryTool struct {
	history *history.Store
}

// NewHistoryTool creates a HistoryTool. The store may be nil when the
// run database could not be opened; the tool then reports that instead
// of failing the server.
func NewHistoryTool(hist *history.Store) *HistoryTool {
	return &HistoryTool{history: hist}
}

// Definition returns the MCP tool definition for registration.
func (t *HistoryTool) Definition() mcp.Tool {
	return mcp.NewTool("doc_history",
		mcp.WithDescription(
			"Show recent composition runs: element, category, modules, "+
				"auto-fill rate, and review count. Optionally filtered by element.",
		),
		mcp.WithString("element",
			mcp.Description("Only show runs for this element name"),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of runs to return (default 10)"),
		),
	)
}

// Handle processes the doc_history tool call.
func (t *HistoryTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if t.history == nil {
		return mcp.NewToolResultError(
			"run history is unavailable (the history database failed to open at startup)",
		), nil
	}

	element := req.GetString("element", "")
	limit := int(req.GetFloat("limit", 10))

	runs, err := t.history.Recent(element, limit)
	if err != nil {
		return nil, fmt.Errorf("querying run history: %w", err)
	}

	if len(runs) == 0 {
		return mcp.NewToolResultText("No composition runs recorded yet. Run `doc_compose` first."), nil
	}

	var b strings.Builder
	b.WriteString("# Composition History\n\n")
	for _, r := range runs {
		fmt.Fprintf(&b, "- **%s** [%s] at %s — modules: %s, auto-fill %d%%, %d review flags",
			r.Element, r.Category, r.CreatedAt,
			strings.Join(r.Modules, ", "), r.AutoFillRate, r.ReviewCount)
		if r.WorkorderID != "" {
			fmt.Fprintf(&b, ", workorder %s", r.WorkorderID)
		}
		b.WriteString("\n")
	}

	return mcp.NewToolResultText(b.String()), nil
}
