package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/docweave/docweave/internal/config"
	"github.com/docweave/docweave/internal/elements"
)

// ElementsTool handles the doc_elements MCP tool.
// It lists what the scanner indexed so callers can pick compose targets.
type ElementsTool struct {
	store  config.Store
	reader *elements.Reader
}

// NewElementsTool creates an ElementsTool with the given dependencies.
func NewElementsTool(store config.Store, reader *elements.Reader) *ElementsTool {
	return &ElementsTool{store: store, reader: reader}
}

// Definition returns the MCP tool definition for registration.
func (t *ElementsTool) Definition() mcp.Tool {
	return mcp.NewTool("doc_elements",
		mcp.WithDescription(
			"List the elements in the scanner index, optionally filtered by "+
				"a name or path substring.",
		),
		mcp.WithString("filter",
			mcp.Description("Case-insensitive substring to match against element names and file paths"),
		),
	)
}

// Handle processes the doc_elements tool call.
func (t *ElementsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	filter := strings.ToLower(req.GetString("filter", ""))

	projectRoot, err := findProjectRoot()
	if err != nil {
		return nil, fmt.Errorf("finding project root: %w", err)
	}
	cfg, err := t.store.Load(projectRoot)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	all, err := t.reader.List(cfg.IndexDir)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var b strings.Builder
	b.WriteString("# Indexed Elements\n\n")

	matched := 0
	for _, el := range all {
		if filter != "" &&
			!strings.Contains(strings.ToLower(el.Name), filter) &&
			!strings.Contains(strings.ToLower(el.File), filter) {
			continue
		}
		matched++
		fmt.Fprintf(&b, "- **%s** (%s) — `%s`\n", el.Name, el.Type, el.File)
	}

	if matched == 0 {
		if filter != "" {
			fmt.Fprintf(&b, "No elements match %q. %d elements are indexed in total.\n", filter, len(all))
		} else {
			b.WriteString("The index is empty — run the coderef scanner first.\n")
		}
	} else {
		fmt.Fprintf(&b, "\n%d of %d elements shown.\n", matched, len(all))
	}

	return mcp.NewToolResultText(b.String()), nil
}
