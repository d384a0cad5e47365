// Package server wires all MCP components and creates the server instance.
//
// This is the composition root (DIP): it creates concrete implementations
// and injects them into the tools that depend on abstractions. No business
// logic lives here — only wiring.
package server

import (
	"log"
	"os"
	"path/filepath"

	"github.com/mark3labs/mcp-go/server"

	"github.com/docweave/docweave/internal/config"
	"github.com/docweave/docweave/internal/elements"
	"github.com/docweave/docweave/internal/history"
	"github.com/docweave/docweave/internal/tools"
)

// Version is set at build time via ldflags.
var Version = "dev"

// New creates and configures the MCP server with all tools registered.
// This is the single place where all dependencies are resolved.
//
// The returned cleanup function closes the history store's database
// connection and must be called on shutdown (typically via defer).
// It is always non-nil and safe to call even if history init failed.
func New() (*server.MCPServer, func(), error) {
	// --- Create shared dependencies ---

	store := config.NewFileStore()
	reader := elements.NewReader()
	generator := "docweave " + Version

	// --- Create the MCP server ---

	s := server.NewMCPServer(
		"docweave",
		Version,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions(serverInstructions()),
	)

	// --- History subsystem ---
	//
	// History is independent: if the run database fails to open, the
	// documentation tools continue working. We log a warning and pass a
	// nil store — doc_compose skips recording, doc_history reports the
	// outage instead of failing the server.

	cleanup := noop
	hist, histErr := history.New(history.Config{DataDir: defaultDataDir()})
	if histErr != nil {
		log.Printf("WARNING: run history disabled: %v", histErr)
		hist = nil
	} else {
		cleanup = func() {
			if err := hist.Close(); err != nil {
				log.Printf("WARNING: history store close: %v", err)
			}
		}
	}

	// --- Register tools ---

	initTool := tools.NewInitTool(store)
	s.AddTool(initTool.Definition(), initTool.Handle)

	detectTool := tools.NewDetectTool(store, reader)
	s.AddTool(detectTool.Definition(), detectTool.Handle)

	composeTool := tools.NewComposeTool(store, reader, hist, generator)
	s.AddTool(composeTool.Definition(), composeTool.Handle)

	elementsTool := tools.NewElementsTool(store, reader)
	s.AddTool(elementsTool.Definition(), elementsTool.Handle)

	historyTool := tools.NewHistoryTool(hist)
	s.AddTool(historyTool.Definition(), historyTool.Handle)

	return s, cleanup, nil
}

// noop is a no-op cleanup function used as the default when history
// is disabled or hasn't been initialized.
func noop() {}

// defaultDataDir returns the per-user directory for the run database.
func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".docweave"
	}
	return filepath.Join(home, ".docweave")
}

// serverInstructions returns the system instructions that tell the AI
// how to use docweave effectively.
func serverInstructions() string {
	return `You have access to docweave, a code-to-docs MCP server. It turns
the element index produced by the coderef scanner into living documentation:
a Markdown document, a draft-07 JSON Schema, and a JSDoc block per element.

## Typical workflow

1. doc_init — once per project. Creates the docweave/ workspace with the
   default template modules and configuration.
2. Drop the scanner's element-index.json into docweave/ (or point index_dir
   at it in docweave.yaml).
3. doc_elements — list what was indexed, optionally filtered.
4. doc_detect — dry-run classification of one element: capability flags,
   confidence score, category, and suggested template modules.
5. doc_compose — generate and write the three artifacts. Modules and
   category default to the detection suggestions; override them only when
   the user asks for something specific.
6. doc_history — review past runs, their auto-fill rates and review counts.

## Interpreting results

- The auto-fill rate is the share of template markers filled from scanner
  metadata. A low rate is not an error — it means the scanner had little
  to say about the element.
- Every "⚠️ MANUAL REQUIRED" marker in the output is a review flag. Walk
  the user through them after composing; each names the section and what
  a human still has to write.
- Detection confidence below ~50 means the element matched conflicting
  signal pairs (component+API, hook+store, cli+API). Suggest doc_detect
  output to the user before composing so they can correct the category.

## Template modules

Four universal modules (architecture, integration, testing, performance)
apply to every element. Conditional modules (props, state, events, hooks,
api, cli, auth, validation, persistence, routing, accessibility) are
suggested from detection flags. Users can edit the module files under
docweave/modules/ — they are plain Markdown with {{variable}},
{{#each}}/{{#if}} blocks, and {{AUTO_FILL:}}/{{MANUAL:}} markers.`
}
