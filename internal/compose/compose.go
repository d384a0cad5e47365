// Package compose implements the composition engine: given a resolved
// element, a list of template modules, and run options, it renders a
// Markdown document, a draft-07 JSON Schema, and a JSDoc comment block
// from the same characteristic snapshot, then derives the auto-fill rate
// and manual-review flags from the rendered Markdown.
//
// One Compose call is fully synchronous and owns no shared mutable state,
// so concurrent calls for different elements are safe by construction.
package compose

import (
	"errors"
	"log"
	"time"

	"github.com/docweave/docweave/internal/elements"
	"github.com/docweave/docweave/internal/modules"
	"github.com/docweave/docweave/internal/template"
)

// Options carries the per-run composition inputs beyond the element and
// module list.
type Options struct {
	// Category is the documentation category recorded in provenance and
	// the document header (e.g. "ui/components").
	Category string
	// WorkorderID and FeatureID tie the run back to planning artifacts.
	// Both optional.
	WorkorderID string
	FeatureID   string
}

// Provenance records who generated a document and when.
type Provenance struct {
	WorkorderID string `json:"workorder_id,omitempty"`
	FeatureID   string `json:"feature_id,omitempty"`
	GeneratedBy string `json:"generated_by"`
	Timestamp   string `json:"timestamp"`
}

// Result is the output aggregate of one composition run. Constructed
// once and never mutated afterwards.
type Result struct {
	ElementName  string       `json:"elementName"`
	Category     string       `json:"category"`
	ModulesUsed  []string     `json:"modulesUsed"`
	Markdown     string       `json:"markdown"`
	Schema       string       `json:"schema"`
	JSDoc        string       `json:"jsdoc"`
	AutoFillRate int          `json:"autoFillRate"`
	ReviewFlags  []ReviewFlag `json:"reviewFlags"`
	Provenance   Provenance   `json:"provenance"`
}

// Engine renders documentation from module templates. The module store
// is injected so tests can point it at a temp directory.
type Engine struct {
	store     *modules.Store
	generator string
	now       func() time.Time
	logf      func(format string, args ...any)
}

// NewEngine creates a composition engine over a module store. generator
// names the producing tool (including version) in provenance headers.
func NewEngine(store *modules.Store, generator string) *Engine {
	return &Engine{
		store:     store,
		generator: generator,
		now:       time.Now,
		logf:      log.Printf,
	}
}

// Compose runs the full pipeline for one element. Missing module
// templates are logged and skipped — a document with fewer sections than
// requested beats a hard failure. The three output formats are derived
// from the same auto-fill data snapshot, so they never disagree about
// the element.
func (e *Engine) Compose(el *elements.ElementCharacteristics, selected []string, opts Options) (*Result, error) {
	now := e.now().UTC()
	category := opts.Category
	if category == "" {
		category = "general"
	}

	// 1. Load and render the requested module sections.
	var used []string
	var sections []string
	data := buildData(el, category, now)
	for _, name := range selected {
		section, err := e.store.Section(name)
		if err != nil {
			if errors.Is(err, modules.ErrModuleUnavailable) {
				e.logf("WARNING: module %q unavailable, skipping: %v", name, err)
			} else {
				e.logf("WARNING: module %q unreadable, skipping: %v", name, err)
			}
			continue
		}
		used = append(used, name)
		sections = append(sections, template.Render(section, data))
	}
	if used == nil {
		used = []string{}
	}

	prov := Provenance{
		WorkorderID: opts.WorkorderID,
		FeatureID:   opts.FeatureID,
		GeneratedBy: e.generator,
		Timestamp:   now.Format(time.RFC3339),
	}

	// 2–5. Assemble the three synchronized outputs.
	markdown := e.assembleMarkdown(el, category, sections, prov, now)
	schema, err := e.renderSchema(el, selected, category, prov)
	if err != nil {
		return nil, err
	}
	jsdoc := renderJSDoc(el, selected)

	// 6–7. Auto-fill rate and review flags come from the rendered text.
	return &Result{
		ElementName:  el.Name,
		Category:     category,
		ModulesUsed:  used,
		Markdown:     markdown,
		Schema:       schema,
		JSDoc:        jsdoc,
		AutoFillRate: AutoFillRate(markdown),
		ReviewFlags:  ExtractReviewFlags(markdown),
		Provenance:   prov,
	}, nil
}
