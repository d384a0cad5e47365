package compose

import (
	"fmt"
	"strings"
	"time"

	"github.com/docweave/docweave/internal/elements"
	"github.com/docweave/docweave/internal/template"
)

// assembleMarkdown concatenates the provenance header, the executive
// summary, the rendered module sections, and the footer — each part
// separated by a horizontal rule.
func (e *Engine) assembleMarkdown(el *elements.ElementCharacteristics, category string, sections []string, prov Provenance, now time.Time) string {
	var b strings.Builder

	// Provenance header.
	fmt.Fprintf(&b, "# %s\n\n", el.Name)
	fmt.Fprintf(&b, "**Category**: %s\n", category)
	fmt.Fprintf(&b, "**Type**: %s\n", el.Type)
	fmt.Fprintf(&b, "**File**: `%s`\n", el.File)
	fmt.Fprintf(&b, "**Created**: %s\n", now.Format("2006-01-02"))
	if prov.WorkorderID != "" {
		fmt.Fprintf(&b, "**Workorder**: %s\n", prov.WorkorderID)
	}
	if prov.FeatureID != "" {
		fmt.Fprintf(&b, "**Feature**: %s\n", prov.FeatureID)
	}
	fmt.Fprintf(&b, "**Generated by**: %s\n", prov.GeneratedBy)
	fmt.Fprintf(&b, "**Timestamp**: %s\n", prov.Timestamp)

	// Executive summary — pulled from scanner metadata when present,
	// otherwise left as explicit manual-review placeholders.
	b.WriteString("\n## Executive Summary\n\n")
	fmt.Fprintf(&b, "**Purpose**: %s\n\n", metadataText(el, "purpose",
		template.ManualMarker+" describe the purpose of this element"))
	fmt.Fprintf(&b, "**Responsibilities**: %s\n", metadataText(el, "responsibilities",
		template.ManualMarker+" list the responsibilities of this element"))

	// Rendered module sections.
	for _, section := range sections {
		b.WriteString("\n---\n\n")
		b.WriteString(strings.TrimSpace(section))
		b.WriteString("\n")
	}

	// Footer.
	b.WriteString("\n---\n\n")
	fmt.Fprintf(&b, "_Generated by %s at %s_\n", prov.GeneratedBy, prov.Timestamp)

	return b.String()
}

// metadataText reads a free-form pass-through metadata value as display
// text. String lists are joined; anything absent yields the fallback.
func metadataText(el *elements.ElementCharacteristics, key, fallback string) string {
	switch v := el.Metadata.Extra[key].(type) {
	case string:
		if v != "" {
			return v
		}
	case []any:
		var parts []string
		for _, item := range v {
			if s, ok := item.(string); ok && s != "" {
				parts = append(parts, s)
			}
		}
		if len(parts) > 0 {
			return strings.Join(parts, "; ")
		}
	}
	return fallback
}
