package compose

import (
	"fmt"
	"strings"

	"github.com/docweave/docweave/internal/elements"
)

// renderJSDoc builds the single JSDoc comment block for an element. The
// @param lines mirror the schema's props definition: they appear only
// when the props module was selected and the element has props, so the
// three output formats always agree.
func renderJSDoc(el *elements.ElementCharacteristics, selected []string) string {
	var b strings.Builder
	b.WriteString("/**\n")
	fmt.Fprintf(&b, " * %s\n", el.Name)
	b.WriteString(" *\n")
	fmt.Fprintf(&b, " * %s\n", jsdocDescription(el))
	b.WriteString(" *\n")

	if el.Metadata.HasJSX {
		b.WriteString(" * @component\n")
	}
	b.WriteString(" * @example\n")
	b.WriteString(" * // TODO: add usage example\n")

	if selectedContains(selected, "props") && len(el.Metadata.Props) > 0 {
		for _, p := range el.Metadata.Props {
			name := p.Name
			if !p.Required {
				name = "[" + name + "]"
			}
			desc := p.Description
			if desc == "" {
				desc = "TODO: describe"
			}
			fmt.Fprintf(&b, " * @param {%s} %s - %s\n", p.Type, name, desc)
		}
	}

	if el.Metadata.HasJSX {
		b.WriteString(" * @returns {JSX.Element}\n")
	} else {
		b.WriteString(" * @returns TODO: document return value\n")
	}
	b.WriteString(" */")
	return b.String()
}

// jsdocDescription picks the element description from pass-through
// metadata, preferring an explicit description over the purpose text.
func jsdocDescription(el *elements.ElementCharacteristics) string {
	for _, key := range []string{"description", "purpose"} {
		if s, ok := el.Metadata.Extra[key].(string); ok && s != "" {
			return s
		}
	}
	return "TODO: add description"
}
