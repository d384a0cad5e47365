package compose

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/docweave/docweave/internal/elements"
)

// draft07 is the schema dialect identifier emitted on every document.
const draft07 = "http://json-schema.org/draft-07/schema#"

// renderSchema builds the draft-07 JSON Schema text for an element. The
// definitions map is populated conditionally: props and state definitions
// appear only when their module was selected for the run and the element
// actually carries that metadata.
func (e *Engine) renderSchema(el *elements.ElementCharacteristics, selected []string, category string, prov Provenance) (string, error) {
	definitions := map[string]any{}

	if selectedContains(selected, "props") && len(el.Metadata.Props) > 0 {
		definitions[el.Name+"Props"] = propsDefinition(el.Metadata.Props)
	}
	if selectedContains(selected, "state") && len(el.Metadata.StateVariables) > 0 {
		definitions["StateVariables"] = stateDefinition(el.Metadata.StateVariables)
	}

	schema := map[string]any{
		"$schema":     draft07,
		"title":       el.Name,
		"description": fmt.Sprintf("Generated documentation schema for %s (%s)", el.Name, el.File),
		"metadata": map[string]any{
			"category":     category,
			"generated_by": prov.GeneratedBy,
			"timestamp":    prov.Timestamp,
		},
		"definitions": definitions,
	}

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshaling schema: %w", err)
	}
	return string(data), nil
}

// propsDefinition builds the {ElementName}Props object schema. The
// required list carries exactly the props flagged required by the
// scanner.
func propsDefinition(props []elements.Prop) map[string]any {
	properties := map[string]any{}
	var required []string
	for _, p := range props {
		prop := map[string]any{"type": inferJSONType(p.Type)}
		if p.Description != "" {
			prop["description"] = p.Description
		}
		if p.Default != nil {
			prop["default"] = p.Default
		}
		properties[p.Name] = prop
		if p.Required {
			required = append(required, p.Name)
		}
	}

	def := map[string]any{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		def["required"] = required
	}
	return def
}

// stateDefinition builds the StateVariables object schema. State carries
// no required list — by convention every state variable is optional.
func stateDefinition(vars []elements.StateVariable) map[string]any {
	properties := map[string]any{}
	for _, v := range vars {
		prop := map[string]any{"type": inferJSONType(v.Type)}
		if v.InitialValue != nil {
			prop["default"] = v.InitialValue
		}
		properties[v.Name] = prop
	}
	return map[string]any{
		"type":       "object",
		"properties": properties,
	}
}

// inferJSONType maps a TypeScript type expression to a JSON Schema type
// by substring, falling back to string for anything unrecognized.
func inferJSONType(tsType string) string {
	switch {
	case strings.Contains(tsType, "string"):
		return "string"
	case strings.Contains(tsType, "number"):
		return "number"
	case strings.Contains(tsType, "boolean"):
		return "boolean"
	case strings.Contains(tsType, "[]"), strings.Contains(tsType, "Array"):
		return "array"
	case strings.Contains(tsType, "object"), strings.Contains(tsType, "{}"):
		return "object"
	default:
		return "string"
	}
}

// selectedContains reports whether a module name was requested for the
// run — the schema contract keys off selection, not off whether the
// template file loaded.
func selectedContains(selected []string, name string) bool {
	for _, s := range selected {
		if s == name {
			return true
		}
	}
	return false
}
